package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/taxlot"
	"github.com/google/subcommands"
)

type processCmd struct {
	strategy string
	format   string
	currency string
}

func (*processCmd) Name() string { return "process" }
func (*processCmd) Synopsis() string {
	return "apply a buy/sell event feed and print the surviving lots"
}
func (*processCmd) Usage() string {
	return `tlt process [-strategy <fifo|hifo>] [-format <csv|json>] [file]

  Reads a line-oriented feed of "date,action,price,quantity" events from the
  given file (or stdin), applies them to a single-asset ledger, and prints
  the surviving tax lots in ascending id order. Erroring events are logged
  to stderr and skipped.
`
}

func (p *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.strategy, "strategy", "fifo", "Accounting strategy for sales (fifo, hifo), fixed for the whole feed.")
	f.StringVar(&p.format, "format", "csv", "Output format for the surviving lots (csv, json).")
	f.StringVar(&p.currency, "currency", "USD", "Currency the feed prices are denominated in.")
}

func (p *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	strategy, err := taxlot.ParseStrategy(p.strategy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	in, err := openInput(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	ledger, err := run(in, strategy, p.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch p.format {
	case "csv":
		err = taxlot.EncodeHoldings(os.Stdout, ledger)
	case "json":
		err = taxlot.EncodeHoldingsJSON(os.Stdout, ledger)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", p.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
