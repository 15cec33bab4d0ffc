package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/taxlot"
	"github.com/etnz/taxlot/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	strategy string
	currency string
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "apply a buy/sell event feed and render a holdings report"
}
func (*reportCmd) Usage() string {
	return `tlt report [-strategy <fifo|hifo>] [file]

  Same pipeline as 'process', rendered as a markdown holdings report with
  per-lot cost basis and totals.
`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.strategy, "strategy", "fifo", "Accounting strategy for sales (fifo, hifo), fixed for the whole feed.")
	f.StringVar(&p.currency, "currency", "USD", "Currency the feed prices are denominated in.")
}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	markdown := renderer.RenderHoldings(renderer.NewHoldings(ledger, strategy))
	output, err := glamour.Render(markdown, "auto")
	if err != nil {
		// Degrade to the raw markdown rather than losing the report.
		output = markdown
	}
	fmt.Print(output)
	return subcommands.ExitSuccess
}
