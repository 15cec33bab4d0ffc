// Package cmd implements the CLI application to process tax-lot event feeds.
package cmd

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/etnz/taxlot"
	"github.com/google/subcommands"
)

// Commands lists the subcommands for a main package to register.
var Commands = []subcommands.Command{
	&processCmd{},
	&reportCmd{},
}

// openInput returns the event feed: the file argument if given, else stdin.
func openInput(f *flag.FlagSet) (io.ReadCloser, error) {
	if f.NArg() == 0 {
		return os.Stdin, nil
	}
	return os.Open(f.Arg(0))
}

// run decodes the event feed and applies every event against a fresh ledger.
//
// The strategy and currency are fixed for the whole session. Per the error
// contract of the core, an erroring event never corrupts the ledger; the
// policy here is to log it and keep processing.
func run(r io.Reader, strategy taxlot.Strategy, currency string) (*taxlot.Ledger, error) {
	events, err := taxlot.DecodeEvents(r)
	if err != nil {
		return nil, err
	}
	ledger := taxlot.NewLedger()
	for _, ev := range events {
		if err := ledger.Apply(ev, strategy, currency); err != nil {
			log.Printf("skipping %s event on %q: %v", ev.Action, ev.Date, err)
		}
	}
	return ledger, nil
}
