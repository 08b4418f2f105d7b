package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/devinhero/ledgers"
	"github.com/devinhero/ledgers/session"
	"github.com/devinhero/ledgers/term"
)

type sessionCmd struct {
	currency string
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "run an interactive ledger session" }
func (*sessionCmd) Usage() string {
	return `hl session [-c <currency>]

  Runs the interactive ledger: create an account, log in, deposit, withdraw,
  check the balance, and browse transaction history. Accounts live in memory
  for the lifetime of the process only.
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Display currency. Overrides HL_CURRENCY.")
}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.currency != "" {
		cfg.Currency = c.currency
	}

	console, err := term.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening terminal: %v\n", err)
		return subcommands.ExitFailure
	}

	svc := ledgers.NewService(ledgers.NewMemoryStore(), cfg.Currency, cfg.HashCost)
	flow := session.New(svc, console)
	if err := flow.Run(); err != nil {
		// Input closing under the session is a normal way out.
		if errors.Is(err, io.EOF) {
			return subcommands.ExitSuccess
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
