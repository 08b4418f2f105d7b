// Package cmd implements the CLI application around the ledger.
package cmd

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sessionCmd{}, "ledger")
	c.Register(&topicCmd{}, "documentation")
}

// Config carries the environment configuration of the application.
type Config struct {
	// Currency is the display currency for balances and amounts.
	Currency string `env:"HL_CURRENCY" envDefault:"USD"`
	// HashCost is the bcrypt cost for new account credentials.
	HashCost int `env:"HL_HASH_COST" envDefault:"10"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return &cfg, nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// source if the renderer fails.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
