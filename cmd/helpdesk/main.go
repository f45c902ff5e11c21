package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/helpdesk-inc/helpdesk/internal/interfaces/cli/migrate"
	"github.com/helpdesk-inc/helpdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk - IT support ticketing backend",
		Long:  `Helpdesk is a ticketing backend where users report issues, an NLP service categorizes them, and administrators triage, resolve and report on them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
