package main

import (
	"fmt"
	"os"

	"github.com/finchapp/finch/internal/client/api"
	"github.com/finchapp/finch/internal/tui"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "finch",
	Short: "Terminal client for the finch personal finance ledger",
	Long: `finch connects to a running ledger service and opens a terminal UI
for recording, editing and deleting transactions, with a running balance
derived from the loaded list.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		client := api.New(serverURL, nil)
		return tui.Run(tui.Config{Client: client})
	},
}

func init() {
	_ = godotenv.Load()

	defaultServer := os.Getenv("FINCH_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:4000"
	}

	rootCmd.Flags().StringVar(&serverURL, "server", defaultServer, "base URL of the ledger service")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
