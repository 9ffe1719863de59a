// Command sesame is a small terminal client for Sesame RDF servers: list
// repositories, run tuple queries, upload triples, remove them by pattern
// and clear whole repositories.
package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	serverAddr string
	repoID     string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:           "sesame",
	Short:         "Talk to a Sesame RDF server",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:8080", "Sesame server, host[:port][/dir] or URL")
	rootCmd.PersistentFlags().StringVar(&repoID, "repo", "", "repository id to operate on")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every servlet call to stderr")
}
