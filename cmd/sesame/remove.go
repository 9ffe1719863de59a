package main

import (
	"strings"

	"github.com/linkeddata/sesame"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	removeSubject   string
	removePredicate string
	removeObject    string
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove statements matching a pattern",
	Long: `Remove deletes every statement matching the given pattern. Omitted
positions match anything. URIs may be written as QNames (foaf:gender) or
bare; literal objects must be quoted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		n, err := repo.Remove(pattern(removeSubject), pattern(removePredicate), pattern(removeObject))
		if err != nil {
			return err
		}
		pterm.Success.Printf("Removed %d statements\n", n)
		return nil
	},
}

// pattern turns user input into an NTriples-encoded pattern part: QNames get
// expanded, bare URIs get their angle brackets, anything already encoded
// passes through.
func pattern(s string) string {
	if s == "" || strings.HasPrefix(s, "<") || strings.HasPrefix(s, "\"") || strings.HasPrefix(s, "_:") {
		return s
	}
	if uri, ok := sesame.ExpandQName(s); ok {
		return "<" + uri + ">"
	}
	if strings.Contains(s, "://") {
		return "<" + s + ">"
	}
	return s
}

func init() {
	removeCmd.Flags().StringVar(&removeSubject, "subject", "", "subject pattern")
	removeCmd.Flags().StringVar(&removePredicate, "predicate", "", "predicate pattern")
	removeCmd.Flags().StringVar(&removeObject, "object", "", "object pattern")
	rootCmd.AddCommand(removeCmd)
}
