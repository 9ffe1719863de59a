package main

import (
	"github.com/linkeddata/sesame"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	queryLang  string
	queryStrip string
)

var queryCmd = &cobra.Command{
	Use:   "query <query>",
	Short: "Run a tuple query and print the result table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}

		strip, err := sesame.ParseStripPolicy(queryStrip)
		if err != nil {
			return err
		}
		opts := []sesame.SelectOption{sesame.WithStrip(strip)}
		if queryLang != "" {
			opts = append(opts, sesame.WithLanguage(sesame.QueryLanguage(queryLang)))
		}

		tr, err := repo.Select(args[0], opts...)
		if err != nil {
			return err
		}

		data := pterm.TableData{tr.Columns()}
		for row := tr.Next(); row != nil; row = tr.Next() {
			data = append(data, row)
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
		pterm.Printf("%d rows\n", tr.Len())
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVar(&queryLang, "lang", "", "query language: RQL, RDQL or SeRQL")
	queryCmd.Flags().StringVar(&queryStrip, "strip", "none", "strip policy: none, literals, urirefs or all")
	rootCmd.AddCommand(queryCmd)
}
