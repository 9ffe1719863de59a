package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var repositoriesCmd = &cobra.Command{
	Use:     "repositories",
	Aliases: []string{"repos"},
	Short:   "List the repositories the server exposes",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := connect()
		if err != nil {
			return err
		}
		repos, err := conn.Repositories()
		if err != nil {
			return err
		}

		data := pterm.TableData{{"ID", "TITLE", "READABLE", "WRITEABLE"}}
		for _, r := range repos {
			data = append(data, []string{r.ID, r.Title, yesNo(r.Readable), yesNo(r.Writeable)})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	rootCmd.AddCommand(repositoriesCmd)
}
