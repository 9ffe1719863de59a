package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every statement in a repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		if !clearYes {
			ok, err := pterm.DefaultInteractiveConfirm.
				Show(fmt.Sprintf("Clear repository %q on %s?", repo.ID(), serverAddr))
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
		if err := repo.Clear(); err != nil {
			return err
		}
		pterm.Success.Println("Repository cleared")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "do not ask for confirmation")
	rootCmd.AddCommand(clearCmd)
}
