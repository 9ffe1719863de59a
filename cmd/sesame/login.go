package main

import (
	"github.com/linkeddata/sesame"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <user>",
	Short: "Store credentials for a server in the OS keyring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pass, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		if err != nil {
			return err
		}

		// verify against the server before storing anything
		conn, err := sesame.NewConnection(serverAddr)
		if err != nil {
			return err
		}
		if err := conn.Login(args[0], pass); err != nil {
			return err
		}

		if err := storeCredentials(args[0], pass); err != nil {
			return err
		}
		pterm.Success.Printf("Credentials stored for %s\n", serverAddr)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
