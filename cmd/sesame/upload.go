package main

import (
	"os"
	"strings"

	"github.com/linkeddata/sesame"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	uploadFormat   string
	uploadBase     string
	uploadNoVerify bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file|uri>",
	Short: "Upload serialized triples from a file or URI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}

		format := sesame.DataFormat(uploadFormat)
		var opts []sesame.UploadOption
		if uploadBase != "" {
			opts = append(opts, sesame.WithBaseURI(uploadBase))
		}
		if uploadNoVerify {
			opts = append(opts, sesame.WithoutVerification())
		}

		source := args[0]
		var n int
		if strings.Contains(source, "://") || strings.HasPrefix(source, "file:") {
			n, err = repo.UploadURI(source, append(opts, sesame.WithFormat(format))...)
		} else {
			data, readErr := os.ReadFile(source)
			if readErr != nil {
				return readErr
			}
			n, err = repo.UploadData(string(data), format, opts...)
		}
		if err != nil {
			return err
		}
		pterm.Success.Printf("Uploaded %d statements\n", n)
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadFormat, "format", "rdfxml", "data format: rdfxml, ntriples or turtle")
	uploadCmd.Flags().StringVar(&uploadBase, "base", "", "base URI for relative references")
	uploadCmd.Flags().BoolVar(&uploadNoVerify, "no-verify", false, "skip server-side data verification")
	rootCmd.AddCommand(uploadCmd)
}
