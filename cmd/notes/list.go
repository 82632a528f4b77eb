package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.ArbitraryArgs,
	// Extra arguments are ignored, not rejected.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService()
		if err != nil {
			return err
		}

		listing, err := service.ListNotes(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case !listing.Exists:
			fmt.Fprintln(out, "No note file yet.")
		case listing.IsEmpty():
			fmt.Fprintln(out, "No notes yet.")
		default:
			fmt.Fprintf(out, "Notes:\n%s\n", listing.Content)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
