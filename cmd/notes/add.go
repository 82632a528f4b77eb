package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Append a note",
	Long:  `Append the given text as a new line at the end of the note file, creating the file if needed.`,
	Args:  cobra.ArbitraryArgs,
	// Note text may start with a dash.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			fmt.Fprintln(out, "Error: note text is required")
			return nil
		}

		service, err := newService()
		if err != nil {
			return err
		}

		if err := service.AddNote(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Fprintln(out, "Note added.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
