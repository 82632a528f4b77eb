package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/notes"
	"github.com/aretw0/notes/pkg/core"
	"github.com/spf13/cobra"
)

// noteFile is the store every command works on, relative to the working directory.
var noteFile = notes.DefaultFile

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Append one-line notes to a local file and print them back",
	Long: `notes keeps a flat text file of one-line notes in the current directory.
Notes are only ever appended; "list" prints the whole file.`,
	// Anything that is not a subcommand lands here, flags included.
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		opts := &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			printUsage(out)
			return
		}
		printUnknown(out, args[0])
	},
}

// helpCmd replaces cobra's default help so "help" is just another unknown command.
var helpCmd = &cobra.Command{
	Use:                "help",
	Hidden:             true,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		printUnknown(cmd.OutOrStdout(), cmd.Name())
	},
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
}

func printUnknown(w io.Writer, name string) {
	fmt.Fprintf(w, "Unknown command: %s\n", name)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  add <text>   - add a note")
	fmt.Fprintln(w, "  list         - list notes")
}

func newService() (*core.Service, error) {
	service, err := notes.New(noteFile, notes.WithLogger(slog.Default()))
	if err != nil {
		return nil, err
	}
	slog.Debug("note service ready", "component", service.ComponentType(), "state", service.State())
	return service, nil
}

// Execute adds all child commands to the root command and runs it.
// Only a failed append reaches fatal; usage mistakes exit normally.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}
