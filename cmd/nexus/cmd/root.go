package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/krisvanrens/nexus-lang/internal/cli"
)

var (
	verbose bool
	debug   bool

	log *cli.Logger
)

// Output styles shared by the subcommands.
var (
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
	nodeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Nexus language front end",
	Long: `nexus is the front end of the Nexus scripting language: a lexical
scanner and recursive-descent parser producing a typed AST.

Commands:
  scan     - tokenize a source file line by line
  parse    - parse a source file into an AST
  repl     - interactive line-at-a-time session
  watch    - re-parse a source file on every change
  version  - show version information`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = cli.NewLogger(verbose, debug)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s %s: %v\n", errorStyle.Render("error:"), msg, err)
}

// marker renders the '==' gutter prefix used by scan and parse output.
func marker(label string) string {
	return fmt.Sprintf("%s %s", markerStyle.Render("=="), headerStyle.Render(label))
}
