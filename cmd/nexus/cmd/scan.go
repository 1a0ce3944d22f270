package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krisvanrens/nexus-lang/internal/scanner"
	"github.com/krisvanrens/nexus-lang/internal/source"
)

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Tokenize a source file line by line",
	Long: `Tokenize a Nexus source file line by line, printing the token
sequence of every line. Lexical errors are rendered with the offending
line and a caret under the offending character.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	lines, err := source.ReadLines(args[0])
	if err != nil {
		printError("failed to read file", err)
		return err
	}

	s := scanner.New()
	failed := false

	for _, line := range lines {
		fmt.Printf("%s: '%s'\n", marker(fmt.Sprintf("Scan line %d", line.Number)), line.Text)

		tokens, err := s.Scan(line)
		if err != nil {
			failed = true

			var serr *scanner.ScanError
			if errors.As(err, &serr) {
				fmt.Println(serr.Render())
			} else {
				printError("scan failed", err)
			}
			continue
		}

		for _, tok := range tokens {
			fmt.Printf("%s ", nodeStyle.Render(tok.String()))
		}
		fmt.Println()
	}

	if failed {
		return fmt.Errorf("scanning failed")
	}
	return nil
}
