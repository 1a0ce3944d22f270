package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krisvanrens/nexus-lang/internal/parser"
	"github.com/krisvanrens/nexus-lang/internal/scanner"
	"github.com/krisvanrens/nexus-lang/internal/source"
	"github.com/krisvanrens/nexus-lang/internal/token"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive line-at-a-time session",
	Long: `Read lines from standard input, scan and parse each one, and print
the resulting AST nodes (or the token sequence with --tokens).

Scanner state carries across lines, so multi-line comments continue to the
line that closes them. Meta commands: ':quit' leaves the session.`,
	RunE: runRepl,
}

var replTokens bool

func init() {
	replCmd.Flags().BoolVar(&replTokens, "tokens", false, "print tokens instead of AST nodes")
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	in := bufio.NewScanner(os.Stdin)
	s := scanner.New()

	fmt.Println(headerStyle.Render("Nexus session, ':quit' to leave."))

	for {
		fmt.Print("> ")
		if !in.Scan() {
			fmt.Println()
			return in.Err()
		}

		line := in.Text()
		if line == ":quit" || line == ":q" {
			return nil
		}

		tokens, err := s.Scan(source.NewLine(line))
		if err != nil {
			var serr *scanner.ScanError
			if errors.As(err, &serr) {
				fmt.Println(serr.Render())
			} else {
				printError("scan failed", err)
			}
			continue
		}

		if replTokens {
			printTokens(tokens)
			continue
		}

		program, err := parser.New(tokens).Parse()
		if err != nil {
			printError("parse failed", err)
			continue
		}

		for _, node := range program {
			fmt.Printf("%s: %s\n", marker("AST Node"), nodeStyle.Render(node.String()))
		}
	}
}

func printTokens(tokens token.Tokens) {
	for _, tok := range tokens {
		fmt.Printf("%s ", nodeStyle.Render(tok.String()))
	}
	fmt.Println()
}
