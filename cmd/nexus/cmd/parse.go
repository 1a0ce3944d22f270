package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/krisvanrens/nexus-lang/internal/cli"
	"github.com/krisvanrens/nexus-lang/internal/frontend"
	"github.com/krisvanrens/nexus-lang/internal/modules"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file into an AST",
	Long: `Scan and parse a Nexus source file, printing every top-level AST
node. All lexical errors are collected and reported before parsing; a
parse error aborts with no partial output.

When the file belongs to a project (a nexus.toml manifest in the file's
directory or a parent), the manifest's tool version constraint is checked
first.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if err := checkProject(args[0]); err != nil {
		printError("project check failed", err)
		return err
	}

	program, err := frontend.ParseFile(args[0])
	if err != nil {
		var scanErrs frontend.ScanErrors
		if errors.As(err, &scanErrs) {
			fmt.Println(scanErrs.Render())
			return fmt.Errorf("scanning failed")
		}
		printError("parse failed", err)
		return err
	}

	for _, node := range program {
		fmt.Printf("%s: %s\n", marker("AST Node"), nodeStyle.Render(node.String()))
	}

	if verbose {
		stats := frontend.Statistics(program)
		log.Info("parsed %d statements, %d expressions (%d literals, %d calls)",
			stats.Statements, stats.Expressions, stats.Literals, stats.Calls)
	}

	return nil
}

// checkProject verifies the manifest's tool version constraint when the
// file belongs to a Nexus project. A file outside any project is fine.
func checkProject(path string) error {
	manifest, err := modules.Find(filepath.Dir(path))
	if err != nil {
		log.Debug("no project manifest: %v", err)
		return nil
	}

	log.Info("project %s (%s)", manifest.Package.Name, manifest.Dir())
	return manifest.CheckToolVersion(cli.Version)
}
