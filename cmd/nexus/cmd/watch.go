package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krisvanrens/nexus-lang/internal/frontend"
	"github.com/krisvanrens/nexus-lang/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-parse a source file on every change",
	Long: `Watch a Nexus source file and re-run the scan/parse pipeline every
time the file changes, printing the resulting AST nodes or diagnostics.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	w, err := watch.New()
	if err != nil {
		printError("failed to create watcher", err)
		return err
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		printError("failed to watch file", err)
		return err
	}

	fmt.Printf("%s: %s\n", marker("Watching"), path)
	reparse(path)

	for {
		select {
		case ev := <-w.Events():
			if !ev.Changed() {
				continue
			}
			log.Debug("change event: %s", ev.Path)
			reparse(path)
		case err := <-w.Errors():
			printError("watch failed", err)
			return err
		}
	}
}

func reparse(path string) {
	program, err := frontend.ParseFile(path)
	if err != nil {
		var scanErrs frontend.ScanErrors
		if errors.As(err, &scanErrs) {
			fmt.Println(scanErrs.Render())
			return
		}
		printError("parse failed", err)
		return
	}

	for _, node := range program {
		fmt.Printf("%s: %s\n", marker("AST Node"), nodeStyle.Render(node.String()))
	}
}
