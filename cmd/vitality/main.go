// CLI to score the vitality questionnaire and project the result forward.
// Usage: go run ./cmd/vitality assess -i   (from the repo root)
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// now is replaced in tests so trend years are stable.
var now = time.Now

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaultOutput := os.Getenv("VITALITY_OUTPUT")
	if defaultOutput == "" {
		defaultOutput = formatText
	}

	root := &cobra.Command{
		Use:          "vitality",
		Short:        "Score a wellness questionnaire into a biological age",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringP("output", "o", defaultOutput, "output format: text, json or yaml")

	root.AddCommand(newAssessCmd(), newProjectCmd())
	return root
}
