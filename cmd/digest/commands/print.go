package commands

import (
	"github.com/spf13/cobra"

	"github.com/vaibhavrajebhosale/swing-digest/internal/pipeline"
)

// printCmd represents the print command
var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Build and print the digest without publishing",
	Long: `Dry run: fetches the latest snapshots, builds the digest, and
prints it to stdout. Nothing is posted anywhere.

Example:
  go run ./cmd/digest print
  STALE_MINUTES=90 go run ./cmd/digest print`,
	RunE: runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	return pipeline.New(cfg, log).Run(cmd.Context(), false)
}
