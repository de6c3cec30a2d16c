package commands

import (
	"github.com/spf13/cobra"

	"github.com/vaibhavrajebhosale/swing-digest/internal/pipeline"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch snapshots, build the digest, and publish it",
	Long: `Runs one full digest cycle.

Fetches the latest snapshot tables and manifest from the CDN, builds the
five-section digest, prints it to stdout, posts it as a comment on the
tracking issue, and forwards it to the assistant thread when OpenAI
credentials are configured.

Publish failures are logged and do not fail the run; the digest text has
already been printed.

Example:
  go run ./cmd/digest run
  ISSUE_NUMBER=42 go run ./cmd/digest run`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	return pipeline.New(cfg, log).Run(cmd.Context(), true)
}
