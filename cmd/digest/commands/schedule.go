package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/vaibhavrajebhosale/swing-digest/internal/pipeline"
)

// scheduleCmd represents the schedule command
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the digest pipeline on a cron schedule",
	Long: `Keeps the process alive and runs the full digest cycle on a cron
expression (UTC). Each cycle is independent: fresh snapshots, fresh
digest, one publish attempt.

Example:
  go run ./cmd/digest schedule
  go run ./cmd/digest schedule --cron "30 13 * * 1-5" --immediate`,
	RunE: runSchedule,
}

var (
	// Schedule flags
	scheduleCron      string
	scheduleImmediate bool
)

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().StringVar(&scheduleCron, "cron", "0 21 * * 1-5", "cron expression, UTC")
	scheduleCmd.Flags().BoolVar(&scheduleImmediate, "immediate", false, "run one cycle immediately on start")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	p := pipeline.New(cfg, log)

	runOnce := func() {
		if err := p.Run(context.Background(), true); err != nil {
			log.WithError(err).Error("Scheduled digest run failed")
		}
	}

	c := cron.New(cron.WithLocation(time.UTC))
	if _, err := c.AddFunc(scheduleCron, runOnce); err != nil {
		return fmt.Errorf("failed to schedule digest job: %w", err)
	}

	if scheduleImmediate {
		runOnce()
	}

	log.WithField("cron", scheduleCron).Info("Digest scheduler started")
	c.Start()

	// Block until interrupted
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Stopping digest scheduler")
	<-c.Stop().Done()
	log.Info("Digest scheduler stopped")

	return nil
}
