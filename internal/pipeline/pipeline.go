package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vaibhavrajebhosale/swing-digest/internal/digest"
	"github.com/vaibhavrajebhosale/swing-digest/internal/publish/github"
	"github.com/vaibhavrajebhosale/swing-digest/internal/publish/openai"
	"github.com/vaibhavrajebhosale/swing-digest/internal/snapshot"
	"github.com/vaibhavrajebhosale/swing-digest/pkg/config"
	"github.com/vaibhavrajebhosale/swing-digest/pkg/logger"
)

// Pipeline runs one digest cycle: fetch, build, print, publish, forward.
// No state survives between runs; every cycle fetches fresh snapshots.
type Pipeline struct {
	cfg    *config.Config
	logger *logger.Logger
	snaps  *snapshot.Client
	out    io.Writer
}

// New creates a pipeline writing the digest text to stdout
func New(cfg *config.Config, log *logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		logger: log,
		snaps:  snapshot.NewClient(cfg.Snapshot, log),
		out:    os.Stdout,
	}
}

// Run executes one full cycle. The digest is always built and written to
// stdout; publish and forward failures are logged and never fail the run.
func (p *Pipeline) Run(ctx context.Context, publish bool) error {
	now := time.Now().UTC()

	tables := make(map[string]map[string]any, len(digest.Tables()))
	for _, name := range digest.Tables() {
		tables[name] = p.snaps.FetchTable(ctx, name)
	}
	manifest := p.snaps.FetchManifest(ctx)

	builder := digest.NewBuilder(digest.Options{
		StaleMinutes:       p.cfg.Digest.StaleMinutes,
		ManifestFields:     p.cfg.Digest.ManifestFieldOrder,
		EarningsWindowDays: p.cfg.Digest.EarningsWindowDays,
		MaxBuyCandidates:   p.cfg.Digest.MaxBuyCandidates,
	}, p.snaps.ManifestURL())
	text := builder.Build(now, tables, manifest)

	fmt.Fprintf(p.out, "\n===== DIGEST (plain text) =====\n\n%s\n", text)

	if !publish {
		return nil
	}

	fallbackTitle := fmt.Sprintf("Watchlist Digest — %s", now.Format("2006-01"))
	if pub, err := github.NewPublisher(p.cfg.GitHub, p.logger); err != nil {
		p.logger.WithError(err).Warn("Issue posting skipped")
	} else if err := pub.Publish(ctx, fallbackTitle, text); err != nil {
		p.logger.WithError(err).Warn("Issue posting failed")
	}

	if fwd := openai.NewForwarder(p.cfg.OpenAI, p.logger); fwd == nil {
		p.logger.Info("OpenAI credentials missing; skipping thread forward")
	} else if err := fwd.Forward(ctx, text); err != nil {
		p.logger.WithError(err).Warn("OpenAI forward failed")
	}

	return nil
}
