package openai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/vaibhavrajebhosale/swing-digest/pkg/config"
	"github.com/vaibhavrajebhosale/swing-digest/pkg/logger"
)

// Forwarder appends digest text to an assistant thread.
type Forwarder struct {
	client      *openai.Client
	logger      *logger.Logger
	threadID    string
	assistantID string
}

// NewForwarder returns nil when credentials are not configured; the
// forward step is optional and their absence is a skip, not an error.
func NewForwarder(cfg config.OpenAIConfig, log *logger.Logger) *Forwarder {
	if cfg.APIKey == "" || cfg.ThreadID == "" {
		return nil
	}

	return &Forwarder{
		client:      openai.NewClient(cfg.APIKey),
		logger:      log,
		threadID:    cfg.ThreadID,
		assistantID: cfg.AssistantID,
	}
}

// Forward posts the digest as a user message on the thread and, when an
// assistant is configured, triggers a run.
func (f *Forwarder) Forward(ctx context.Context, digest string) error {
	_, err := f.client.CreateMessage(ctx, f.threadID, openai.MessageRequest{
		Role:    openai.ChatMessageRoleUser,
		Content: digest,
	})
	if err != nil {
		return fmt.Errorf("posting thread message: %w", err)
	}

	f.logger.WithField("thread", f.threadID).Info("Posted digest to assistant thread")

	if f.assistantID == "" {
		return nil
	}

	_, err = f.client.CreateRun(ctx, f.threadID, openai.RunRequest{AssistantID: f.assistantID})
	if err != nil {
		return fmt.Errorf("starting assistant run: %w", err)
	}
	return nil
}
