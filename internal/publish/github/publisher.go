package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/vaibhavrajebhosale/swing-digest/pkg/config"
	"github.com/vaibhavrajebhosale/swing-digest/pkg/logger"
)

// Publisher posts digest text as comments on a tracking issue.
type Publisher struct {
	client *github.Client
	logger *logger.Logger
	cfg    config.GitHubConfig
	owner  string
	repo   string
}

// NewPublisher creates an issue publisher. A missing token or repository
// is a configuration error: the caller skips the publish step but the
// digest has already been printed.
func NewPublisher(cfg config.GitHubConfig, log *logger.Logger) (*Publisher, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("github token is required (set GH_PAT or GITHUB_TOKEN)")
	}

	owner, repo, ok := strings.Cut(cfg.Repository, "/")
	if !ok || owner == "" || repo == "" {
		return nil, fmt.Errorf("GITHUB_REPOSITORY must be \"owner/repo\", got %q", cfg.Repository)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	tc := oauth2.NewClient(context.Background(), ts)
	client := github.NewClient(tc)

	if cfg.APIBaseURL != "" && cfg.APIBaseURL != "https://api.github.com" {
		var err error
		client, err = client.WithEnterpriseURLs(cfg.APIBaseURL, cfg.APIBaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GITHUB_API_URL: %w", err)
		}
	}

	return newPublisher(client, cfg, log, owner, repo), nil
}

func newPublisher(client *github.Client, cfg config.GitHubConfig, log *logger.Logger, owner, repo string) *Publisher {
	return &Publisher{
		client: client,
		logger: log,
		cfg:    cfg,
		owner:  owner,
		repo:   repo,
	}
}

// Publish resolves the target issue and posts the digest as a comment.
// fallbackTitle is used when neither an issue number nor a title is
// configured.
func (p *Publisher) Publish(ctx context.Context, fallbackTitle, digest string) error {
	num, err := p.EnsureIssue(ctx, fallbackTitle)
	if err != nil {
		return err
	}

	if err := p.PostComment(ctx, num, digest); err != nil {
		return err
	}

	p.logger.WithField("issue", num).Info("Posted digest comment")
	return nil
}

// EnsureIssue returns the issue to post to. An explicitly configured
// number wins; otherwise an open issue with the exact title is reused,
// else a new one is created with the configured labels.
func (p *Publisher) EnsureIssue(ctx context.Context, fallbackTitle string) (int, error) {
	if p.cfg.IssueNumber > 0 {
		return p.cfg.IssueNumber, nil
	}

	title := p.cfg.IssueTitle
	if title == "" {
		title = fallbackTitle
	}

	var (
		num int
		err error
	)
	switch p.cfg.IssueLookup {
	case "search":
		num, err = p.findBySearch(ctx, title)
	default:
		num, err = p.findByList(ctx, title)
	}
	if err != nil {
		return 0, err
	}
	if num > 0 {
		return num, nil
	}

	return p.createIssue(ctx, title)
}

// findByList matches the title against open issues via plain listing.
// This avoids the search API, which some tokens cannot reach.
func (p *Publisher) findByList(ctx context.Context, title string) (int, error) {
	opts := &github.IssueListByRepoOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	issues, _, err := p.client.Issues.ListByRepo(ctx, p.owner, p.repo, opts)
	if err != nil {
		return 0, fmt.Errorf("listing open issues: %w", err)
	}

	for _, it := range issues {
		if it.IsPullRequest() {
			continue
		}
		if it.GetTitle() == title {
			return it.GetNumber(), nil
		}
	}
	return 0, nil
}

// findBySearch matches the title via the issue search API
func (p *Publisher) findBySearch(ctx context.Context, title string) (int, error) {
	q := fmt.Sprintf("is:issue is:open repo:%s/%s in:title %q", p.owner, p.repo, title)

	res, _, err := p.client.Search.Issues(ctx, q, &github.SearchOptions{})
	if err != nil {
		return 0, fmt.Errorf("searching issues: %w", err)
	}

	for _, it := range res.Issues {
		if it.GetTitle() == title {
			return it.GetNumber(), nil
		}
	}
	return 0, nil
}

func (p *Publisher) createIssue(ctx context.Context, title string) (int, error) {
	req := &github.IssueRequest{Title: github.String(title)}
	if len(p.cfg.IssueLabels) > 0 {
		labels := p.cfg.IssueLabels
		req.Labels = &labels
	}

	created, _, err := p.client.Issues.Create(ctx, p.owner, p.repo, req)
	if err != nil {
		return 0, fmt.Errorf("creating issue %q: %w", title, err)
	}

	p.logger.WithFields(map[string]interface{}{
		"issue": created.GetNumber(),
		"title": title,
	}).Info("Created digest issue")

	return created.GetNumber(), nil
}

// PostComment appends the digest text to the issue
func (p *Publisher) PostComment(ctx context.Context, issueNumber int, body string) error {
	comment := &github.IssueComment{Body: github.String(body)}
	_, _, err := p.client.Issues.CreateComment(ctx, p.owner, p.repo, issueNumber, comment)
	if err != nil {
		return fmt.Errorf("posting comment to issue #%d: %w", issueNumber, err)
	}
	return nil
}
