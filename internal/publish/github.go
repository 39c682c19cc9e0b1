package publish

import (
	"context"
	"fmt"

	"github.com/google/go-github/v47/github"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"

	"github.com/polyscan-dev/polyscan/internal/report"
)

type githubPublisher struct {
	target Target
	token  string
	logger hclog.Logger

	// newClient is swapped in tests to point at a test server.
	newClient func(ctx context.Context, token string) *github.Client
}

func newGitHubPublisher(target Target, token string, logger hclog.Logger) *githubPublisher {
	return &githubPublisher{
		target: target,
		token:  token,
		logger: logger,
		newClient: func(ctx context.Context, token string) *github.Client {
			ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
			return github.NewClient(oauth2.NewClient(ctx, ts))
		},
	}
}

// Publish files the report as a GitHub issue.
func (p *githubPublisher) Publish(ctx context.Context, rep *report.Report) error {
	client := p.newClient(ctx, p.token)

	body := rep.RenderMarkdown()
	issue, _, err := client.Issues.Create(ctx, p.target.Namespace, p.target.Name, &github.IssueRequest{
		Title: github.String(IssueTitle),
		Body:  github.String(body),
	})
	if err != nil {
		return fmt.Errorf("create issue in %s: %w", p.target.project(), err)
	}

	p.logger.Info("issue created", "repository", p.target.project(), "number", issue.GetNumber())
	return nil
}
