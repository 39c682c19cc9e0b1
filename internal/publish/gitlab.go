package publish

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	gitlab "github.com/xanzy/go-gitlab"

	"github.com/polyscan-dev/polyscan/internal/report"
)

type gitlabPublisher struct {
	target Target
	client *gitlab.Client
	logger hclog.Logger
}

func newGitLabPublisher(target Target, token string, logger hclog.Logger) (*gitlabPublisher, error) {
	client, err := gitlab.NewClient(token)
	if err != nil {
		return nil, fmt.Errorf("gitlab client: %w", err)
	}
	return &gitlabPublisher{target: target, client: client, logger: logger}, nil
}

// Publish files the report as a GitLab issue.
func (p *gitlabPublisher) Publish(ctx context.Context, rep *report.Report) error {
	body := rep.RenderMarkdown()
	issue, _, err := p.client.Issues.CreateIssue(p.target.project(), &gitlab.CreateIssueOptions{
		Title:       gitlab.String(IssueTitle),
		Description: gitlab.String(body),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("create issue in %s: %w", p.target.project(), err)
	}

	p.logger.Info("issue created", "repository", p.target.project(), "iid", issue.IID)
	return nil
}
