// Package publish hands the finished report to an issue tracker or a
// webhook. Publishing is a collaborator, not part of the core: any failure
// here is logged and never changes the scan's exit code.
package publish

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gitsight/go-vcsurl"
	"github.com/hashicorp/go-hclog"

	"github.com/polyscan-dev/polyscan/internal/report"
	"github.com/polyscan-dev/polyscan/pkg/shared/config"
)

// IssueTitle is the title of every published report issue.
const IssueTitle = "Static Analysis Report"

// Publisher delivers a finished report to a sink.
type Publisher interface {
	Publish(ctx context.Context, rep *report.Report) error
}

// Target identifies the repository an issue is filed against.
type Target struct {
	Host      string
	Namespace string
	Name      string
}

func (t Target) project() string { return t.Namespace + "/" + t.Name }

// NewTracker resolves the issue-tracker publisher for the scanned tree.
// The target repository comes from config when set, otherwise from the
// origin remote. Returns an error when no target or token is available;
// callers treat that as "publishing not configured".
func NewTracker(cfg *config.Config, logger hclog.Logger, remote string) (Publisher, error) {
	target, host, err := resolveTarget(cfg, remote)
	if err != nil {
		return nil, err
	}

	switch host {
	case vcsurl.GitHub:
		token, err := lookupToken(cfg, "GITHUB_TOKEN")
		if err != nil {
			return nil, err
		}
		return newGitHubPublisher(target, token, logger), nil
	case vcsurl.GitLab:
		token, err := lookupToken(cfg, "GITLAB_TOKEN")
		if err != nil {
			return nil, err
		}
		return newGitLabPublisher(target, token, logger)
	default:
		return nil, fmt.Errorf("no issue tracker support for host %q", target.Host)
	}
}

// resolveTarget picks the repository from config override or remote URL.
func resolveTarget(cfg *config.Config, remote string) (Target, vcsurl.Host, error) {
	if repo := cfg.Publish.Repository; repo != "" {
		parts := strings.SplitN(repo, "/", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return Target{}, "", fmt.Errorf("publish.repository %q is not namespace/name", repo)
		}
		// Overrides default to GitHub unless the remote says otherwise.
		host := vcsurl.GitHub
		if remote != "" {
			if info, err := vcsurl.Parse(remote); err == nil {
				host = info.Host
			}
		}
		return Target{Host: string(host), Namespace: parts[0], Name: parts[1]}, host, nil
	}

	if remote == "" {
		return Target{}, "", fmt.Errorf("no publish repository configured and no origin remote found")
	}
	info, err := vcsurl.Parse(remote)
	if err != nil {
		return Target{}, "", fmt.Errorf("unable to parse remote %q: %w", remote, err)
	}
	return Target{Host: string(info.Host), Namespace: info.Username, Name: info.Name}, info.Host, nil
}

func lookupToken(cfg *config.Config, fallbackEnv string) (string, error) {
	env := cfg.Publish.TokenEnv
	if env == "" {
		env = fallbackEnv
	}
	if token := os.Getenv(env); token != "" {
		return token, nil
	}
	return "", fmt.Errorf("token env %s is empty", env)
}
