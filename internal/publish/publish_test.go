package publish

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/google/go-github/v47/github"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyscan-dev/polyscan/internal/findings"
	"github.com/polyscan-dev/polyscan/internal/report"
	"github.com/polyscan-dev/polyscan/pkg/shared/config"
)

func testReport() *report.Report {
	agg := report.NewAggregator("/repo")
	agg.CountFile(false)
	agg.Append(findings.Finding{
		FilePath: "a.py", Line: 1, Category: findings.CategorySecret,
		Language: "python", Message: "Hard-coded API key",
	})
	return agg.Finalize()
}

func TestResolveTargetFromRemote(t *testing.T) {
	cfg := config.Default()

	target, host, err := resolveTarget(cfg, "https://github.com/acme/widgets")
	require.NoError(t, err)
	assert.Equal(t, "acme", target.Namespace)
	assert.Equal(t, "widgets", target.Name)
	assert.Equal(t, "github.com", string(host))
}

func TestResolveTargetConfigOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Publish.Repository = "corp/internal-tools"

	target, _, err := resolveTarget(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "corp", target.Namespace)
	assert.Equal(t, "internal-tools", target.Name)
}

func TestResolveTargetNoRemoteNoOverride(t *testing.T) {
	_, _, err := resolveTarget(config.Default(), "")
	assert.Error(t, err)
}

func TestResolveTargetBadOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Publish.Repository = "missing-name"
	_, _, err := resolveTarget(cfg, "")
	assert.Error(t, err)
}

func TestGitHubPublisherCreatesIssue(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"number": 7}`))
	}))
	defer srv.Close()

	p := newGitHubPublisher(Target{Host: "github.com", Namespace: "acme", Name: "widgets"}, "t0ken", hclog.NewNullLogger())
	p.newClient = func(ctx context.Context, token string) *github.Client {
		client := github.NewClient(nil)
		base, _ := url.Parse(srv.URL + "/")
		client.BaseURL = base
		return client
	}

	err := p.Publish(context.Background(), testReport())
	require.NoError(t, err)
	assert.Equal(t, "/repos/acme/widgets/issues", gotPath)
	assert.Equal(t, IssueTitle, gotBody["title"])
	assert.Contains(t, gotBody["body"], "a.py:1")
}

func TestWebhookPublisher(t *testing.T) {
	var payload webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&payload)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	p := NewWebhook(srv.URL, resty.New(), hclog.NewNullLogger())
	err := p.Publish(context.Background(), testReport())

	require.NoError(t, err)
	assert.True(t, payload.HasFindings)
	require.NotNil(t, payload.Report)
	assert.Len(t, payload.Report.Findings, 1)
}

func TestWebhookPublisherServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewWebhook(srv.URL, resty.New(), hclog.NewNullLogger())
	err := p.Publish(context.Background(), testReport())
	assert.Error(t, err)
}
