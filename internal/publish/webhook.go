package publish

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/polyscan-dev/polyscan/internal/report"
)

// webhookPayload is the JSON body delivered to a configured webhook sink.
type webhookPayload struct {
	HasFindings bool           `json:"has_findings"`
	Report      *report.Report `json:"report"`
}

type webhookPublisher struct {
	url    string
	client *resty.Client
	logger hclog.Logger
}

// NewWebhook returns a publisher that POSTs the report as JSON to url.
func NewWebhook(url string, client *resty.Client, logger hclog.Logger) Publisher {
	return &webhookPublisher{url: url, client: client, logger: logger}
}

func (p *webhookPublisher) Publish(ctx context.Context, rep *report.Report) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(webhookPayload{HasFindings: rep.HasFindings(), Report: rep}).
		Post(p.url)
	if err != nil {
		return fmt.Errorf("post report to %s: %w", p.url, err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook %s returned %s", p.url, resp.Status())
	}

	p.logger.Info("report delivered to webhook", "url", p.url, "status", resp.StatusCode())
	return nil
}
