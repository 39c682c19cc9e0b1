// Package artifacts persists the serialized report for later inspection:
// a local JSON artifact per run and, when configured, a copy in S3.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/hashicorp/go-hclog"

	"github.com/polyscan-dev/polyscan/internal/report"
	"github.com/polyscan-dev/polyscan/pkg/shared/config"
	"github.com/polyscan-dev/polyscan/pkg/shared/files"
)

// ArtifactName builds the per-run artifact file name.
// Example: polyscan-report-2025-09-15T08:28:46Z.json.
func ArtifactName(t time.Time) string {
	return fmt.Sprintf("polyscan-report-%s.json", t.UTC().Format(time.RFC3339))
}

// SaveReportJSON writes the report under the artifacts directory and
// returns the full path.
func SaveReportJSON(cfg *config.Config, logger hclog.Logger, rep *report.Report) (string, error) {
	dir := cfg.Artifacts.Dir
	if err := files.CreateFolderIfNotExists(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, ArtifactName(rep.StartedAt))

	data, err := json.MarshalIndent(rep, "", "    ")
	if err != nil {
		return path, fmt.Errorf("error marshaling the report: %w", err)
	}
	if err := files.WriteJsonFile(path, data); err != nil {
		return path, fmt.Errorf("error writing report artifact: %w", err)
	}

	logger.Info("artifact saved to file", "path", path)
	return path, nil
}

// UploadS3 copies a saved artifact into the configured bucket. Callers
// treat failures as non-fatal: artifact storage never gates the scan.
func UploadS3(cfg *config.Config, logger hclog.Logger, artifactPath string) error {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Artifacts.S3Region),
	})
	if err != nil {
		return fmt.Errorf("aws session: %w", err)
	}
	uploader := s3manager.NewUploader(sess)

	f, err := os.Open(artifactPath)
	if err != nil {
		return fmt.Errorf("open artifact %q: %w", artifactPath, err)
	}
	defer f.Close()

	key := filepath.Base(artifactPath)
	result, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(cfg.Artifacts.S3Bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return fmt.Errorf("upload artifact to s3: %w", err)
	}

	logger.Info("artifact uploaded", "bucket", cfg.Artifacts.S3Bucket, "key", key, "location", result.Location)
	return nil
}
