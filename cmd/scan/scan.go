package scan

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/polyscan-dev/polyscan/internal/analyzer"
	"github.com/polyscan-dev/polyscan/internal/artifacts"
	"github.com/polyscan-dev/polyscan/internal/ci"
	"github.com/polyscan-dev/polyscan/internal/classify"
	"github.com/polyscan-dev/polyscan/internal/gitmeta"
	"github.com/polyscan-dev/polyscan/internal/match"
	"github.com/polyscan-dev/polyscan/internal/publish"
	"github.com/polyscan-dev/polyscan/internal/report"
	"github.com/polyscan-dev/polyscan/internal/rules"
	"github.com/polyscan-dev/polyscan/internal/runner"
	"github.com/polyscan-dev/polyscan/internal/validator"
	"github.com/polyscan-dev/polyscan/internal/walker"
	"github.com/polyscan-dev/polyscan/pkg/shared/config"
	"github.com/polyscan-dev/polyscan/pkg/shared/errors"
	"github.com/polyscan-dev/polyscan/pkg/shared/files"
	"github.com/polyscan-dev/polyscan/pkg/shared/httpclient"
	"github.com/polyscan-dev/polyscan/pkg/shared/logger"
)

// RunOptions holds the arguments for the scan command.
type RunOptions struct {
	Root       string
	Workers    int
	Format     string
	OutputPath string
	Publish    bool
	NoValidate bool
	Timeout    time.Duration
}

var (
	AppConfig *config.Config
	opts      RunOptions

	exampleScanUsage = `  # Scanning the current directory
  polyscan scan .

  # Scanning a tree with a bounded worker pool and a wall-clock budget
  polyscan scan -j 8 --timeout 5m /path/to/repo

  # Writing a SARIF report next to the sources
  polyscan scan --format sarif --output /path/to/results /path/to/repo

  # Publishing the findings as an issue on the origin repository
  polyscan scan --publish /path/to/repo`
)

// ScanCmd represents the scan command.
var ScanCmd = &cobra.Command{
	Use:                   "scan [--format text|json|sarif] [--output PATH] [-j WORKERS] [--publish] [PATH]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleScanUsage,
	Short:                 "Scan a source tree and report findings",
	RunE:                  runScanCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

func init() {
	ScanCmd.Flags().IntVarP(&opts.Workers, "jobs", "j", 0, "Number of concurrent analysis workers (default: CPU count).")
	ScanCmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Report format: text, json or sarif.")
	ScanCmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Write the report to a file or directory instead of stdout.")
	ScanCmd.Flags().BoolVar(&opts.Publish, "publish", false, "Publish findings to the configured issue tracker and webhook.")
	ScanCmd.Flags().BoolVar(&opts.NoValidate, "no-validate", false, "Skip external syntax validators.")
	ScanCmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Wall-clock budget for the whole scan (0 = unbounded).")
}

// runScanCommand executes the scan command.
func runScanCommand(cmd *cobra.Command, args []string) error {
	if err := validateScanArgs(&opts, args); err != nil {
		return err
	}

	lg := logger.NewLogger(AppConfig, "core-scan")

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	classifier := classify.New(
		classify.WithBinaryExtensions(AppConfig.Classify.BinaryExtensions),
		classify.WithLanguageOverrides(AppConfig.Classify.Languages),
	)
	catalog := rules.New(AppConfig.Rules.Enable, AppConfig.Rules.Disable)

	var validators *validator.Registry
	if !opts.NoValidate && !AppConfig.Validators.Disabled {
		validators = validator.New(validator.Defaults(), AppConfig.Validators.Commands, AppConfig.ValidatorTimeout(), lg)
	}

	workers := opts.Workers
	if workers == 0 {
		workers = AppConfig.Scan.Workers
	}

	a := analyzer.New(classifier, match.New(catalog), validators, lg)
	a.MaxFileSize = AppConfig.Scan.MaxFileSize
	r := runner.New(walker.New(AppConfig.Walker.IgnoreDirs), a, workers, lg)

	repo := collectRepoInfo(opts.Root, lg)
	rep, err := r.Run(ctx, opts.Root, repo)
	if err != nil {
		lg.Error("scan failed", "error", err)
		return errors.NewCommandError(err, 2)
	}

	if err := writeReport(rep, &opts); err != nil {
		lg.Error("failed to write report", "error", err)
		return errors.NewCommandError(err, 2)
	}

	saveArtifact(rep, lg)

	if opts.Publish && rep.HasFindings() {
		publishReport(ctx, rep, repo, lg)
	}

	if rep.HasFindings() {
		return errors.NewCommandError(fmt.Errorf("scan found %d issue(s)", len(rep.Findings)), 1)
	}
	lg.Info("scan command completed successfully")
	return nil
}

// collectRepoInfo is best-effort: a tree outside version control scans
// exactly the same, it just carries no repo context. CI environment
// variables back up the local checkout, which may be shallow or exported.
func collectRepoInfo(root string, lg hclog.Logger) *report.RepoInfo {
	md, err := gitmeta.Collect(root)
	if err == nil {
		return &report.RepoInfo{Remote: md.Remote, Branch: md.Branch, Commit: md.Commit}
	}
	lg.Debug("no local repository metadata", "error", err)

	if env := ci.Detect(); env.Kind != ci.KindUnknown {
		lg.Debug("using repository metadata from CI environment", "provider", env.Kind.String())
		return &report.RepoInfo{Remote: env.RemoteURL, Branch: env.Branch, Commit: env.Commit}
	}
	return nil
}

func writeReport(rep *report.Report, o *RunOptions) error {
	data, err := serializeReport(rep, o.Format)
	if err != nil {
		return err
	}

	if o.OutputPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	fullPath, folder, err := files.DetermineFileFullPath(o.OutputPath, defaultReportName(o.Format))
	if err != nil {
		return err
	}
	if err := files.CreateFolderIfNotExists(folder); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0o644)
}

func defaultReportName(format string) string {
	ext := format
	if format == "text" {
		ext = "txt"
	}
	return "polyscan-report." + ext
}

func saveArtifact(rep *report.Report, lg hclog.Logger) {
	if AppConfig.Artifacts.Dir == "" {
		return
	}
	appLogger := logger.NewLogger(AppConfig, "artifacts")
	path, err := artifacts.SaveReportJSON(AppConfig, appLogger, rep)
	if err != nil {
		lg.Warn("failed to save report artifact", "error", err)
		return
	}
	if AppConfig.Artifacts.S3Bucket != "" {
		if err := artifacts.UploadS3(AppConfig, appLogger, path); err != nil {
			lg.Warn("failed to upload report artifact", "error", err)
		}
	}
}

// publishReport delivers the report to the configured sinks. Failures are
// logged and never influence the exit code: that is governed solely by
// whether findings exist.
func publishReport(ctx context.Context, rep *report.Report, repo *report.RepoInfo, lg hclog.Logger) {
	remote := ""
	if repo != nil {
		remote = repo.Remote
	}

	tracker, err := publish.NewTracker(AppConfig, logger.NewLogger(AppConfig, "publish"), remote)
	if err != nil {
		lg.Info("issue tracker publishing skipped", "reason", err)
	} else if err := tracker.Publish(ctx, rep); err != nil {
		lg.Warn("issue tracker publishing failed", "error", err)
	}

	if url := AppConfig.Publish.WebhookURL; url != "" {
		client := httpclient.New(logger.NewLogger(AppConfig, "http"), AppConfig)
		hook := publish.NewWebhook(url, client, logger.NewLogger(AppConfig, "publish"))
		if err := hook.Publish(ctx, rep); err != nil {
			lg.Warn("webhook publishing failed", "error", err)
		}
	}
}
