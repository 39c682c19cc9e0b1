package cmd

import (
	goerrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/polyscan-dev/polyscan/cmd/rules"
	"github.com/polyscan-dev/polyscan/cmd/scan"
	"github.com/polyscan-dev/polyscan/cmd/version"
	"github.com/polyscan-dev/polyscan/pkg/shared/config"
	"github.com/polyscan-dev/polyscan/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "polyscan [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Polyscan is a language-agnostic static scanner for source trees.",
		Long: `Polyscan walks a source tree, classifies files by extension, and flags
security- and quality-relevant patterns: hard-coded secrets, plaintext
passwords, dangerous calls, insecure network bindings, suspicious loops,
and duplicated code blocks. Detection is regex over raw text, traded
deliberately against parser precision for language independence.`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is polyscan.yml)")
	rootCmd.AddCommand(scan.ScanCmd)
	rootCmd.AddCommand(rules.RulesCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and maps errors to process exit codes.
// A CommandError carries its own code; the scan command uses that to
// signal "findings exist" to CI.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		var cmdErr *errors.CommandError
		if goerrors.As(err, &cmdErr) {
			return cmdErr.ExitCode
		}
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = config.DefaultConfigFile
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config: %v\n", err)
		os.Exit(2)
	}

	scan.Init(AppConfig)
	rules.Init(AppConfig)
	version.Init(AppConfig)
}
