package rules

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polyscan-dev/polyscan/internal/rules"
	"github.com/polyscan-dev/polyscan/pkg/shared/config"
)

var (
	AppConfig *config.Config

	exampleRulesUsage = `  # List every detection category and its patterns
  polyscan rules

  # List categories as they would run with the current config toggles applied
  polyscan rules --config polyscan.yml`
)

// RulesCmd represents the rules command.
var RulesCmd = &cobra.Command{
	Use:                   "rules",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleRulesUsage,
	Short:                 "List the detection categories and their patterns",
	RunE:                  runRulesCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

func runRulesCommand(cmd *cobra.Command, args []string) error {
	catalog := rules.New(AppConfig.Rules.Enable, AppConfig.Rules.Disable)

	for _, cat := range catalog.AllCategories() {
		state := "enabled"
		if !cat.Enabled {
			state = "disabled"
		}
		fmt.Printf("%s (%s, %d patterns): %s\n", cat.Category, state, len(cat.Rules), cat.Message)
		for _, rule := range cat.Rules {
			fmt.Printf("  %s\n", rule.Pattern)
		}
	}
	return nil
}
