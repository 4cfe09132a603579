package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knowmarket/packguard/internal/config"
	"github.com/knowmarket/packguard/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the active threat-rule catalog",
	RunE:  rulesCommand,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func rulesCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(catalogPath, logPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	catalog, err := rules.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	all := catalog.All()
	fmt.Fprintf(cmd.OutOrStdout(), "%d rules active\n\n", len(all))
	for _, r := range all {
		phase := "deep"
		if r.Triage {
			phase = "triage"
		}
		suffix := ""
		if r.Suppressible {
			suffix = "  (waived for personality tone)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %-28s %-8s %-6s %-5s %s%s\n",
			r.ID, r.Severity, phase, r.EffectiveAction(), r.Message, suffix)
	}
	return nil
}
