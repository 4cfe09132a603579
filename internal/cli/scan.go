package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knowmarket/packguard/internal/config"
	"github.com/knowmarket/packguard/internal/logger"
	"github.com/knowmarket/packguard/internal/report"
	"github.com/knowmarket/packguard/internal/scan"
)

var (
	scanContentType string
	scanDeep        bool
	scanJSON        bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <package.json>",
	Short: "Scan a package and print the threat report",
	Long: `Scan runs the two-phase safety pipeline over a package file and prints
the resulting report. The exit status is non-zero when the package is not
safe to import, so scan works as a CI or pipeline gate.

  packguard scan insights.json
  packguard scan --type imprint --deep persona.json`,
	Args: cobra.ExactArgs(1),
	RunE: scanCommand,
}

func init() {
	scanCmd.Flags().StringVar(&scanContentType, "type", "", "Content type override: knowledge or imprint")
	scanCmd.Flags().BoolVar(&scanDeep, "deep", false, "Force the deep phase regardless of triage findings")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Emit the raw scan result as JSON")
	rootCmd.AddCommand(scanCmd)
}

func scanCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(catalogPath, logPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	p, err := loadPackage(args[0])
	if err != nil {
		return err
	}

	scanner, err := newScanner(cfg)
	if err != nil {
		return err
	}

	opts := scan.Options{Mode: scan.ModeAuto}
	if scanDeep {
		opts.Mode = scan.ModeDeep
	}
	opts.ContentType, err = contentTypeFromFlag(scanContentType)
	if err != nil {
		return err
	}

	result := scanner.Scan(p, opts)

	if err := logScan(cfg, p.ID, p.Title, result, "scan", false, 0); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: audit log: %v\n", err)
	}

	if scanJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), report.FormatScan(result))
	}

	if !result.Safe {
		return fmt.Errorf("package %s is not safe to import (threat score %.2f)", p.ID, result.ThreatScore)
	}
	return nil
}

func logScan(cfg *config.Config, packageID, title string, result *scan.Result, action string, forced bool, removed int) error {
	audit, err := logger.New(cfg.LogPath)
	if err != nil {
		return err
	}
	defer audit.Close()

	ruleIDs := make([]string, 0, len(result.Flags))
	for _, f := range result.Flags {
		ruleIDs = append(ruleIDs, f.RuleID)
	}

	return audit.Log(logger.AuditEvent{
		Action:          action,
		PackageID:       packageID,
		PackageTitle:    title,
		ContentType:     string(result.ContentType),
		ThreatScore:     result.ThreatScore,
		Safe:            result.Safe,
		Forced:          forced,
		TriggeredRules:  ruleIDs,
		InsightsRemoved: removed,
	})
}
