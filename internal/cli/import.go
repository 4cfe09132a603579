package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/knowmarket/packguard/internal/apply"
	"github.com/knowmarket/packguard/internal/approval"
	"github.com/knowmarket/packguard/internal/config"
	"github.com/knowmarket/packguard/internal/report"
	"github.com/knowmarket/packguard/internal/rules"
	"github.com/knowmarket/packguard/internal/scan"
)

var (
	importContentType string
	importOut         string
	importForce       bool
)

var importCmd = &cobra.Command{
	Use:   "import <package.json>",
	Short: "Scan a package, strip blocked content, and write the cleaned file",
	Long: `Import runs the full pipeline, removes every insight and attachment that
carries a BLOCK flag, and writes the cleaned package. With --force, a human
reviewer may override the BLOCK flags; overridden content is kept and imported
with WARN-equivalent reporting.

  packguard import insights.json --out cleaned.json
  packguard import --force suspicious.json --out cleaned.json`,
	Args: cobra.ExactArgs(1),
	RunE: importCommand,
}

func init() {
	importCmd.Flags().StringVar(&importContentType, "type", "", "Content type override: knowledge or imprint")
	importCmd.Flags().StringVar(&importOut, "out", "", "Path to write the cleaned package (default: stdout)")
	importCmd.Flags().BoolVar(&importForce, "force", false, "Offer to override BLOCK flags before applying actions")
	rootCmd.AddCommand(importCmd)
}

func importCommand(cmd *cobra.Command, args []string) error {
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
	opts.ContentType, err = contentTypeFromFlag(importContentType)
	if err != nil {
		return err
	}

	result := scanner.Scan(p, opts)

	flags := result.Flags
	forced := false
	if importForce && !result.Safe {
		if askOverride(p.ID, p.Title, result) {
			flags = apply.Override(flags)
			forced = true
		}
	}

	cleaned, rep := apply.Actions(p, flags)

	if err := logScan(cfg, p.ID, p.Title, result, "import", forced, rep.Summary.InsightsRemoved); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: audit log: %v\n", err)
	}

	fmt.Fprint(cmd.ErrOrStderr(), report.FormatClean(rep))

	if !rep.Success {
		return fmt.Errorf("import of %s failed: %s", p.ID, rep.Warning)
	}

	data, err := json.MarshalIndent(cleaned, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if importOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(importOut, data, 0644); err != nil {
		return fmt.Errorf("write cleaned package: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Cleaned package written to %s\n", importOut)
	return nil
}

func askOverride(packageID, title string, result *scan.Result) bool {
	var blocked []string
	for _, f := range result.Flags {
		if f.Action == rules.ActionBlock && !f.Overridden {
			blocked = append(blocked, f.RuleID)
		}
	}

	res := approval.Ask(approval.Prompt{
		PackageID:    packageID,
		PackageTitle: title,
		ThreatScore:  result.ThreatScore,
		BlockedRules: blocked,
	})
	return res.Approved
}
