package cli

import (
	"github.com/spf13/cobra"
)

var (
	catalogPath string
	logPath     string
)

var rootCmd = &cobra.Command{
	Use:   "packguard",
	Short: "packguard - content-safety gate for insight packages",
	Long: `packguard scans insight packages traded on the knowledge marketplace
before they are published or absorbed into an agent's memory. A deterministic,
rule-driven two-phase pipeline assigns a threat score and remediation actions
(pass, warn, redact, block); blocked content is physically removed on import.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to extra rule catalog YAML (default: ~/.packguard/catalog.yaml)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to audit log file (default: ~/.packguard/audit.jsonl)")
}

func Execute() error {
	return rootCmd.Execute()
}
