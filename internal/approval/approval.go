// Package approval prompts a human reviewer before a force-import overrides
// BLOCK flags. Non-interactive sessions auto-deny.
package approval

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type Result struct {
	Approved   bool
	UserAction string
}

// Prompt describes the blocked package being force-imported.
type Prompt struct {
	PackageID    string
	PackageTitle string
	ThreatScore  float64
	BlockedRules []string
}

func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Ask presents the blocked flags and asks whether to override them all.
func Ask(p Prompt) Result {
	if !IsInteractive() {
		return Result{
			Approved:   false,
			UserAction: "auto_deny_non_interactive",
		}
	}

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "FORCE IMPORT - OVERRIDE REQUIRED")
	fmt.Fprintf(os.Stderr, "Package: %s (%s)\n", p.PackageTitle, p.PackageID)
	fmt.Fprintf(os.Stderr, "Threat score: %.2f\n", p.ThreatScore)

	if len(p.BlockedRules) > 0 {
		fmt.Fprintln(os.Stderr, "Blocking rules:")
		for _, rule := range p.BlockedRules {
			fmt.Fprintf(os.Stderr, "  - %s\n", rule)
		}
	}

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Overriding keeps all flagged content and imports it anyway.")
	fmt.Fprintln(os.Stderr, "  [o] Override and import")
	fmt.Fprintln(os.Stderr, "  [d] Deny")
	fmt.Fprintln(os.Stderr, "")

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Fprint(os.Stderr, "Your choice [o/d]: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return Result{
				Approved:   false,
				UserAction: "error_reading_input",
			}
		}

		input = strings.TrimSpace(strings.ToLower(input))

		switch input {
		case "o", "override", "yes", "y":
			return Result{
				Approved:   true,
				UserAction: "override_once",
			}
		case "d", "deny", "no", "n":
			return Result{
				Approved:   false,
				UserAction: "deny",
			}
		default:
			fmt.Fprintln(os.Stderr, "Invalid input. Enter 'o' to override or 'd' to deny.")
		}
	}
}
