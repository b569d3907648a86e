package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/blairham/nodeup/pkg/installer"
)

// Status colors
var (
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
)

// summaryStyle frames the final outcome block
var summaryStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 1)

// renderOutcomeSummary builds the final summary block over the orchestrator's
// outcome. Presentation only: every decision has already been made.
func renderOutcomeSummary(out installer.Outcome) string {
	var b strings.Builder

	if out.Success {
		b.WriteString(successColor.Sprint("Status:   success"))
	} else {
		b.WriteString(failureColor.Sprintf("Status:   failure (%s)", out.Failure))
	}
	b.WriteString("\n")

	switch {
	case out.AlreadyInstalled:
		b.WriteString("Path:     already installed\n")
	case out.StrategyRan:
		fmt.Fprintf(&b, "Strategy: %s\n", out.Strategy)
	default:
		b.WriteString("Path:     stopped before strategy selection\n")
	}

	if out.StrategyRan {
		name := out.Distro.DisplayName
		if out.Distro.Unknown() {
			name = "unidentified"
		}
		fmt.Fprintf(&b, "Distro:   %s\n", name)
	}
	if out.Version != "" {
		fmt.Fprintf(&b, "Version:  %s\n", out.Version)
	}
	if !out.Privilege.Elevated() && out.Failure != installer.FailureUnsupportedPlatform {
		b.WriteString(warnColor.Sprint("Warning:  no privilege elevation available"))
		b.WriteString("\n")
	}
	if out.Err != nil {
		fmt.Fprintf(&b, "Error:    %v\n", out.Err)
	}

	return summaryStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

// printOutcomeSummary prints the summary block
func printOutcomeSummary(out installer.Outcome) {
	fmt.Printf("\n%s\n", renderOutcomeSummary(out))
}
