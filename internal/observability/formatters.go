// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"cv-portfolio-agent/internal/generation"
	"cv-portfolio-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCVData outputs a human-readable summary of the extracted CV record.
func (p *Printer) PrintCVData(data *types.CVData) {
	if data == nil {
		return
	}

	if !data.IsStructured() {
		preview := data.RawAnalysis
		if len(preview) > 200 {
			preview = preview[:197] + "..."
		}
		p.printBox("CV ANALYSIS (raw, unstructured)", preview)
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", data.Personal.Name))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", data.Personal.Title))
	if data.Personal.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", data.Personal.Email))
	}
	sb.WriteString("\n")

	if len(data.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(data.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := data.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Role))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", exp.Company))
			}
			sb.WriteString("\n")
		}
		if len(data.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(data.Projects) > 0 {
		sb.WriteString("Projects:\n")
		count := min(len(data.Projects), 3)
		for i := 0; i < count; i++ {
			proj := data.Projects[i]
			sb.WriteString(fmt.Sprintf("  • %s", proj.Name))
			if len(proj.TechStack) > 0 {
				stack := strings.Join(proj.TechStack, ", ")
				if len(stack) > 30 {
					stack = stack[:27] + "..."
				}
				sb.WriteString(fmt.Sprintf(" [%s]", stack))
			}
			sb.WriteString("\n")
		}
		if len(data.Projects) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Projects)-3))
		}
		sb.WriteString("\n")
	}

	if len(data.Skills.Languages) > 0 {
		langs := strings.Join(data.Skills.Languages, ", ")
		if len(langs) > 45 {
			langs = langs[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Languages: %s\n", langs))
	}

	p.printBox("EXTRACTED CV DATA", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPageReport outputs the structural facts of the generated page.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPageReport(report generation.PageReport) {
	var sb strings.Builder

	title := report.Title
	if title == "" {
		title = "(missing)"
	}
	sb.WriteString(fmt.Sprintf("Title:    %s\n", title))
	sb.WriteString(fmt.Sprintf("Sections: %d\n", report.Sections))
	sb.WriteString(fmt.Sprintf("Links:    %d", report.Links))
	if report.EmptyLinks > 0 {
		sb.WriteString(fmt.Sprintf(" (%d empty)", report.EmptyLinks))
	}
	sb.WriteString("\n\n")

	checks := []string{}
	if report.HasDoctype {
		checks = append(checks, "✓doctype")
	} else {
		checks = append(checks, "✗doctype")
	}
	if report.HasAOSMarker {
		checks = append(checks, "✓animations")
	} else {
		checks = append(checks, "✗animations")
	}
	sb.WriteString(fmt.Sprintf("Checks: %s", strings.Join(checks, " ")))

	p.printBox("GENERATED PAGE", sb.String())
}

// PrintArtifacts outputs the paths written during the run.
func (p *Printer) PrintArtifacts(paths []string) {
	if len(paths) == 0 {
		return
	}

	var sb strings.Builder
	for i, path := range paths {
		if len(path) > 52 {
			path = "..." + path[len(path)-49:]
		}
		sb.WriteString(fmt.Sprintf("• %s", path))
		if i < len(paths)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SAVED ARTIFACTS", sb.String())
}
