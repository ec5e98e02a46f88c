// Package report renders computed charts for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"skychart/pkg/domain"
	"skychart/pkg/serrors"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Format selects the output representation.
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

// ParseFormat resolves a format name. An empty name is Table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return Table, nil
	case Table, JSON, YAML:
		return f, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unknown report format %q", s)
	}
}

// Entry is one computed chart.
type Entry struct {
	At     time.Time          `json:"at" yaml:"at"`
	Frame  string             `json:"frame" yaml:"frame"`
	Result domain.ChartResult `json:"result" yaml:"result"`
}

// Write renders entries to w in the given format.
func Write(w io.Writer, format Format, entries []Entry) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("could not encode json report: %w", err)
		}

		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("could not encode yaml report: %w", err)
		}

		return enc.Close() //nolint: wrapcheck
	case Table, "":
		_, err := io.WriteString(w, Render(entries))

		return err //nolint: wrapcheck
	default:
		return serrors.With(serrors.ErrBadRequest, "unknown report format %q", format)
	}
}

//nolint: gochecknoglobals
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))

	headers = []string{
		"Name", "Quality", "Element", "Sign", "Sign Number",
		"Position", "Degree", "Emoji", "House", "Retrograde",
	}
)

// Render returns the table form of entries. Bodies that could not be placed
// are listed after all tables.
func Render(entries []Entry) string {
	var sb strings.Builder
	var skipped []string

	for _, e := range entries {
		sb.WriteString(titleStyle.Render(e.At.UTC().Format(time.RFC3339) + " (" + e.Frame + ")"))
		sb.WriteString("\n")

		rows := make([][]string, 0, len(e.Result.Placements))
		for _, p := range e.Result.Placements {
			rows = append(rows, []string{
				p.Name,
				p.Quality,
				p.Element,
				p.Sign + " (" + p.SignAbbreviation + ")",
				strconv.Itoa(p.SignIndex + 1),
				strconv.FormatFloat(p.Longitude, 'f', 4, 64),
				strconv.FormatFloat(p.DegreeWithinSign, 'f', 4, 64),
				p.Emoji,
				p.House,
				yesNo(p.Retrograde),
			})
		}
		sb.WriteString(renderTable(headers, rows))
		sb.WriteString("\n")

		for _, s := range e.Result.Skipped {
			skipped = append(skipped, fmt.Sprintf("%s %s (%d): %s",
				e.At.UTC().Format(time.RFC3339), s.Name, s.Body, s.Reason))
		}
	}

	if len(skipped) > 0 {
		sb.WriteString(warnStyle.Render("Skipped bodies:"))
		sb.WriteString("\n")
		for _, s := range skipped {
			sb.WriteString("  " + s + "\n")
		}
	}

	return sb.String()
}

func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	total := len(widths) - 1
	for i := range widths {
		// padding
		widths[i] += 2
		total += widths[i]
	}

	sep := mutedStyle.Render("|")
	line := func(cells []string, style lipgloss.Style) string {
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = style.Width(widths[i]).Render(c)
		}

		return strings.Join(out, sep) + "\n"
	}

	var sb strings.Builder
	sb.WriteString(line(headers, headerStyle))
	sb.WriteString(mutedStyle.Render(strings.Repeat("-", total)) + "\n")
	for _, row := range rows {
		sb.WriteString(line(row, cellStyle))
	}

	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
