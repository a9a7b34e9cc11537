package standings

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProjectionRow is the plain ranked view of a standings row used for export.
type ProjectionRow struct {
	Position          int    `json:"position"`
	CompetitorID      string `json:"competitor_id"`
	Name              string `json:"name"`
	Seed              int    `json:"seed"`
	Wins              int    `json:"wins"`
	PointDifferential int    `json:"point_differential"`
}

// Project numbers rows that are already in ranked order.
func Project(rows []Row) []ProjectionRow {
	out := make([]ProjectionRow, len(rows))
	for i, r := range rows {
		out[i] = ProjectionRow{
			Position:          i + 1,
			CompetitorID:      r.Competitor.ID,
			Name:              r.Competitor.DisplayName(),
			Seed:              r.Competitor.Seed,
			Wins:              r.Wins,
			PointDifferential: r.PointDifferential,
		}
	}
	return out
}

var projectionHeaders = []string{"Position", "Competitor", "Seed", "Wins", "Point Differential"}

func (p ProjectionRow) record() []string {
	return []string{
		strconv.Itoa(p.Position),
		p.Name,
		strconv.Itoa(p.Seed),
		strconv.Itoa(p.Wins),
		strconv.Itoa(p.PointDifferential),
	}
}

// WriteCSV writes the projection with a header line.
func WriteCSV(w io.Writer, rows []ProjectionRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(projectionHeaders); err != nil {
		return fmt.Errorf("failed to write standings CSV header: %w", err)
	}
	for _, r := range rows {
		if err := writer.Write(r.record()); err != nil {
			return fmt.Errorf("failed to write standings CSV row %d: %w", r.Position, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to finalize standings CSV: %w", err)
	}
	return nil
}

// FormatText renders the projection as an aligned plain-text table.
func FormatText(rows []ProjectionRow) string {
	widths := make([]int, len(projectionHeaders))
	for i, h := range projectionHeaders {
		widths[i] = lipgloss.Width(h)
	}
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = r.record()
		for j, cell := range records[i] {
			widths[j] = max(widths[j], lipgloss.Width(cell))
		}
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	var sb strings.Builder
	writeLine := func(cells []string) {
		for i, c := range cells {
			if i > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(cell.Width(widths[i] + 2).Render(c))
		}
		sb.WriteString("\n")
	}

	writeLine(projectionHeaders)
	total := len(widths) - 1
	for _, w := range widths {
		total += w + 2
	}
	sb.WriteString(strings.Repeat("-", total) + "\n")
	for _, r := range records {
		writeLine(r)
	}
	return sb.String()
}
