package processor

import (
	"github.com/mauv0809/courtchart/internal/format"
	"github.com/mauv0809/courtchart/internal/metrics"
	"github.com/mauv0809/courtchart/internal/standings"
	"github.com/mauv0809/courtchart/internal/tiebreak"
	"github.com/mauv0809/courtchart/internal/tournament"
)

// Processor runs schedule generation and standings resolution for the service and CLI.
type Processor struct {
	catalog *format.Catalog
	ledger  Ledger
	metrics metrics.Metrics
}

// ScheduleResult is a generated schedule together with its format.
type ScheduleResult struct {
	Format  format.Format      `json:"format"`
	Matches []tournament.Match `json:"matches"`
}

// StandingsResult is the resolved standings of one snapshot.
type StandingsResult struct {
	TournamentID string                    `json:"tournament_id,omitempty"`
	FormatID     string                    `json:"format"`
	Standings    []tiebreak.Standing       `json:"standings"`
	Projection   []standings.ProjectionRow `json:"projection"`
	Steps        []tiebreak.Step           `json:"steps"`
	Trace        []string                  `json:"trace"`
}
