package processor

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtchart/internal/format"
	"github.com/mauv0809/courtchart/internal/metrics"
	"github.com/mauv0809/courtchart/internal/override"
	"github.com/mauv0809/courtchart/internal/schedule"
	"github.com/mauv0809/courtchart/internal/snapshot"
	"github.com/mauv0809/courtchart/internal/standings"
	"github.com/mauv0809/courtchart/internal/tiebreak"
	"github.com/mauv0809/courtchart/internal/tournament"
)

// New creates a new Processor.
func New(catalog *format.Catalog, ledger Ledger, metrics metrics.Metrics) *Processor {
	return &Processor{
		catalog: catalog,
		ledger:  ledger,
		metrics: metrics,
	}
}

// Catalog returns the format catalog the processor schedules from.
func (p *Processor) Catalog() *format.Catalog {
	return p.catalog
}

// Schedule generates the matches of a format for competitors in seed order.
func (p *Processor) Schedule(formatID string, competitors []tournament.Competitor) (*ScheduleResult, error) {
	f, matches, err := schedule.GenerateByID(p.catalog, formatID, competitors)
	if err != nil {
		p.reject(err)
		return nil, err
	}
	p.metrics.IncSchedulesGenerated(f.ID)
	log.Info("Generated schedule", "format", f.ID, "matches", len(matches))
	return &ScheduleResult{Format: f, Matches: matches}, nil
}

// Standings aggregates the snapshot's results and resolves ties using the
// overrides stored for the tournament. Overrides in the snapshot replace
// stored ones at the same wins level.
func (p *Processor) Standings(snap *snapshot.Snapshot) (*StandingsResult, error) {
	start := time.Now()
	if err := snap.Validate(); err != nil {
		p.reject(err)
		return nil, err
	}

	f, err := p.catalog.Lookup(snap.FormatID)
	if err != nil {
		p.reject(err)
		return nil, err
	}

	matches := snap.Matches
	if len(matches) > 0 {
		if err := snap.CheckMatches(f); err != nil {
			p.reject(err)
			return nil, err
		}
	} else {
		matches, err = schedule.Generate(f, snap.Seeded())
		if err != nil {
			p.reject(err)
			return nil, err
		}
		log.Debug("Generated matches for snapshot", "format", f.ID, "matches", len(matches))
	}

	rows, err := standings.Aggregate(f, matches, snap.Results)
	if err != nil {
		p.reject(err)
		return nil, err
	}

	overrides, err := p.overridesFor(snap)
	if err != nil {
		return nil, err
	}

	res, err := tiebreak.Resolve(f.Category, rows, matches, snap.Results, overrides)
	if err != nil {
		p.reject(err)
		return nil, err
	}

	p.metrics.IncStandingsResolved()
	p.metrics.AddTieGroups(len(res.Steps))
	p.metrics.ObserveResolveDuration(time.Since(start).Seconds())
	log.Info("Resolved standings", "tournament", snap.TournamentID, "format", f.ID, "competitors", len(rows), "tie_groups", len(res.Steps))
	for _, line := range res.Trace {
		log.Debug("Tiebreak", "tournament", snap.TournamentID, "step", line)
	}

	return &StandingsResult{
		TournamentID: snap.TournamentID,
		FormatID:     f.ID,
		Standings:    res.Standings,
		Projection:   standings.Project(res.Rows()),
		Steps:        res.Steps,
		Trace:        res.Trace,
	}, nil
}

func (p *Processor) overridesFor(snap *snapshot.Snapshot) ([]override.ManualOverride, error) {
	byLevel := make(map[int]override.ManualOverride)
	var levels []int
	add := func(o override.ManualOverride) {
		if _, ok := byLevel[o.WinsLevel]; !ok {
			levels = append(levels, o.WinsLevel)
		}
		byLevel[o.WinsLevel] = o
	}

	if snap.TournamentID != "" && p.ledger != nil {
		stored, err := p.ledger.GetOverrides(snap.TournamentID)
		if err != nil {
			log.Error("Failed to load overrides", "tournament", snap.TournamentID, "error", err)
			return nil, fmt.Errorf("failed to load overrides for %s: %w", snap.TournamentID, err)
		}
		for _, o := range stored {
			add(o)
		}
	}
	for _, o := range snap.Overrides {
		add(o)
	}

	out := make([]override.ManualOverride, 0, len(levels))
	for _, level := range levels {
		out = append(out, byLevel[level])
	}
	return out, nil
}

// RecordOverride stores a director's order for the tie group at winsLevel.
func (p *Processor) RecordOverride(tournamentID string, winsLevel int, order []int, reason, resolvedBy string) (*override.ManualOverride, error) {
	o, err := p.ledger.RecordOverride(tournamentID, winsLevel, order, reason, resolvedBy)
	if err != nil {
		p.reject(err)
		return nil, err
	}
	p.metrics.IncOverridesRecorded()
	log.Info("Recorded override", "tournament", tournamentID, "wins", winsLevel, "order", order, "resolved_by", resolvedBy)
	return o, nil
}

// ClearOverride removes the override at winsLevel, if any.
func (p *Processor) ClearOverride(tournamentID string, winsLevel int) error {
	if err := p.ledger.ClearOverride(tournamentID, winsLevel); err != nil {
		log.Error("Failed to clear override", "tournament", tournamentID, "wins", winsLevel, "error", err)
		return err
	}
	p.metrics.IncOverridesCleared()
	log.Info("Cleared override", "tournament", tournamentID, "wins", winsLevel)
	return nil
}

// Overrides returns the active overrides of a tournament.
func (p *Processor) Overrides(tournamentID string) ([]override.ManualOverride, error) {
	return p.ledger.GetOverrides(tournamentID)
}

// History returns the audit trail of a tournament's overrides.
func (p *Processor) History(tournamentID string) ([]override.AuditEntry, error) {
	return p.ledger.GetHistory(tournamentID)
}

func (p *Processor) reject(err error) {
	reason := Reason(err)
	p.metrics.IncValidationFailures(reason)
	log.Warn("Rejected input", "reason", reason, "error", err)
}

// Reason classifies a validation error for metrics and API responses.
func Reason(err error) string {
	switch {
	case errors.Is(err, format.ErrUnknownFormat):
		return "unknown_format"
	case errors.Is(err, format.ErrInvalidCompetitorCount), errors.Is(err, schedule.ErrCompetitorCountMismatch):
		return "competitor_count"
	case errors.Is(err, schedule.ErrInvalidSeeding):
		return "seeding"
	case errors.Is(err, tournament.ErrInconsistentSetResult), errors.Is(err, tournament.ErrUnknownCategory):
		return "set_result"
	case errors.Is(err, override.ErrInvalidOverride):
		return "override"
	case errors.Is(err, tiebreak.ErrInvalidStandings):
		return "standings"
	case errors.Is(err, snapshot.ErrInvalidSnapshot):
		return "snapshot"
	default:
		return "other"
	}
}

// IsValidation reports whether err is caused by bad input rather than a failure.
func IsValidation(err error) bool {
	return Reason(err) != "other"
}
