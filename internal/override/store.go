package override

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// store persists the ledger in the overrides database.
type store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// New creates a Ledger backed by the given database. The schema is created by
// database.InitDB.
func New(db *sql.DB) Ledger {
	return &store{
		db:  db,
		now: time.Now,
	}
}

func (s *store) RecordOverride(tournamentID string, winsLevel int, resolvedOrder []int, reason, resolvedBy string) (*ManualOverride, error) {
	o, err := newOverride(strings.TrimSpace(tournamentID), winsLevel, resolvedOrder, reason, resolvedBy, s.now())
	if err != nil {
		return nil, err
	}
	order, err := msgpack.Marshal(o.ResolvedOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resolved order: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(`
		INSERT INTO manual_overrides (tournament_id, wins_level, id, resolved_order, reason, resolved_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(tournament_id, wins_level) DO UPDATE SET
			id = excluded.id,
			resolved_order = excluded.resolved_order,
			reason = excluded.reason,
			resolved_by = excluded.resolved_by,
			created_at = excluded.created_at;
	`, o.TournamentID, o.WinsLevel, o.ID, order, o.Reason, o.ResolvedBy, o.CreatedAt.UnixNano())
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to upsert override: %w", err)
	}

	if err := insertAudit(tx, auditFor(*o, ActionRecord, o.CreatedAt), order); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	log.Debug("Recorded override", "tournament", o.TournamentID, "wins", o.WinsLevel, "id", o.ID)
	return o, nil
}

func (s *store) ClearOverride(tournamentID string, winsLevel int) error {
	tournamentID = strings.TrimSpace(tournamentID)

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	row := tx.QueryRow(`
		SELECT id, tournament_id, wins_level, resolved_order, reason, resolved_by, created_at
		FROM manual_overrides WHERE tournament_id = ? AND wins_level = ?
	`, tournamentID, winsLevel)
	o, order, err := scanOverride(row)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return nil
	}
	if err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec(`DELETE FROM manual_overrides WHERE tournament_id = ? AND wins_level = ?`, tournamentID, winsLevel); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete override: %w", err)
	}
	if err := insertAudit(tx, auditFor(*o, ActionClear, s.now()), order); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *store) GetOverrides(tournamentID string) ([]ManualOverride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, tournament_id, wins_level, resolved_order, reason, resolved_by, created_at
		FROM manual_overrides WHERE tournament_id = ?
		ORDER BY wins_level DESC
	`, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []ManualOverride
	for rows.Next() {
		o, _, err := scanOverride(rows)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, *o)
	}
	return overrides, rows.Err()
}

func (s *store) GetHistory(tournamentID string) ([]AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, override_id, tournament_id, wins_level, action, resolved_order, reason, resolved_by, created_at
		FROM override_audit WHERE tournament_id = ?
		ORDER BY seq ASC
	`, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		var order []byte
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.OverrideID, &e.TournamentID, &e.WinsLevel, &e.Action, &order, &e.Reason, &e.ResolvedBy, &createdAt); err != nil {
			return nil, err
		}
		if err := msgpack.Unmarshal(order, &e.ResolvedOrder); err != nil {
			return nil, fmt.Errorf("failed to decode audit order %s: %w", e.ID, err)
		}
		e.CreatedAt = time.Unix(0, createdAt).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func insertAudit(tx *sql.Tx, e AuditEntry, order []byte) error {
	_, err := tx.Exec(`
		INSERT INTO override_audit (id, override_id, tournament_id, wins_level, action, resolved_order, reason, resolved_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.OverrideID, e.TournamentID, e.WinsLevel, e.Action, order, e.Reason, e.ResolvedBy, e.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

func scanOverride(scanner interface{ Scan(...any) error }) (*ManualOverride, []byte, error) {
	var o ManualOverride
	var order []byte
	var createdAt int64
	if err := scanner.Scan(&o.ID, &o.TournamentID, &o.WinsLevel, &order, &o.Reason, &o.ResolvedBy, &createdAt); err != nil {
		return nil, nil, err
	}
	if err := msgpack.Unmarshal(order, &o.ResolvedOrder); err != nil {
		return nil, nil, fmt.Errorf("failed to decode resolved order %s: %w", o.ID, err)
	}
	o.CreatedAt = time.Unix(0, createdAt).UTC()
	return &o, order, nil
}
