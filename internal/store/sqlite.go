// Package store provides SQLite storage for timeline datasets.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/record"
)

// SQLite implements timeline.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// ReplaceDataset atomically replaces everything stored with the
// contents of ds.
func (s *SQLite) ReplaceDataset(ctx context.Context, ds *record.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"elements", "done_elements", "stages", "capacities", "range_info"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO range_info (start_date, end_date, lmax) VALUES (?, ?, ?)`,
		ds.Range.StartDate, ds.Range.EndDate, ds.Range.LMax,
	); err != nil {
		return fmt.Errorf("inserting range: %w", err)
	}

	for _, e := range ds.Elements {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO elements (pre_id, date, nat, status) VALUES (?, ?, ?, ?)`,
			e.ID, e.Date, e.Nat, e.Status,
		); err != nil {
			return fmt.Errorf("inserting element %s: %w", e.ID, err)
		}
	}

	for _, id := range ds.Done {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO done_elements (pre_id) VALUES (?)`, id,
		); err != nil {
			return fmt.Errorf("inserting done id %s: %w", id, err)
		}
	}

	for _, st := range ds.Stages {
		elms, err := json.Marshal(st.Elements)
		if err != nil {
			return fmt.Errorf("encoding stage %s elements: %w", st.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO stages (id, type, sdate, edate, pcolor, elm_filtered) VALUES (?, ?, ?, ?, ?, ?)`,
			st.ID, st.Type, st.SDate, st.EDate, st.Color, string(elms),
		); err != nil {
			return fmt.Errorf("inserting stage %s: %w", st.ID, err)
		}
	}

	for _, c := range ds.Capacities {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO capacities (date, capeff, buseff, compeff, eicon) VALUES (?, ?, ?, ?, ?)`,
			c.Date, c.CapEff, c.BusEff, c.CompEff, c.Icon,
		); err != nil {
			return fmt.Errorf("inserting capacity %s: %w", c.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing dataset: %w", err)
	}
	return nil
}

// Dataset loads the stored dataset. Returns an empty dataset when no
// import has happened yet.
func (s *SQLite) Dataset(ctx context.Context) (*record.Dataset, error) {
	ds := &record.Dataset{}

	row := s.db.QueryRowContext(ctx, `SELECT start_date, end_date, lmax FROM range_info LIMIT 1`)
	if err := row.Scan(&ds.Range.StartDate, &ds.Range.EndDate, &ds.Range.LMax); err != nil {
		if err != sql.ErrNoRows {
			return nil, fmt.Errorf("loading range: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `SELECT pre_id, date, nat, status FROM elements ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("loading elements: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e record.Element
		if err := rows.Scan(&e.ID, &e.Date, &e.Nat, &e.Status); err != nil {
			return nil, fmt.Errorf("scanning element: %w", err)
		}
		ds.Elements = append(ds.Elements, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating elements: %w", err)
	}

	done, err := s.db.QueryContext(ctx, `SELECT pre_id FROM done_elements ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("loading done ids: %w", err)
	}
	defer done.Close()
	for done.Next() {
		var id string
		if err := done.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning done id: %w", err)
		}
		ds.Done = append(ds.Done, id)
	}
	if err := done.Err(); err != nil {
		return nil, fmt.Errorf("iterating done ids: %w", err)
	}

	stages, err := s.db.QueryContext(ctx, `SELECT id, type, sdate, edate, pcolor, elm_filtered FROM stages ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("loading stages: %w", err)
	}
	defer stages.Close()
	for stages.Next() {
		var st record.Stage
		var elms string
		if err := stages.Scan(&st.ID, &st.Type, &st.SDate, &st.EDate, &st.Color, &elms); err != nil {
			return nil, fmt.Errorf("scanning stage: %w", err)
		}
		if elms != "" {
			if err := json.Unmarshal([]byte(elms), &st.Elements); err != nil {
				return nil, fmt.Errorf("decoding stage %s elements: %w", st.ID, err)
			}
		}
		ds.Stages = append(ds.Stages, st)
	}
	if err := stages.Err(); err != nil {
		return nil, fmt.Errorf("iterating stages: %w", err)
	}

	caps, err := s.db.QueryContext(ctx, `SELECT date, capeff, buseff, compeff, eicon FROM capacities ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("loading capacities: %w", err)
	}
	defer caps.Close()
	for caps.Next() {
		var c record.Capacity
		if err := caps.Scan(&c.Date, &c.CapEff, &c.BusEff, &c.CompEff, &c.Icon); err != nil {
			return nil, fmt.Errorf("scanning capacity: %w", err)
		}
		ds.Capacities = append(ds.Capacities, c)
	}
	if err := caps.Err(); err != nil {
		return nil, fmt.Errorf("iterating capacities: %w", err)
	}

	return ds, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
