package store

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS range_info (
			start_date TEXT NOT NULL,
			end_date   TEXT NOT NULL,
			lmax       REAL NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS elements (
			pre_id TEXT NOT NULL,
			date   TEXT NOT NULL,
			nat    TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS done_elements (
			pre_id TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS stages (
			id           TEXT NOT NULL,
			type         TEXT NOT NULL DEFAULT '',
			sdate        TEXT NOT NULL,
			edate        TEXT NOT NULL,
			pcolor       TEXT NOT NULL DEFAULT '',
			elm_filtered TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS capacities (
			date    TEXT NOT NULL,
			capeff  REAL NOT NULL DEFAULT 0,
			buseff  REAL NOT NULL DEFAULT 0,
			compeff REAL NOT NULL DEFAULT 0,
			eicon   TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_elements_date ON elements(date);
		CREATE INDEX IF NOT EXISTS idx_stages_dates ON stages(sdate, edate);
		CREATE INDEX IF NOT EXISTS idx_capacities_date ON capacities(date);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
