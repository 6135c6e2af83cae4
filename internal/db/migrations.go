package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS tasks (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			start_date    TEXT NOT NULL,
			end_date      TEXT NOT NULL,
			parent_id     TEXT REFERENCES tasks(id),
			hide_children INTEGER CHECK(hide_children IN (0, 1)),
			position      INTEGER NOT NULL DEFAULT 0,
			created_at    TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_parent ON tasks(parent_id, position);

		CREATE TABLE IF NOT EXISTS time_entries (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id    TEXT NOT NULL REFERENCES tasks(id),
			started_at TEXT NOT NULL,
			stopped_at TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_time_entries_task ON time_entries(task_id);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
