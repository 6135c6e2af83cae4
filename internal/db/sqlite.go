// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/ganttlist/internal/task"
)

// SQLite implements task.Repository using SQLite.
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

const taskColumns = `id, name, start_date, end_date, parent_id, hide_children, position, created_at`

// CreateTask adds a new task after its siblings. A leaf parent becomes an
// expanded parent. Returns ErrUnknownParent if the parent doesn't exist.
func (s *SQLite) CreateTask(ctx context.Context, t *task.Task) error {
	if t.ID == "" {
		return task.ErrEmptyID
	}
	if t.Name == "" {
		return task.ErrEmptyName
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var parentID sql.NullString
	if t.ParentID != "" {
		var hide sql.NullInt64
		err := tx.QueryRowContext(ctx, `SELECT hide_children FROM tasks WHERE id = ?`, t.ParentID).Scan(&hide)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("parent %q: %w", t.ParentID, task.ErrUnknownParent)
		}
		if err != nil {
			return fmt.Errorf("querying parent: %w", err)
		}
		if !hide.Valid {
			if _, err := tx.ExecContext(ctx, `UPDATE tasks SET hide_children = 0 WHERE id = ?`, t.ParentID); err != nil {
				return fmt.Errorf("marking parent expanded: %w", err)
			}
		}
		parentID = sql.NullString{String: t.ParentID, Valid: true}
	}

	var position int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM tasks WHERE COALESCE(parent_id, '') = ?`,
		t.ParentID,
	).Scan(&position)
	if err != nil {
		return fmt.Errorf("computing position: %w", err)
	}

	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		t.ID,
		t.Name,
		formatTime(t.Start),
		formatTime(t.End),
		parentID,
		hideChildrenValue(t.Expander),
		position,
		formatTime(t.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing task: %w", err)
	}
	t.Position = position
	return nil
}

// GetTask retrieves a task by ID.
func (s *SQLite) GetTask(ctx context.Context, id string) (*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	t, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %q: %w", id, task.ErrTaskNotFound)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListTasks returns all tasks ordered by parent and position.
func (s *SQLite) ListTasks(ctx context.Context) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY COALESCE(parent_id, ''), position, created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return tasks, nil
}

// SetExpander persists the expand/collapse state of a task.
func (s *SQLite) SetExpander(ctx context.Context, id string, e task.Expander) error {
	result, err := s.db.ExecContext(ctx, `UPDATE tasks SET hide_children = ? WHERE id = ?`, hideChildrenValue(e), id)
	if err != nil {
		return fmt.Errorf("updating expander: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %q: %w", id, task.ErrTaskNotFound)
	}
	return nil
}

// StartTimer opens a time entry for the task.
// Returns ErrTimerRunning if one is already open.
func (s *SQLite) StartTimer(ctx context.Context, id string, at time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists, running int
	err = tx.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM tasks WHERE id = ?),
			(SELECT COUNT(*) FROM time_entries WHERE task_id = ? AND stopped_at IS NULL)
	`, id, id).Scan(&exists, &running)
	if err != nil {
		return fmt.Errorf("checking timer state: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("task %q: %w", id, task.ErrTaskNotFound)
	}
	if running > 0 {
		return fmt.Errorf("task %q: %w", id, task.ErrTimerRunning)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO time_entries (task_id, started_at) VALUES (?, ?)`,
		id, formatTime(at),
	); err != nil {
		return fmt.Errorf("starting timer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing timer: %w", err)
	}
	return nil
}

// StopTimer closes the running time entry of the task.
func (s *SQLite) StopTimer(ctx context.Context, id string, at time.Time) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE time_entries SET stopped_at = ? WHERE task_id = ? AND stopped_at IS NULL`,
		formatTime(at), id,
	)
	if err != nil {
		return fmt.Errorf("stopping timer: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %q: %w", id, task.ErrTimerNotActive)
	}
	return nil
}

// Tracking returns per-task tracked time as of at. Running entries count
// up to at.
func (s *SQLite) Tracking(ctx context.Context, at time.Time) (map[string]task.Tracking, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT task_id, started_at, stopped_at FROM time_entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying time entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]task.Tracking)
	for rows.Next() {
		var (
			taskID    string
			startedAt string
			stoppedAt sql.NullString
		)
		if err := rows.Scan(&taskID, &startedAt, &stoppedAt); err != nil {
			return nil, fmt.Errorf("scanning time entry: %w", err)
		}

		start, err := parseTime(startedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing started at: %w", err)
		}

		tr := out[taskID]
		end := at
		if stoppedAt.Valid {
			end, err = parseTime(stoppedAt.String)
			if err != nil {
				return nil, fmt.Errorf("parsing stopped at: %w", err)
			}
		} else {
			tr.Running = true
			tr.Since = start
		}
		if d := end.Sub(start); d > 0 {
			tr.Total += d
		}
		out[taskID] = tr
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}

	return out, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*task.Task, error) {
	var (
		t         task.Task
		startDate string
		endDate   string
		createdAt string
		parentID  sql.NullString
		hide      sql.NullInt64
	)

	err := row.Scan(&t.ID, &t.Name, &startDate, &endDate, &parentID, &hide, &t.Position, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	if t.Start, err = parseTime(startDate); err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	if t.End, err = parseTime(endDate); err != nil {
		return nil, fmt.Errorf("parsing end date: %w", err)
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	t.ParentID = parentID.String
	var hideChildren *bool
	if hide.Valid {
		v := hide.Int64 == 1
		hideChildren = &v
	}
	t.Expander = task.ExpanderFromHideChildren(hideChildren)

	return &t, nil
}

func hideChildrenValue(e task.Expander) sql.NullInt64 {
	hide := e.HideChildren()
	if hide == nil {
		return sql.NullInt64{}
	}
	if *hide {
		return sql.NullInt64{Int64: 1, Valid: true}
	}
	return sql.NullInt64{Int64: 0, Valid: true}
}

func formatTime(t time.Time) string {
	return t.Round(0).Format(time.RFC3339Nano)
}

// parseTime parses stored timestamps. Date-only values are midnight UTC.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
