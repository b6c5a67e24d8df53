package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kawalpreet/folio/internal/db"
)

// ErrNotFound is returned when a message id does not exist.
var ErrNotFound = errors.New("message not found")

// ListFilter controls which messages are returned by List.
type ListFilter struct {
	Statuses []Status
	Since    time.Time
	Limit    int
	Offset   int
}

// Store persists contact messages.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts a new message and returns it as stored. If m.ID is empty a
// UUID is generated.
func (s *Store) Create(ctx context.Context, m Message) (*Message, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Status == "" {
		m.Status = StatusPending
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, body, remote_addr, user_agent, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Body, m.RemoteAddr, m.UserAgent, string(m.Status),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting message: %w", err)
	}
	return s.GetByID(ctx, m.ID)
}

const selectColumns = `SELECT id, name, email, body, remote_addr, user_agent, status, attempts, last_error, created_at, delivered_at FROM contact_messages`

// GetByID retrieves a single message.
func (s *Store) GetByID(ctx context.Context, id string) (*Message, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	m, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning message: %w", err)
	}
	return m, nil
}

// List returns messages matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Message, error) {
	var (
		clauses []string
		args    []any
	)

	if len(filter.Statuses) > 0 {
		marks := make([]string, len(filter.Statuses))
		for i, st := range filter.Statuses {
			marks[i] = "?"
			args = append(args, string(st))
		}
		clauses = append(clauses, "status IN ("+strings.Join(marks, ",")+")")
	}
	if !filter.Since.IsZero() {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.DateTime))
	}

	query := selectColumns
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC, rowid DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
		if filter.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var result []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		result = append(result, *m)
	}
	return result, rows.Err()
}

// GetUndelivered returns every message still pending or that failed its
// last delivery attempt.
func (s *Store) GetUndelivered(ctx context.Context) ([]Message, error) {
	return s.List(ctx, ListFilter{Statuses: []Status{StatusPending, StatusFailed}})
}

// Count returns the number of stored messages with the given status, or all
// messages when status is empty.
func (s *Store) Count(ctx context.Context, status Status) (int, error) {
	query := "SELECT COUNT(*) FROM contact_messages"
	var args []any
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, string(status))
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting messages: %w", err)
	}
	return n, nil
}

// MarkDelivered records a successful delivery attempt.
func (s *Store) MarkDelivered(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE contact_messages
		SET status = 'delivered', attempts = attempts + 1, last_error = '', delivered_at = ?
		WHERE id = ?`,
		time.Now().UTC().Format(time.DateTime), id,
	)
	if err != nil {
		return fmt.Errorf("marking message delivered: %w", err)
	}
	return requireRow(res, id)
}

// MarkFailed records a failed delivery attempt and its cause.
func (s *Store) MarkFailed(ctx context.Context, id string, cause string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE contact_messages
		SET status = 'failed', attempts = attempts + 1, last_error = ?
		WHERE id = ?`,
		cause, id,
	)
	if err != nil {
		return fmt.Errorf("marking message failed: %w", err)
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id string) error {
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(sc scanner) (*Message, error) {
	var (
		m           Message
		status      string
		createdAt   sql.NullString
		deliveredAt sql.NullString
	)

	err := sc.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.RemoteAddr, &m.UserAgent,
		&status, &m.Attempts, &m.LastError, &createdAt, &deliveredAt)
	if err != nil {
		return nil, err
	}

	m.Status = Status(status)
	if t, ok := parseTimestamp(createdAt); ok {
		m.CreatedAt = t
	}
	if t, ok := parseTimestamp(deliveredAt); ok {
		m.DeliveredAt = &t
	}
	return &m, nil
}

// timestampLayouts covers SQLite's datetime('now') text and the RFC 3339
// form the driver produces for DATETIME columns.
var timestampLayouts = []string{
	time.DateTime,
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z",
}

func parseTimestamp(v sql.NullString) (time.Time, bool) {
	if !v.Valid || v.String == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v.String); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
