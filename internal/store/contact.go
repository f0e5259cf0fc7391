// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"royalsite/internal/models"
)

// ContactStore handles contact form submissions. Messages are immutable
// after creation except for the admin-set status label, so the store
// deliberately has no general Update method.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore creates a new ContactStore with the given database connection.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

const contactColumns = `id, first_name, last_name, email, phone, project_type,
	budget, message, status, created_at, updated_at`

func scanContactMessage(scanner interface{ Scan(...any) error }) (*models.ContactMessage, error) {
	m := &models.ContactMessage{}
	err := scanner.Scan(
		&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.ProjectType,
		&m.Budget, &m.Message, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create persists a new submission with status "new" and a server-set
// creation timestamp. Identical resubmissions create independent rows —
// there is no dedup.
func (s *ContactStore) Create(m *models.ContactMessage) (*models.ContactMessage, error) {
	row := s.db.QueryRow(`
		INSERT INTO contact_messages (first_name, last_name, email, phone, project_type, budget, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+contactColumns,
		m.FirstName, m.LastName, m.Email, m.Phone, m.ProjectType, m.Budget, m.Message,
	)
	result, err := scanContactMessage(row)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return result, nil
}

// List returns messages newest first, optionally filtered by status
// (empty status means all).
func (s *ContactStore) List(status string) ([]models.ContactMessage, error) {
	q := `SELECT ` + contactColumns + ` FROM contact_messages`
	var args []any
	if status != "" {
		q += ` WHERE status = $1`
		args = append(args, status)
	}
	q += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var items []models.ContactMessage
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// FindByID retrieves a message by UUID. Returns nil if not found.
func (s *ContactStore) FindByID(id uuid.UUID) (*models.ContactMessage, error) {
	row := s.db.QueryRow(`SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id)
	m, err := scanContactMessage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find contact message by id: %w", err)
	}
	return m, nil
}

// UpdateStatus sets the triage label. Any known status may be set at any
// time; there is no transition order to enforce.
func (s *ContactStore) UpdateStatus(id uuid.UUID, status models.MessageStatus) error {
	if !models.ValidMessageStatus(string(status)) {
		return fmt.Errorf("update contact status: unknown status %q", status)
	}
	_, err := s.db.Exec(`
		UPDATE contact_messages SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	return nil
}

// CountByStatus returns how many messages carry each status. Used by the
// admin dashboard.
func (s *ContactStore) CountByStatus() (map[models.MessageStatus]int, error) {
	rows, err := s.db.Query(`SELECT status, COUNT(*) FROM contact_messages GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count contact messages: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.MessageStatus]int)
	for rows.Next() {
		var status models.MessageStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan contact count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
