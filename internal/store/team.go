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

// TeamStore handles team member database operations.
type TeamStore struct {
	db *sql.DB
}

// NewTeamStore creates a new TeamStore with the given database connection.
func NewTeamStore(db *sql.DB) *TeamStore {
	return &TeamStore{db: db}
}

const teamColumns = `id, name, name_ar, position, position_ar, bio, bio_ar,
	image, is_active, display_order, created_at`

func scanTeamMember(scanner interface{ Scan(...any) error }) (*models.TeamMember, error) {
	m := &models.TeamMember{}
	err := scanner.Scan(
		&m.ID, &m.Name.EN, &m.Name.AR, &m.Position.EN, &m.Position.AR,
		&m.Bio.EN, &m.Bio.AR, &m.Image, &m.IsActive, &m.DisplayOrder, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List returns all team members for the admin console.
func (s *TeamStore) List() ([]models.TeamMember, error) {
	return s.list(`SELECT ` + teamColumns + ` FROM team_members ORDER BY display_order, name`)
}

// ListActive returns active team members ordered for display.
func (s *TeamStore) ListActive() ([]models.TeamMember, error) {
	return s.list(`SELECT ` + teamColumns + ` FROM team_members WHERE is_active ORDER BY display_order, name`)
}

func (s *TeamStore) list(query string, args ...any) ([]models.TeamMember, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var items []models.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// FindByID retrieves a team member by UUID. Returns nil if not found.
func (s *TeamStore) FindByID(id uuid.UUID) (*models.TeamMember, error) {
	row := s.db.QueryRow(`SELECT `+teamColumns+` FROM team_members WHERE id = $1`, id)
	m, err := scanTeamMember(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find team member by id: %w", err)
	}
	return m, nil
}

// Create inserts a new team member and returns it.
func (s *TeamStore) Create(m *models.TeamMember) (*models.TeamMember, error) {
	row := s.db.QueryRow(`
		INSERT INTO team_members (name, name_ar, position, position_ar, bio, bio_ar, image, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+teamColumns,
		m.Name.EN, m.Name.AR, m.Position.EN, m.Position.AR,
		m.Bio.EN, m.Bio.AR, m.Image, m.IsActive, m.DisplayOrder,
	)
	result, err := scanTeamMember(row)
	if err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}
	return result, nil
}

// Update modifies an existing team member.
func (s *TeamStore) Update(m *models.TeamMember) error {
	_, err := s.db.Exec(`
		UPDATE team_members SET
			name = $1, name_ar = $2, position = $3, position_ar = $4,
			bio = $5, bio_ar = $6, image = $7, is_active = $8, display_order = $9
		WHERE id = $10
	`, m.Name.EN, m.Name.AR, m.Position.EN, m.Position.AR,
		m.Bio.EN, m.Bio.AR, m.Image, m.IsActive, m.DisplayOrder, m.ID)
	if err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	return nil
}

// Delete removes a team member by ID.
func (s *TeamStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}
