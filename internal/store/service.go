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

// ServiceStore handles service database operations.
type ServiceStore struct {
	db *sql.DB
}

// NewServiceStore creates a new ServiceStore with the given database connection.
func NewServiceStore(db *sql.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

const serviceColumns = `id, name, name_ar, description, description_ar,
	icon, image, is_active, display_order, created_at, updated_at`

func scanService(scanner interface{ Scan(...any) error }) (*models.Service, error) {
	sv := &models.Service{}
	err := scanner.Scan(
		&sv.ID, &sv.Name.EN, &sv.Name.AR, &sv.Description.EN, &sv.Description.AR,
		&sv.Icon, &sv.Image, &sv.IsActive, &sv.DisplayOrder, &sv.CreatedAt, &sv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sv, nil
}

// List returns all services for the admin console, inactive ones included.
func (s *ServiceStore) List() ([]models.Service, error) {
	return s.list(`SELECT ` + serviceColumns + ` FROM services ORDER BY display_order, name`)
}

// ListActive returns active services ordered by display_order, ties broken
// by name. limit <= 0 means no limit.
func (s *ServiceStore) ListActive(limit int) ([]models.Service, error) {
	q := `SELECT ` + serviceColumns + ` FROM services WHERE is_active ORDER BY display_order, name`
	if limit > 0 {
		return s.list(q+` LIMIT $1`, limit)
	}
	return s.list(q)
}

func (s *ServiceStore) list(query string, args ...any) ([]models.Service, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var items []models.Service
	for rows.Next() {
		sv, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, *sv)
	}
	return items, rows.Err()
}

// FindByID retrieves a service by UUID. Returns nil if not found.
func (s *ServiceStore) FindByID(id uuid.UUID) (*models.Service, error) {
	row := s.db.QueryRow(`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	sv, err := scanService(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service by id: %w", err)
	}
	return sv, nil
}

// Create inserts a new service and returns it with generated fields.
func (s *ServiceStore) Create(sv *models.Service) (*models.Service, error) {
	row := s.db.QueryRow(`
		INSERT INTO services (name, name_ar, description, description_ar, icon, image, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+serviceColumns,
		sv.Name.EN, sv.Name.AR, sv.Description.EN, sv.Description.AR,
		sv.Icon, sv.Image, sv.IsActive, sv.DisplayOrder,
	)
	result, err := scanService(row)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return result, nil
}

// Update modifies an existing service.
func (s *ServiceStore) Update(sv *models.Service) error {
	_, err := s.db.Exec(`
		UPDATE services SET
			name = $1, name_ar = $2, description = $3, description_ar = $4,
			icon = $5, image = $6, is_active = $7, display_order = $8,
			updated_at = NOW()
		WHERE id = $9
	`, sv.Name.EN, sv.Name.AR, sv.Description.EN, sv.Description.AR,
		sv.Icon, sv.Image, sv.IsActive, sv.DisplayOrder, sv.ID)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete removes a service by ID.
func (s *ServiceStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
