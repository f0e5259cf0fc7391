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

// TestimonialStore handles testimonial database operations.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore creates a new TestimonialStore with the given database connection.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

const testimonialColumns = `id, customer_name, customer_name_ar, position, position_ar,
	company, company_ar, quote, quote_ar, image, rating, is_active, display_order, created_at`

func scanTestimonial(scanner interface{ Scan(...any) error }) (*models.Testimonial, error) {
	t := &models.Testimonial{}
	err := scanner.Scan(
		&t.ID, &t.CustomerName.EN, &t.CustomerName.AR, &t.Position.EN, &t.Position.AR,
		&t.Company.EN, &t.Company.AR, &t.Quote.EN, &t.Quote.AR,
		&t.Image, &t.Rating, &t.IsActive, &t.DisplayOrder, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// List returns all testimonials for the admin console.
func (s *TestimonialStore) List() ([]models.Testimonial, error) {
	return s.list(`SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY display_order, created_at DESC`)
}

// ListActive returns active testimonials for display, newest first among
// order ties. limit <= 0 means no limit.
func (s *TestimonialStore) ListActive(limit int) ([]models.Testimonial, error) {
	q := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE is_active ORDER BY display_order, created_at DESC`
	if limit > 0 {
		return s.list(q+` LIMIT $1`, limit)
	}
	return s.list(q)
}

func (s *TestimonialStore) list(query string, args ...any) ([]models.Testimonial, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var items []models.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// FindByID retrieves a testimonial by UUID. Returns nil if not found.
func (s *TestimonialStore) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	row := s.db.QueryRow(`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id)
	t, err := scanTestimonial(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find testimonial by id: %w", err)
	}
	return t, nil
}

// Create inserts a new testimonial and returns it. The rating must be
// inside the 1-5 range.
func (s *TestimonialStore) Create(t *models.Testimonial) (*models.Testimonial, error) {
	if !t.ValidRating() {
		return nil, fmt.Errorf("create testimonial: rating %d out of range 1-5", t.Rating)
	}

	row := s.db.QueryRow(`
		INSERT INTO testimonials (customer_name, customer_name_ar, position, position_ar,
			company, company_ar, quote, quote_ar, image, rating, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+testimonialColumns,
		t.CustomerName.EN, t.CustomerName.AR, t.Position.EN, t.Position.AR,
		t.Company.EN, t.Company.AR, t.Quote.EN, t.Quote.AR,
		t.Image, t.Rating, t.IsActive, t.DisplayOrder,
	)
	result, err := scanTestimonial(row)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return result, nil
}

// Update modifies an existing testimonial.
func (s *TestimonialStore) Update(t *models.Testimonial) error {
	if !t.ValidRating() {
		return fmt.Errorf("update testimonial: rating %d out of range 1-5", t.Rating)
	}

	_, err := s.db.Exec(`
		UPDATE testimonials SET
			customer_name = $1, customer_name_ar = $2, position = $3, position_ar = $4,
			company = $5, company_ar = $6, quote = $7, quote_ar = $8,
			image = $9, rating = $10, is_active = $11, display_order = $12
		WHERE id = $13
	`, t.CustomerName.EN, t.CustomerName.AR, t.Position.EN, t.Position.AR,
		t.Company.EN, t.Company.AR, t.Quote.EN, t.Quote.AR,
		t.Image, t.Rating, t.IsActive, t.DisplayOrder, t.ID)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	return nil
}

// Delete removes a testimonial by ID.
func (s *TestimonialStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}
