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

// WhyChooseUsStore handles homepage selling-point rows.
type WhyChooseUsStore struct {
	db *sql.DB
}

// NewWhyChooseUsStore creates a new WhyChooseUsStore with the given database connection.
func NewWhyChooseUsStore(db *sql.DB) *WhyChooseUsStore {
	return &WhyChooseUsStore{db: db}
}

const whyChooseUsColumns = `id, title, title_ar, description, description_ar, icon,
	is_active, display_order, created_at, updated_at`

func scanWhyChooseUsItem(scanner interface{ Scan(...any) error }) (*models.WhyChooseUsItem, error) {
	w := &models.WhyChooseUsItem{}
	err := scanner.Scan(
		&w.ID, &w.Title.EN, &w.Title.AR, &w.Description.EN, &w.Description.AR, &w.Icon,
		&w.IsActive, &w.DisplayOrder, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// List returns all items in display order, inactive included, for the admin.
func (s *WhyChooseUsStore) List() ([]models.WhyChooseUsItem, error) {
	return s.query(`SELECT ` + whyChooseUsColumns + ` FROM why_choose_us_items
		ORDER BY display_order, title`)
}

// ListActive returns active items in display order with title tie-break.
func (s *WhyChooseUsStore) ListActive() ([]models.WhyChooseUsItem, error) {
	return s.query(`SELECT ` + whyChooseUsColumns + ` FROM why_choose_us_items
		WHERE is_active = TRUE ORDER BY display_order, title`)
}

func (s *WhyChooseUsStore) query(q string, args ...any) ([]models.WhyChooseUsItem, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query why choose us items: %w", err)
	}
	defer rows.Close()

	var items []models.WhyChooseUsItem
	for rows.Next() {
		w, err := scanWhyChooseUsItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan why choose us item: %w", err)
		}
		items = append(items, *w)
	}
	return items, rows.Err()
}

// FindByID returns an item by ID, or nil when not found.
func (s *WhyChooseUsStore) FindByID(id uuid.UUID) (*models.WhyChooseUsItem, error) {
	row := s.db.QueryRow(`SELECT `+whyChooseUsColumns+` FROM why_choose_us_items WHERE id = $1`, id)
	w, err := scanWhyChooseUsItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find why choose us item: %w", err)
	}
	return w, nil
}

// Create inserts a new item.
func (s *WhyChooseUsStore) Create(w *models.WhyChooseUsItem) (*models.WhyChooseUsItem, error) {
	row := s.db.QueryRow(`
		INSERT INTO why_choose_us_items (title, title_ar, description, description_ar, icon,
			is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+whyChooseUsColumns,
		w.Title.EN, w.Title.AR, w.Description.EN, w.Description.AR, w.Icon,
		w.IsActive, w.DisplayOrder,
	)
	result, err := scanWhyChooseUsItem(row)
	if err != nil {
		return nil, fmt.Errorf("create why choose us item: %w", err)
	}
	return result, nil
}

// Update modifies an existing item.
func (s *WhyChooseUsStore) Update(w *models.WhyChooseUsItem) (*models.WhyChooseUsItem, error) {
	row := s.db.QueryRow(`
		UPDATE why_choose_us_items
		SET title = $1, title_ar = $2, description = $3, description_ar = $4, icon = $5,
			is_active = $6, display_order = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+whyChooseUsColumns,
		w.Title.EN, w.Title.AR, w.Description.EN, w.Description.AR, w.Icon,
		w.IsActive, w.DisplayOrder, w.ID,
	)
	result, err := scanWhyChooseUsItem(row)
	if err != nil {
		return nil, fmt.Errorf("update why choose us item: %w", err)
	}
	return result, nil
}

// Delete removes an item by ID.
func (s *WhyChooseUsStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM why_choose_us_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete why choose us item: %w", err)
	}
	return nil
}

// CertificationStore handles trust badge rows.
type CertificationStore struct {
	db *sql.DB
}

// NewCertificationStore creates a new CertificationStore with the given database connection.
func NewCertificationStore(db *sql.DB) *CertificationStore {
	return &CertificationStore{db: db}
}

const certificationColumns = `id, name, name_ar, description, description_ar, logo,
	is_active, display_order, created_at, updated_at`

func scanCertification(scanner interface{ Scan(...any) error }) (*models.Certification, error) {
	c := &models.Certification{}
	err := scanner.Scan(
		&c.ID, &c.Name.EN, &c.Name.AR, &c.Description.EN, &c.Description.AR, &c.Logo,
		&c.IsActive, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all certifications in display order, inactive included.
func (s *CertificationStore) List() ([]models.Certification, error) {
	return s.query(`SELECT ` + certificationColumns + ` FROM certifications
		ORDER BY display_order, name`)
}

// ListActive returns active certifications in display order with name tie-break.
func (s *CertificationStore) ListActive() ([]models.Certification, error) {
	return s.query(`SELECT ` + certificationColumns + ` FROM certifications
		WHERE is_active = TRUE ORDER BY display_order, name`)
}

func (s *CertificationStore) query(q string, args ...any) ([]models.Certification, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query certifications: %w", err)
	}
	defer rows.Close()

	var items []models.Certification
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certification: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID returns a certification by ID, or nil when not found.
func (s *CertificationStore) FindByID(id uuid.UUID) (*models.Certification, error) {
	row := s.db.QueryRow(`SELECT `+certificationColumns+` FROM certifications WHERE id = $1`, id)
	c, err := scanCertification(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find certification: %w", err)
	}
	return c, nil
}

// Create inserts a new certification.
func (s *CertificationStore) Create(c *models.Certification) (*models.Certification, error) {
	row := s.db.QueryRow(`
		INSERT INTO certifications (name, name_ar, description, description_ar, logo,
			is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+certificationColumns,
		c.Name.EN, c.Name.AR, c.Description.EN, c.Description.AR, c.Logo,
		c.IsActive, c.DisplayOrder,
	)
	result, err := scanCertification(row)
	if err != nil {
		return nil, fmt.Errorf("create certification: %w", err)
	}
	return result, nil
}

// Update modifies an existing certification.
func (s *CertificationStore) Update(c *models.Certification) (*models.Certification, error) {
	row := s.db.QueryRow(`
		UPDATE certifications
		SET name = $1, name_ar = $2, description = $3, description_ar = $4, logo = $5,
			is_active = $6, display_order = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+certificationColumns,
		c.Name.EN, c.Name.AR, c.Description.EN, c.Description.AR, c.Logo,
		c.IsActive, c.DisplayOrder, c.ID,
	)
	result, err := scanCertification(row)
	if err != nil {
		return nil, fmt.Errorf("update certification: %w", err)
	}
	return result, nil
}

// Delete removes a certification by ID.
func (s *CertificationStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete certification: %w", err)
	}
	return nil
}

// FAQStore handles question/answer rows.
type FAQStore struct {
	db *sql.DB
}

// NewFAQStore creates a new FAQStore with the given database connection.
func NewFAQStore(db *sql.DB) *FAQStore {
	return &FAQStore{db: db}
}

const faqColumns = `id, question, question_ar, answer, answer_ar, category,
	is_active, display_order, created_at, updated_at`

func scanFAQ(scanner interface{ Scan(...any) error }) (*models.FAQ, error) {
	f := &models.FAQ{}
	err := scanner.Scan(
		&f.ID, &f.Question.EN, &f.Question.AR, &f.Answer.EN, &f.Answer.AR, &f.Category,
		&f.IsActive, &f.DisplayOrder, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// List returns all FAQs in display order, inactive included.
func (s *FAQStore) List() ([]models.FAQ, error) {
	return s.query(`SELECT ` + faqColumns + ` FROM faqs ORDER BY display_order, created_at`)
}

// ListActive returns active FAQs in display order, oldest first on ties.
// An empty category returns every category.
func (s *FAQStore) ListActive(category string) ([]models.FAQ, error) {
	if category != "" {
		if !models.ValidFAQCategory(category) {
			return nil, fmt.Errorf("list faqs: unknown category %q", category)
		}
		return s.query(`SELECT `+faqColumns+` FROM faqs
			WHERE is_active = TRUE AND category = $1
			ORDER BY display_order, created_at`, category)
	}
	return s.query(`SELECT ` + faqColumns + ` FROM faqs
		WHERE is_active = TRUE ORDER BY display_order, created_at`)
}

func (s *FAQStore) query(q string, args ...any) ([]models.FAQ, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query faqs: %w", err)
	}
	defer rows.Close()

	var items []models.FAQ
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		items = append(items, *f)
	}
	return items, rows.Err()
}

// FindByID returns a FAQ by ID, or nil when not found.
func (s *FAQStore) FindByID(id uuid.UUID) (*models.FAQ, error) {
	row := s.db.QueryRow(`SELECT `+faqColumns+` FROM faqs WHERE id = $1`, id)
	f, err := scanFAQ(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find faq: %w", err)
	}
	return f, nil
}

// Create inserts a new FAQ.
func (s *FAQStore) Create(f *models.FAQ) (*models.FAQ, error) {
	if !models.ValidFAQCategory(string(f.Category)) {
		return nil, fmt.Errorf("create faq: unknown category %q", f.Category)
	}
	row := s.db.QueryRow(`
		INSERT INTO faqs (question, question_ar, answer, answer_ar, category,
			is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+faqColumns,
		f.Question.EN, f.Question.AR, f.Answer.EN, f.Answer.AR, f.Category,
		f.IsActive, f.DisplayOrder,
	)
	result, err := scanFAQ(row)
	if err != nil {
		return nil, fmt.Errorf("create faq: %w", err)
	}
	return result, nil
}

// Update modifies an existing FAQ.
func (s *FAQStore) Update(f *models.FAQ) (*models.FAQ, error) {
	if !models.ValidFAQCategory(string(f.Category)) {
		return nil, fmt.Errorf("update faq: unknown category %q", f.Category)
	}
	row := s.db.QueryRow(`
		UPDATE faqs
		SET question = $1, question_ar = $2, answer = $3, answer_ar = $4, category = $5,
			is_active = $6, display_order = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+faqColumns,
		f.Question.EN, f.Question.AR, f.Answer.EN, f.Answer.AR, f.Category,
		f.IsActive, f.DisplayOrder, f.ID,
	)
	result, err := scanFAQ(row)
	if err != nil {
		return nil, fmt.Errorf("update faq: %w", err)
	}
	return result, nil
}

// Delete removes a FAQ by ID.
func (s *FAQStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	return nil
}
