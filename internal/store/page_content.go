// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"royalsite/internal/models"
)

// PageContentStore handles per-page editorial copy. One row per page key,
// enforced by a UNIQUE constraint; writes go through an upsert so the
// admin can author a page's copy without caring whether a row exists yet.
type PageContentStore struct {
	db *sql.DB
}

// NewPageContentStore creates a new PageContentStore with the given database connection.
func NewPageContentStore(db *sql.DB) *PageContentStore {
	return &PageContentStore{db: db}
}

const pageContentColumns = `id, page, title, title_ar, subtitle, subtitle_ar,
	content, content_ar, meta_description, meta_description_ar, updated_at`

func scanPageContent(scanner interface{ Scan(...any) error }) (*models.PageContent, error) {
	pc := &models.PageContent{}
	err := scanner.Scan(
		&pc.ID, &pc.Page, &pc.Title.EN, &pc.Title.AR, &pc.Subtitle.EN, &pc.Subtitle.AR,
		&pc.Content.EN, &pc.Content.AR, &pc.MetaDescription.EN, &pc.MetaDescription.AR,
		&pc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return pc, nil
}

// Find returns the content row for a page key, or nil when the admin has
// not authored one — callers render defaults in that case, never an error.
func (s *PageContentStore) Find(page models.PageKey) (*models.PageContent, error) {
	row := s.db.QueryRow(`SELECT `+pageContentColumns+` FROM page_contents WHERE page = $1`, page)
	pc, err := scanPageContent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page content %s: %w", page, err)
	}
	return pc, nil
}

// List returns all authored page rows in page-key order.
func (s *PageContentStore) List() ([]models.PageContent, error) {
	rows, err := s.db.Query(`SELECT ` + pageContentColumns + ` FROM page_contents ORDER BY page`)
	if err != nil {
		return nil, fmt.Errorf("list page contents: %w", err)
	}
	defer rows.Close()

	var items []models.PageContent
	for rows.Next() {
		pc, err := scanPageContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page content: %w", err)
		}
		items = append(items, *pc)
	}
	return items, rows.Err()
}

// Save upserts the row for pc.Page and returns the stored version.
func (s *PageContentStore) Save(pc *models.PageContent) (*models.PageContent, error) {
	if !models.ValidPageKey(string(pc.Page)) {
		return nil, fmt.Errorf("save page content: unknown page %q", pc.Page)
	}

	row := s.db.QueryRow(`
		INSERT INTO page_contents (page, title, title_ar, subtitle, subtitle_ar,
			content, content_ar, meta_description, meta_description_ar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (page) DO UPDATE SET
			title = EXCLUDED.title, title_ar = EXCLUDED.title_ar,
			subtitle = EXCLUDED.subtitle, subtitle_ar = EXCLUDED.subtitle_ar,
			content = EXCLUDED.content, content_ar = EXCLUDED.content_ar,
			meta_description = EXCLUDED.meta_description,
			meta_description_ar = EXCLUDED.meta_description_ar,
			updated_at = NOW()
		RETURNING `+pageContentColumns,
		pc.Page, pc.Title.EN, pc.Title.AR, pc.Subtitle.EN, pc.Subtitle.AR,
		pc.Content.EN, pc.Content.AR, pc.MetaDescription.EN, pc.MetaDescription.AR,
	)
	result, err := scanPageContent(row)
	if err != nil {
		return nil, fmt.Errorf("save page content %s: %w", pc.Page, err)
	}
	return result, nil
}
