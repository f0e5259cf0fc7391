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

// ProjectStore handles portfolio project database operations, including
// the project's owned slider images.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

const projectColumns = `id, title, title_ar, description, description_ar,
	image, category, is_featured, is_active, display_order, created_at, updated_at`

func scanProject(scanner interface{ Scan(...any) error }) (*models.Project, error) {
	p := &models.Project{}
	err := scanner.Scan(
		&p.ID, &p.Title.EN, &p.Title.AR, &p.Description.EN, &p.Description.AR,
		&p.Image, &p.Category, &p.IsFeatured, &p.IsActive, &p.DisplayOrder,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// projectOrder is the display contract: display_order ascending, newest
// first among ties.
const projectOrder = ` ORDER BY display_order, created_at DESC`

// List returns all projects for the admin console.
func (s *ProjectStore) List() ([]models.Project, error) {
	return s.list(`SELECT ` + projectColumns + ` FROM projects` + projectOrder)
}

// ListActive returns every active project, ordered.
func (s *ProjectStore) ListActive() ([]models.Project, error) {
	return s.list(`SELECT ` + projectColumns + ` FROM projects WHERE is_active` + projectOrder)
}

// ListFeatured returns active, featured projects, ordered, capped at limit.
func (s *ProjectStore) ListFeatured(limit int) ([]models.Project, error) {
	return s.list(`SELECT `+projectColumns+` FROM projects WHERE is_featured AND is_active`+projectOrder+` LIMIT $1`, limit)
}

// ListActivePaged returns one portfolio page of active projects, optionally
// narrowed to a category before ordering and pagination. The page number is
// clamped to the valid range; page size is fixed at PortfolioPageSize.
func (s *ProjectStore) ListActivePaged(category string, page int) ([]models.Project, Pagination, error) {
	where := `WHERE is_active`
	var args []any
	if category != "" {
		where += ` AND category = $1`
		args = append(args, category)
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM projects `+where, args...).Scan(&total); err != nil {
		return nil, Pagination{}, fmt.Errorf("count projects: %w", err)
	}

	pg := Paginate(page, PortfolioPageSize, total)

	q := fmt.Sprintf(`SELECT %s FROM projects %s%s LIMIT $%d OFFSET $%d`,
		projectColumns, where, projectOrder, len(args)+1, len(args)+2)
	args = append(args, pg.PageSize, pg.Offset())

	items, err := s.list(q, args...)
	if err != nil {
		return nil, Pagination{}, err
	}
	return items, pg, nil
}

func (s *ProjectStore) list(query string, args ...any) ([]models.Project, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var items []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a project with its slider images. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	row := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}

	images, err := s.ListImages(id)
	if err != nil {
		return nil, err
	}
	p.Images = images
	return p, nil
}

// Create inserts a new project and returns it with generated fields.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	row := s.db.QueryRow(`
		INSERT INTO projects (title, title_ar, description, description_ar,
		                      image, category, is_featured, is_active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+projectColumns,
		p.Title.EN, p.Title.AR, p.Description.EN, p.Description.AR,
		p.Image, p.Category, p.IsFeatured, p.IsActive, p.DisplayOrder,
	)
	result, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return result, nil
}

// Update modifies an existing project.
func (s *ProjectStore) Update(p *models.Project) error {
	_, err := s.db.Exec(`
		UPDATE projects SET
			title = $1, title_ar = $2, description = $3, description_ar = $4,
			image = $5, category = $6, is_featured = $7, is_active = $8,
			display_order = $9, updated_at = NOW()
		WHERE id = $10
	`, p.Title.EN, p.Title.AR, p.Description.EN, p.Description.AR,
		p.Image, p.Category, p.IsFeatured, p.IsActive, p.DisplayOrder, p.ID)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project by ID. Its slider images go with it
// (ON DELETE CASCADE).
func (s *ProjectStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// --- Slider images ---

const projectImageColumns = `id, project_id, image, caption, caption_ar, display_order, created_at`

func scanProjectImage(scanner interface{ Scan(...any) error }) (*models.ProjectImage, error) {
	img := &models.ProjectImage{}
	err := scanner.Scan(
		&img.ID, &img.ProjectID, &img.Image, &img.Caption.EN, &img.Caption.AR,
		&img.DisplayOrder, &img.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// ListImages returns a project's slider images, oldest first among order ties.
func (s *ProjectStore) ListImages(projectID uuid.UUID) ([]models.ProjectImage, error) {
	rows, err := s.db.Query(`
		SELECT `+projectImageColumns+` FROM project_images
		WHERE project_id = $1
		ORDER BY display_order, created_at
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project images: %w", err)
	}
	defer rows.Close()

	var items []models.ProjectImage
	for rows.Next() {
		img, err := scanProjectImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project image: %w", err)
		}
		items = append(items, *img)
	}
	return items, rows.Err()
}

// AddImage attaches a slider image to a project and returns it.
func (s *ProjectStore) AddImage(img *models.ProjectImage) (*models.ProjectImage, error) {
	row := s.db.QueryRow(`
		INSERT INTO project_images (project_id, image, caption, caption_ar, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+projectImageColumns,
		img.ProjectID, img.Image, img.Caption.EN, img.Caption.AR, img.DisplayOrder,
	)
	result, err := scanProjectImage(row)
	if err != nil {
		return nil, fmt.Errorf("add project image: %w", err)
	}
	return result, nil
}

// DeleteImage removes a single slider image. The owning project is untouched.
func (s *ProjectStore) DeleteImage(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM project_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project image: %w", err)
	}
	return nil
}
