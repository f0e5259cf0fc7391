// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"royalsite/internal/models"
)

// CompanyStore handles the CompanyInfo singleton. The row is created at
// seed time; the store reads the first (and only) row and edits it in
// place. There is no delete.
type CompanyStore struct {
	db *sql.DB
}

// NewCompanyStore creates a new CompanyStore with the given database connection.
func NewCompanyStore(db *sql.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

const companyColumns = `id, name, name_ar, description, description_ar,
	address, address_ar, phone, email, whatsapp,
	weekday_hours, weekday_hours_ar, saturday_hours, saturday_hours_ar,
	sunday_hours, sunday_hours_ar, service_areas, service_areas_ar,
	showroom_address, showroom_address_ar, logo, hero_image, created_at, updated_at`

func scanCompanyInfo(scanner interface{ Scan(...any) error }) (*models.CompanyInfo, error) {
	c := &models.CompanyInfo{}
	err := scanner.Scan(
		&c.ID, &c.Name.EN, &c.Name.AR, &c.Description.EN, &c.Description.AR,
		&c.Address.EN, &c.Address.AR, &c.Phone, &c.Email, &c.WhatsApp,
		&c.WeekdayHours.EN, &c.WeekdayHours.AR, &c.SaturdayHours.EN, &c.SaturdayHours.AR,
		&c.SundayHours.EN, &c.SundayHours.AR, &c.ServiceAreas.EN, &c.ServiceAreas.AR,
		&c.ShowroomAddress.EN, &c.ShowroomAddress.AR, &c.Logo, &c.HeroImage,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the company info row, or nil when none exists yet. Pages
// render with blank company sections in the nil case rather than failing.
func (s *CompanyStore) Get() (*models.CompanyInfo, error) {
	row := s.db.QueryRow(`SELECT ` + companyColumns + ` FROM company_info ORDER BY created_at LIMIT 1`)
	c, err := scanCompanyInfo(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get company info: %w", err)
	}
	return c, nil
}

// Save updates the existing row in place, or creates the single row when
// the table is still empty.
func (s *CompanyStore) Save(c *models.CompanyInfo) (*models.CompanyInfo, error) {
	existing, err := s.Get()
	if err != nil {
		return nil, err
	}

	if existing == nil {
		row := s.db.QueryRow(`
			INSERT INTO company_info (name, name_ar, description, description_ar,
				address, address_ar, phone, email, whatsapp,
				weekday_hours, weekday_hours_ar, saturday_hours, saturday_hours_ar,
				sunday_hours, sunday_hours_ar, service_areas, service_areas_ar,
				showroom_address, showroom_address_ar, logo, hero_image)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			        $15, $16, $17, $18, $19, $20, $21)
			RETURNING `+companyColumns,
			c.Name.EN, c.Name.AR, c.Description.EN, c.Description.AR,
			c.Address.EN, c.Address.AR, c.Phone, c.Email, c.WhatsApp,
			c.WeekdayHours.EN, c.WeekdayHours.AR, c.SaturdayHours.EN, c.SaturdayHours.AR,
			c.SundayHours.EN, c.SundayHours.AR, c.ServiceAreas.EN, c.ServiceAreas.AR,
			c.ShowroomAddress.EN, c.ShowroomAddress.AR, c.Logo, c.HeroImage,
		)
		result, err := scanCompanyInfo(row)
		if err != nil {
			return nil, fmt.Errorf("create company info: %w", err)
		}
		return result, nil
	}

	row := s.db.QueryRow(`
		UPDATE company_info SET
			name = $1, name_ar = $2, description = $3, description_ar = $4,
			address = $5, address_ar = $6, phone = $7, email = $8, whatsapp = $9,
			weekday_hours = $10, weekday_hours_ar = $11,
			saturday_hours = $12, saturday_hours_ar = $13,
			sunday_hours = $14, sunday_hours_ar = $15,
			service_areas = $16, service_areas_ar = $17,
			showroom_address = $18, showroom_address_ar = $19,
			logo = $20, hero_image = $21, updated_at = NOW()
		WHERE id = $22
		RETURNING `+companyColumns,
		c.Name.EN, c.Name.AR, c.Description.EN, c.Description.AR,
		c.Address.EN, c.Address.AR, c.Phone, c.Email, c.WhatsApp,
		c.WeekdayHours.EN, c.WeekdayHours.AR, c.SaturdayHours.EN, c.SaturdayHours.AR,
		c.SundayHours.EN, c.SundayHours.AR, c.ServiceAreas.EN, c.ServiceAreas.AR,
		c.ShowroomAddress.EN, c.ShowroomAddress.AR, c.Logo, c.HeroImage,
		existing.ID,
	)
	result, err := scanCompanyInfo(row)
	if err != nil {
		return nil, fmt.Errorf("update company info: %w", err)
	}
	return result, nil
}
