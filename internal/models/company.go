// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CompanyInfo is the site-wide company profile: contact details, business
// hours, service areas and branding images. At most one row exists; every
// page render reads it.
type CompanyInfo struct {
	ID              uuid.UUID `json:"id"`
	Name            Localized `json:"name"`
	Description     Localized `json:"description"`
	Address         Localized `json:"address"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	WhatsApp        string    `json:"whatsapp,omitempty"`
	WeekdayHours    Localized `json:"weekday_hours"`
	SaturdayHours   Localized `json:"saturday_hours"`
	SundayHours     Localized `json:"sunday_hours"`
	ServiceAreas    Localized `json:"service_areas"` // comma-separated area names
	ShowroomAddress Localized `json:"showroom_address"`
	Logo            string    `json:"logo,omitempty"`
	HeroImage       string    `json:"hero_image,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ServiceAreaList splits the comma-separated service areas for the given
// language into trimmed names.
func (c *CompanyInfo) ServiceAreaList(lang Lang) []string {
	raw := c.ServiceAreas.In(lang)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	areas := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			areas = append(areas, p)
		}
	}
	return areas
}

// CompanyStatistics is the four-counter block on the homepage. A single
// row exists for the whole store: creation is rejected once one exists and
// the row can never be deleted, only edited.
type CompanyStatistics struct {
	ID                uuid.UUID `json:"id"`
	YearsInBusiness   int       `json:"years_in_business"`
	ProjectsCompleted int       `json:"projects_completed"`
	HappyClients      int       `json:"happy_clients"`
	TeamMembers       int       `json:"team_members"`
	YearsLabel        Localized `json:"years_label"`
	ProjectsLabel     Localized `json:"projects_label"`
	ClientsLabel      Localized `json:"clients_label"`
	TeamLabel         Localized `json:"team_label"`
	UpdatedAt         time.Time `json:"updated_at"`
}
