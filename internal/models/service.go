// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is one service the company offers (e.g. UPVC windows,
// glass partitions). Listed on the homepage preview and the services page.
type Service struct {
	ID           uuid.UUID `json:"id"`
	Name         Localized `json:"name"`
	Description  Localized `json:"description"`
	Icon         string    `json:"icon,omitempty"` // icon class name, e.g. "fas fa-window"
	Image        string    `json:"image,omitempty"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TeamMember is a staff profile shown on the about page.
type TeamMember struct {
	ID           uuid.UUID `json:"id"`
	Name         Localized `json:"name"`
	Position     Localized `json:"position"`
	Bio          Localized `json:"bio"`
	Image        string    `json:"image,omitempty"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// Testimonial is a customer quote with a 1-5 star rating.
type Testimonial struct {
	ID           uuid.UUID `json:"id"`
	CustomerName Localized `json:"customer_name"`
	Position     Localized `json:"position"`
	Company      Localized `json:"company"`
	Quote        Localized `json:"quote"`
	Image        string    `json:"image,omitempty"`
	Rating       int       `json:"rating"` // 1..5, enforced by the store and a DB CHECK
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRating reports whether the testimonial's rating is inside the
// allowed 1-5 range.
func (t *Testimonial) ValidRating() bool {
	return t.Rating >= 1 && t.Rating <= 5
}
