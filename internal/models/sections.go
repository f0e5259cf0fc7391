// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// WhyChooseUsItem is one selling point in the homepage "why choose us"
// section.
type WhyChooseUsItem struct {
	ID           uuid.UUID `json:"id"`
	Title        Localized `json:"title"`
	Description  Localized `json:"description"`
	Icon         string    `json:"icon,omitempty"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Certification is a trust badge (ISO certificate, supplier accreditation).
type Certification struct {
	ID           uuid.UUID `json:"id"`
	Name         Localized `json:"name"`
	Description  Localized `json:"description"`
	Logo         string    `json:"logo,omitempty"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FAQCategory groups frequently asked questions.
type FAQCategory string

const (
	FAQGeneral      FAQCategory = "general"
	FAQProducts     FAQCategory = "products"
	FAQInstallation FAQCategory = "installation"
	FAQPricing      FAQCategory = "pricing"
	FAQWarranty     FAQCategory = "warranty"
)

// ValidFAQCategory reports whether s is a known FAQ category.
func ValidFAQCategory(s string) bool {
	switch FAQCategory(s) {
	case FAQGeneral, FAQProducts, FAQInstallation, FAQPricing, FAQWarranty:
		return true
	}
	return false
}

// FAQ is a question/answer pair shown on the services page.
type FAQ struct {
	ID           uuid.UUID   `json:"id"`
	Question     Localized   `json:"question"`
	Answer       Localized   `json:"answer"`
	Category     FAQCategory `json:"category"`
	IsActive     bool        `json:"is_active"`
	DisplayOrder int         `json:"display_order"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
