// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectCategory is the fixed set of portfolio categories.
type ProjectCategory string

const (
	CategoryAluminiumKitchen   ProjectCategory = "aluminium_kitchen"
	CategoryUPVCDoorWindow     ProjectCategory = "upvc_door_window"
	CategoryGlassDoorPartition ProjectCategory = "glass_door_partition"
	CategoryAluminumDoorWindow ProjectCategory = "aluminum_door_window"
)

// ProjectCategories lists every category with its display label, in the
// order the portfolio filter shows them.
var ProjectCategories = []struct {
	Value ProjectCategory
	Label Localized
}{
	{CategoryAluminiumKitchen, Localized{EN: "Aluminium Kitchen Cabinet Luxurious Design", AR: "تصميم فاخر لخزائن مطبخ ألمنيوم"}},
	{CategoryUPVCDoorWindow, Localized{EN: "UPVC Door & Window", AR: "أبواب ونوافذ يو بي في سي"}},
	{CategoryGlassDoorPartition, Localized{EN: "Glass Door & Partition", AR: "أبواب وقواطع زجاجية"}},
	{CategoryAluminumDoorWindow, Localized{EN: "Aluminum Door & Window", AR: "أبواب ونوافذ ألمنيوم"}},
}

// ValidCategory reports whether s is one of the fixed portfolio categories.
func ValidCategory(s string) bool {
	switch ProjectCategory(s) {
	case CategoryAluminiumKitchen, CategoryUPVCDoorWindow,
		CategoryGlassDoorPartition, CategoryAluminumDoorWindow:
		return true
	}
	return false
}

// Project is a portfolio entry. The main image is required; additional
// slider images hang off it as ProjectImage rows and are deleted with it.
type Project struct {
	ID           uuid.UUID       `json:"id"`
	Title        Localized       `json:"title"`
	Description  Localized       `json:"description"`
	Image        string          `json:"image"`
	Category     ProjectCategory `json:"category"`
	IsFeatured   bool            `json:"is_featured"`
	IsActive     bool            `json:"is_active"`
	DisplayOrder int             `json:"display_order"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Populated by ProjectStore.FindByID; empty in listings.
	Images []ProjectImage `json:"images,omitempty"`
}

// ProjectImage is an additional slider image owned by a project.
type ProjectImage struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	Image        string    `json:"image"`
	Caption      Localized `json:"caption"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
