// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

// PortfolioPageSize is the fixed number of projects per portfolio page.
const PortfolioPageSize = 9

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int `json:"page"`        // current page, 1-based
	PageSize   int `json:"page_size"`   //
	TotalItems int `json:"total_items"` //
	TotalPages int `json:"total_pages"` // at least 1, even when empty
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

// PrevPage returns the previous page number, clamped to 1.
func (p Pagination) PrevPage() int {
	if p.Page <= 1 {
		return 1
	}
	return p.Page - 1
}

// NextPage returns the next page number, clamped to the last page.
func (p Pagination) NextPage() int {
	if p.Page >= p.TotalPages {
		return p.TotalPages
	}
	return p.Page + 1
}

// Paginate computes pagination for totalItems rows at pageSize per page.
// Out-of-range page numbers clamp to the nearest valid page instead of
// erroring: 0 and negatives become page 1, anything past the end becomes
// the last page. An empty result set still has one (empty) page.
func Paginate(page, pageSize, totalItems int) Pagination {
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
