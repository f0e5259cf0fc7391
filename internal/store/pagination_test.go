package store

import "testing"

func TestPaginateClamping(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalItems int
		wantPage   int
		wantPages  int
	}{
		{"first page", 1, 20, 1, 3},
		{"middle page", 2, 20, 2, 3},
		{"last page", 3, 20, 3, 3},
		{"past the end clamps to last", 99, 20, 3, 3},
		{"zero clamps to first", 0, 20, 1, 3},
		{"negative clamps to first", -5, 20, 1, 3},
		{"empty set has one page", 1, 0, 1, 1},
		{"empty set clamps high pages", 7, 0, 1, 1},
		{"exact multiple", 2, 18, 2, 2},
		{"single item", 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := Paginate(tt.page, PortfolioPageSize, tt.totalItems)
			if pg.Page != tt.wantPage {
				t.Errorf("page: got %d, want %d", pg.Page, tt.wantPage)
			}
			if pg.TotalPages != tt.wantPages {
				t.Errorf("total pages: got %d, want %d", pg.TotalPages, tt.wantPages)
			}
			if pg.TotalItems != tt.totalItems {
				t.Errorf("total items: got %d, want %d", pg.TotalItems, tt.totalItems)
			}
		})
	}
}

func TestPaginationNavigation(t *testing.T) {
	pg := Paginate(2, PortfolioPageSize, 25) // 3 pages

	if !pg.HasPrev() || !pg.HasNext() {
		t.Error("middle page should have both neighbours")
	}
	if pg.PrevPage() != 1 {
		t.Errorf("prev: got %d, want 1", pg.PrevPage())
	}
	if pg.NextPage() != 3 {
		t.Errorf("next: got %d, want 3", pg.NextPage())
	}
	if pg.Offset() != PortfolioPageSize {
		t.Errorf("offset: got %d, want %d", pg.Offset(), PortfolioPageSize)
	}

	first := Paginate(1, PortfolioPageSize, 25)
	if first.HasPrev() {
		t.Error("first page should not have prev")
	}
	if first.PrevPage() != 1 {
		t.Errorf("first prev clamps: got %d, want 1", first.PrevPage())
	}

	last := Paginate(3, PortfolioPageSize, 25)
	if last.HasNext() {
		t.Error("last page should not have next")
	}
	if last.NextPage() != 3 {
		t.Errorf("last next clamps: got %d, want 3", last.NextPage())
	}
}
