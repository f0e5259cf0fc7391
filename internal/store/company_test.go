package store

import (
	"testing"

	"royalsite/internal/models"
)

func TestCompanyStoreSaveInPlace(t *testing.T) {
	db := testDB(t)
	s := NewCompanyStore(db)

	before, err := s.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	saved, err := s.Save(&models.CompanyInfo{
		Name:         models.Localized{EN: "Royal Aluminium and UPVC Qatar", AR: "رويال للألمنيوم القطرية"},
		Phone:        "+974 4444 0000",
		Email:        "info@royalsite.example",
		ServiceAreas: models.Localized{EN: "Doha, Al Rayyan, Al Wakrah"},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if before != nil && saved.ID != before.ID {
		t.Error("save must edit the existing row in place, not insert another")
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM company_info`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows: got %d, want 1", count)
	}

	after, err := s.Get()
	if err != nil {
		t.Fatalf("Get after save: %v", err)
	}
	if after.Phone != "+974 4444 0000" {
		t.Errorf("phone: got %q", after.Phone)
	}

	areas := after.ServiceAreaList(models.LangEnglish)
	if len(areas) != 3 || areas[0] != "Doha" {
		t.Errorf("service areas: got %v", areas)
	}

	// Restore the previous row for other tests.
	if before != nil {
		t.Cleanup(func() { s.Save(before) })
	}
}
