package store

import (
	"errors"
	"testing"

	"royalsite/internal/models"
)

func TestStatisticsStoreSingletonCreate(t *testing.T) {
	db := testDB(t)
	s := NewStatisticsStore(db)

	existing, err := s.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if existing == nil {
		// Empty table: the first create must succeed.
		existing, err = s.Create(&models.CompanyStatistics{
			YearsInBusiness:   8,
			ProjectsCompleted: 500,
			HappyClients:      350,
			TeamMembers:       25,
			YearsLabel:        models.Localized{EN: "Years in Business"},
		})
		if err != nil {
			t.Fatalf("Create into empty table: %v", err)
		}
	}

	// A second create is always rejected with the sentinel.
	_, err = s.Create(&models.CompanyStatistics{YearsInBusiness: 1})
	if !errors.Is(err, ErrSingletonExists) {
		t.Errorf("second create: got %v, want ErrSingletonExists", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM company_statistics`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows: got %d, want 1", count)
	}
	_ = existing
}

func TestStatisticsStoreUpdate(t *testing.T) {
	db := testDB(t)
	s := NewStatisticsStore(db)

	st, err := s.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if st == nil {
		t.Skip("no statistics row — run seed first")
	}

	orig := st.ProjectsCompleted
	st.ProjectsCompleted = orig + 1
	if err := s.Update(st); err != nil {
		t.Fatalf("Update: %v", err)
	}
	t.Cleanup(func() {
		st.ProjectsCompleted = orig
		s.Update(st)
	})

	after, err := s.Get()
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if after.ProjectsCompleted != orig+1 {
		t.Errorf("projects completed: got %d, want %d", after.ProjectsCompleted, orig+1)
	}
	if after.ID != st.ID {
		t.Error("update must edit the row in place, not replace it")
	}
}

func TestStatisticsStoreDeleteProtected(t *testing.T) {
	db := testDB(t)
	s := NewStatisticsStore(db)

	if err := s.Delete(); !errors.Is(err, ErrSingletonProtected) {
		t.Errorf("Delete: got %v, want ErrSingletonProtected", err)
	}

	// The row survives regardless.
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM company_statistics`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count > 1 {
		t.Errorf("rows: got %d, want at most 1", count)
	}
}
