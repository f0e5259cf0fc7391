package store

import (
	"testing"

	"github.com/google/uuid"

	"royalsite/internal/models"
)

func TestTeamStoreRoundTrip(t *testing.T) {
	db := testDB(t)
	s := NewTeamStore(db)

	prefix := "test-team-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTable(t, db, "team_members", "name", prefix) })

	created, err := s.Create(&models.TeamMember{
		Name:     models.Localized{EN: prefix + " Hassan", AR: "حسن"},
		Position: models.Localized{EN: "Site Engineer", AR: "مهندس موقع"},
		Bio:      models.Localized{EN: "Ten years of installation work."},
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected team member, got nil")
	}
	if found.Position.AR != "مهندس موقع" {
		t.Errorf("position_ar: got %q", found.Position.AR)
	}

	found.Bio.AR = "عشر سنوات من أعمال التركيب"
	if err := s.Update(found); err != nil {
		t.Fatalf("Update: %v", err)
	}
	again, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after update: %v", err)
	}
	if again.Bio.AR == "" {
		t.Error("update not persisted")
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if gone != nil {
		t.Error("expected nil after delete")
	}
}

func TestTeamStoreListActiveHidesInactive(t *testing.T) {
	db := testDB(t)
	s := NewTeamStore(db)

	prefix := "test-teamvis-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTable(t, db, "team_members", "name", prefix) })

	for _, m := range []struct {
		suffix string
		active bool
	}{
		{"-shown", true},
		{"-hidden", false},
	} {
		_, err := s.Create(&models.TeamMember{
			Name:     models.Localized{EN: prefix + m.suffix},
			IsActive: m.active,
		})
		if err != nil {
			t.Fatalf("Create %s: %v", m.suffix, err)
		}
	}

	active, err := s.ListActive()
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	for _, m := range active {
		if m.Name.EN == prefix+"-hidden" {
			t.Error("inactive member surfaced in ListActive")
		}
	}

	all, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var found bool
	for _, m := range all {
		if m.Name.EN == prefix+"-hidden" {
			found = true
		}
	}
	if !found {
		t.Error("admin List should include inactive members")
	}
}

func TestTestimonialStoreRatingGuard(t *testing.T) {
	db := testDB(t)
	s := NewTestimonialStore(db)

	prefix := "test-rating-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTable(t, db, "testimonials", "customer_name", prefix) })

	for _, rating := range []int{0, 6, -3} {
		_, err := s.Create(&models.Testimonial{
			CustomerName: models.Localized{EN: prefix},
			Quote:        models.Localized{EN: "Great work"},
			Rating:       rating,
		})
		if err == nil {
			t.Errorf("rating %d should be rejected", rating)
		}
	}

	created, err := s.Create(&models.Testimonial{
		CustomerName: models.Localized{EN: prefix + " Fatima"},
		Quote:        models.Localized{EN: "Flawless partition install", AR: "تركيب قواطع مثالي"},
		Rating:       5,
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Rating != 5 {
		t.Errorf("rating: got %d, want 5", created.Rating)
	}
}

func TestTestimonialStoreListActiveLimit(t *testing.T) {
	db := testDB(t)
	s := NewTestimonialStore(db)

	prefix := "test-tlimit-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTable(t, db, "testimonials", "customer_name", prefix) })

	for i := 0; i < 4; i++ {
		_, err := s.Create(&models.Testimonial{
			CustomerName: models.Localized{EN: prefix + string(rune('a'+i))},
			Quote:        models.Localized{EN: "Recommended"},
			Rating:       4,
			IsActive:     true,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	items, err := s.ListActive(3)
	if err != nil {
		t.Fatalf("ListActive(3): %v", err)
	}
	if len(items) > 3 {
		t.Errorf("limit ignored: got %d items", len(items))
	}
}
