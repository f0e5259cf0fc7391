package models

import "testing"

func TestValidCategory(t *testing.T) {
	valid := []string{
		"aluminium_kitchen", "upvc_door_window",
		"glass_door_partition", "aluminum_door_window",
	}
	for _, c := range valid {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false, want true", c)
		}
	}

	invalid := []string{"", "kitchen", "ALUMINIUM_KITCHEN", "aluminium kitchen", "upvc"}
	for _, c := range invalid {
		if ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = true, want false", c)
		}
	}
}

func TestProjectCategoriesLabels(t *testing.T) {
	if len(ProjectCategories) != 4 {
		t.Fatalf("expected 4 project categories, got %d", len(ProjectCategories))
	}
	for _, c := range ProjectCategories {
		if !ValidCategory(string(c.Value)) {
			t.Errorf("category list entry %q fails its own validator", c.Value)
		}
		if c.Label.EN == "" || c.Label.AR == "" {
			t.Errorf("category %q is missing a bilingual label", c.Value)
		}
	}
}

func TestValidPageKey(t *testing.T) {
	for _, p := range PageKeys {
		if !ValidPageKey(string(p)) {
			t.Errorf("ValidPageKey(%q) = false, want true", p)
		}
	}
	for _, p := range []string{"", "pricing", "Home", "admin"} {
		if ValidPageKey(p) {
			t.Errorf("ValidPageKey(%q) = true, want false", p)
		}
	}
}

func TestValidFAQCategory(t *testing.T) {
	for _, c := range []string{"general", "products", "installation", "pricing", "warranty"} {
		if !ValidFAQCategory(c) {
			t.Errorf("ValidFAQCategory(%q) = false, want true", c)
		}
	}
	for _, c := range []string{"", "shipping", "General"} {
		if ValidFAQCategory(c) {
			t.Errorf("ValidFAQCategory(%q) = true, want false", c)
		}
	}
}

func TestValidMessageStatus(t *testing.T) {
	for _, s := range []string{"new", "read", "replied", "closed"} {
		if !ValidMessageStatus(s) {
			t.Errorf("ValidMessageStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "spam", "archived", "New"} {
		if ValidMessageStatus(s) {
			t.Errorf("ValidMessageStatus(%q) = true, want false", s)
		}
	}
}

func TestTestimonialValidRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		tm := Testimonial{Rating: rating}
		if !tm.ValidRating() {
			t.Errorf("rating %d should be valid", rating)
		}
	}
	for _, rating := range []int{0, -1, 6, 100} {
		tm := Testimonial{Rating: rating}
		if tm.ValidRating() {
			t.Errorf("rating %d should be invalid", rating)
		}
	}
}

func TestServiceAreaList(t *testing.T) {
	c := &CompanyInfo{
		ServiceAreas: Localized{
			EN: "Doha, Lusail , West Bay,,",
			AR: "الدوحة، لوسيل",
		},
	}

	en := c.ServiceAreaList(LangEnglish)
	want := []string{"Doha", "Lusail", "West Bay"}
	if len(en) != len(want) {
		t.Fatalf("ServiceAreaList(en) = %v, want %v", en, want)
	}
	for i := range want {
		if en[i] != want[i] {
			t.Errorf("area[%d] = %q, want %q", i, en[i], want[i])
		}
	}

	empty := &CompanyInfo{}
	if got := empty.ServiceAreaList(LangEnglish); got != nil {
		t.Errorf("empty service areas should yield nil, got %v", got)
	}
}

func TestUserIsAdmin(t *testing.T) {
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin role should report IsAdmin")
	}
	if (&User{Role: RoleEditor}).IsAdmin() {
		t.Error("editor role should not report IsAdmin")
	}
}
