package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates a fresh database with the rows the site expects at first
// boot: the default admin account, the CompanyInfo and CompanyStatistics
// singletons, and one PageContent row per public page. Each block is a
// no-op when its rows already exist, so Seed is safe to run on every start.
//
// The singleton rows are created here, during setup, which is why the
// admin-layer "at most one row" guards never race under real traffic.
func Seed(db *sql.DB) error {
	if err := seedAdminUser(db); err != nil {
		return err
	}
	if err := seedCompanyInfo(db); err != nil {
		return err
	}
	if err := seedCompanyStatistics(db); err != nil {
		return err
	}
	if err := seedPageContents(db); err != nil {
		return err
	}
	if err := seedSampleContent(db); err != nil {
		return err
	}
	return nil
}

func seedAdminUser(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4)
	`, "admin@royalsite.local", string(hash), "Admin", "admin")
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@royalsite.local",
		"password", "admin",
	)
	return nil
}

func seedCompanyInfo(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM company_info").Scan(&count); err != nil {
		return fmt.Errorf("seed check company_info: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO company_info (name, name_ar, description, address, phone, email, service_areas)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		"Royal Aluminium and UPVC Qatar",
		"رويال الألمنيوم واليو بي في سي قطر",
		"Premium aluminium, UPVC and glass works across Qatar.",
		"Doha, Qatar",
		"+974 0000 0000",
		"info@royalsite.local",
		"Doha, Lusail, West Bay",
	)
	if err != nil {
		return fmt.Errorf("seed insert company_info: %w", err)
	}

	slog.Info("database seeded with company info")
	return nil
}

func seedCompanyStatistics(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM company_statistics").Scan(&count); err != nil {
		return fmt.Errorf("seed check company_statistics: %w", err)
	}
	if count > 0 {
		return nil
	}

	// Column defaults carry the counters and labels.
	if _, err := db.Exec(`INSERT INTO company_statistics DEFAULT VALUES`); err != nil {
		return fmt.Errorf("seed insert company_statistics: %w", err)
	}

	slog.Info("database seeded with company statistics")
	return nil
}

// seedSampleContent gives a fresh development database something to show:
// a few services and featured projects. Skipped entirely once any service
// exists, so admin-managed content is never mixed with samples.
func seedSampleContent(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM services").Scan(&count); err != nil {
		return fmt.Errorf("seed check services: %w", err)
	}
	if count > 0 {
		return nil
	}

	services := []struct {
		name, nameAR, description string
		order                     int
	}{
		{"Aluminium Kitchens", "مطابخ الألمنيوم", "Custom aluminium kitchen fabrication and installation.", 1},
		{"UPVC Doors & Windows", "أبواب ونوافذ يو بي في سي", "Energy-efficient UPVC doors and windows.", 2},
		{"Glass Partitions", "قواطع زجاجية", "Frameless glass doors and office partitions.", 3},
	}
	for _, s := range services {
		_, err := db.Exec(`
			INSERT INTO services (name, name_ar, description, display_order)
			VALUES ($1, $2, $3, $4)
		`, s.name, s.nameAR, s.description, s.order)
		if err != nil {
			return fmt.Errorf("seed insert service: %w", err)
		}
	}

	projects := []struct {
		title, titleAR, category string
		featured                 bool
	}{
		{"Lusail Villa Kitchen", "مطبخ فيلا لوسيل", "aluminium_kitchen", true},
		{"West Bay Office Partitions", "قواطع مكاتب الخليج الغربي", "glass_door_partition", true},
		{"Pearl Apartment Windows", "نوافذ شقة اللؤلؤة", "upvc_door_window", false},
	}
	for i, p := range projects {
		_, err := db.Exec(`
			INSERT INTO projects (title, title_ar, image, category, is_featured, display_order)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, p.title, p.titleAR, "/static/img/placeholder.svg", p.category, p.featured, i+1)
		if err != nil {
			return fmt.Errorf("seed insert project: %w", err)
		}
	}

	slog.Info("database seeded with sample content")
	return nil
}

func seedPageContents(db *sql.DB) error {
	pages := []struct {
		page  string
		title string
	}{
		{"home", "Royal Aluminium and UPVC Qatar"},
		{"about", "About Us"},
		{"services", "Our Services"},
		{"portfolio", "Our Portfolio"},
		{"contact", "Contact Us"},
	}

	for _, p := range pages {
		_, err := db.Exec(`
			INSERT INTO page_contents (page, title)
			VALUES ($1, $2)
			ON CONFLICT (page) DO NOTHING
		`, p.page, p.title)
		if err != nil {
			return fmt.Errorf("seed page_contents %s: %w", p.page, err)
		}
	}
	return nil
}
