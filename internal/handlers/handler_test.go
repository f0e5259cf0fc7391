// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Valkey are
// unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"royalsite/internal/database"
	"royalsite/internal/middleware"
	"royalsite/internal/render"
	"royalsite/internal/session"
	"royalsite/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "royalsite")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "royalsite")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "session:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB           *sql.DB
	Valkey       *redis.Client
	Renderer     *render.Renderer
	Sessions     *session.Store
	Services     *store.ServiceStore
	Projects     *store.ProjectStore
	Messages     *store.ContactStore
	Users        *store.UserStore
	Statistics   *store.StatisticsStore
	Company      *store.CompanyStore
	PageContents *store.PageContentStore
	Public       *Public
	Contact      *Contact
	Admin        *Admin
	Auth         *Auth
}

// newTestEnv creates a complete test environment with all handler
// dependencies wired against the test database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	sessions := session.NewStore(vk, false)
	pageContents := store.NewPageContentStore(db)
	company := store.NewCompanyStore(db)
	statistics := store.NewStatisticsStore(db)
	services := store.NewServiceStore(db)
	projects := store.NewProjectStore(db)
	team := store.NewTeamStore(db)
	testimonials := store.NewTestimonialStore(db)
	whyChooseUs := store.NewWhyChooseUsStore(db)
	certifications := store.NewCertificationStore(db)
	faqs := store.NewFAQStore(db)
	messages := store.NewContactStore(db)
	users := store.NewUserStore(db)

	public := NewPublic(renderer, pageContents, company, statistics, services,
		projects, team, testimonials, whyChooseUs, certifications, faqs,
		"http://localhost:8080")
	contact := NewContact(public, messages)
	admin := NewAdmin(pageContents, company, statistics, services, projects,
		team, testimonials, whyChooseUs, certifications, faqs, messages, users)
	auth := NewAuth(sessions, users)

	return &testEnv{
		DB:           db,
		Valkey:       vk,
		Renderer:     renderer,
		Sessions:     sessions,
		Services:     services,
		Projects:     projects,
		Messages:     messages,
		Users:        users,
		Statistics:   statistics,
		Company:      company,
		PageContents: pageContents,
		Public:       public,
		Contact:      contact,
		Admin:        admin,
		Auth:         auth,
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// testSession creates a session.Data for testing.
func testSession(userID uuid.UUID, email, role string) *session.Data {
	return &session.Data{
		UserID:      userID,
		Email:       email,
		DisplayName: "Test User",
		Role:        role,
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// cleanRows removes test rows matched by a LIKE prefix on one column.
func cleanRows(t *testing.T, db *sql.DB, table, column, prefix string) {
	t.Helper()
	db.Exec("DELETE FROM "+table+" WHERE "+column+" LIKE $1", prefix+"%")
}
