// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"royalsite/internal/models"
)

func TestLoginFlow(t *testing.T) {
	env := newTestEnv(t)
	email := "hauth-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanRows(t, env.DB, "users", "email", email) })

	user, err := env.Users.Create(email, "correct-horse", "Auth Test", models.RoleEditor)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	// Wrong password.
	w := httptest.NewRecorder()
	env.Auth.Login(w, jsonRequest(http.MethodPost, "/admin/api/login",
		map[string]string{"email": email, "password": "wrong"}))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", w.Code)
	}

	// Unknown email gets the identical response.
	w2 := httptest.NewRecorder()
	env.Auth.Login(w2, jsonRequest(http.MethodPost, "/admin/api/login",
		map[string]string{"email": "nobody-" + email, "password": "wrong"}))
	if w2.Code != http.StatusUnauthorized || w2.Body.String() != w.Body.String() {
		t.Error("unknown email should be indistinguishable from a wrong password")
	}

	// Correct credentials open a session.
	w = httptest.NewRecorder()
	env.Auth.Login(w, jsonRequest(http.MethodPost, "/admin/api/login",
		map[string]string{"email": email, "password": "correct-horse"}))
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d; body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"role":"editor"`) {
		t.Errorf("login response should carry the role, got %s", w.Body.String())
	}

	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "rs_session" {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("login did not set the session cookie")
	}
	if !sessionCookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}

	// The session resolves back to the user.
	authed := httptest.NewRequest(http.MethodGet, "/admin/api/me", nil)
	authed.AddCookie(sessionCookie)
	sess, err := env.Sessions.Get(context.Background(), authed)
	if err != nil || sess == nil {
		t.Fatalf("session lookup: %v", err)
	}
	if sess.UserID != user.ID {
		t.Error("session bound to the wrong user")
	}

	// Logout destroys it.
	req := httptest.NewRequest(http.MethodPost, "/admin/api/logout", nil)
	req.AddCookie(sessionCookie)
	w = httptest.NewRecorder()
	env.Auth.Logout(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", w.Code)
	}
	if sess, _ := env.Sessions.Get(context.Background(), req); sess != nil {
		t.Error("session survived logout")
	}
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)

	// Unauthenticated.
	w := httptest.NewRecorder()
	env.Auth.Me(w, httptest.NewRequest(http.MethodGet, "/admin/api/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no session: expected 401, got %d", w.Code)
	}

	// With a session in context.
	sess := testSession(uuid.New(), "me@example.com", "admin")
	req := httptest.NewRequest(http.MethodGet, "/admin/api/me", nil)
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	w = httptest.NewRecorder()
	env.Auth.Me(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("with session: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "me@example.com") {
		t.Error("response should carry the session email")
	}
}
