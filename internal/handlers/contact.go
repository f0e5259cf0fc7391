// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"royalsite/internal/models"
	"royalsite/internal/store"
)

// contactFormFields lists the template data keys the contact form
// repopulates after a validation failure.
var contactFormFields = []string{
	"FirstName", "LastName", "Email", "Phone", "ProjectType", "Budget", "Message",
}

// Contact handles public contact form submissions.
type Contact struct {
	public   *Public
	messages *store.ContactStore
}

// NewContact creates the contact form handler. It shares the Public
// handler group for re-rendering the page on validation errors.
func NewContact(public *Public, messages *store.ContactStore) *Contact {
	return &Contact{public: public, messages: messages}
}

// Submit processes the contact form. Valid submissions are stored and
// answered with a redirect back to the contact page (POST-redirect-GET);
// invalid ones re-render the form with the entered values preserved.
func (c *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	msg := &models.ContactMessage{
		FirstName:   strings.TrimSpace(r.FormValue("firstName")),
		LastName:    strings.TrimSpace(r.FormValue("lastName")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		Phone:       strings.TrimSpace(r.FormValue("phone")),
		ProjectType: strings.TrimSpace(r.FormValue("projectType")),
		Budget:      strings.TrimSpace(r.FormValue("budget")),
		Message:     strings.TrimSpace(r.FormValue("message")),
	}

	if errs := validateContact(msg); len(errs) > 0 {
		data := c.public.pageData(w, r, models.PageContact, "Contact Us")
		data.Data["Errors"] = errs
		data.Data["Sent"] = false
		data.Data["FirstName"] = msg.FirstName
		data.Data["LastName"] = msg.LastName
		data.Data["Email"] = msg.Email
		data.Data["Phone"] = msg.Phone
		data.Data["ProjectType"] = msg.ProjectType
		data.Data["Budget"] = msg.Budget
		data.Data["Message"] = msg.Message

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		c.public.renderer.Page(w, r, "contact", data)
		return
	}

	if _, err := c.messages.Create(msg); err != nil {
		slog.Error("store contact message failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	slog.Info("contact message received", "email", msg.Email)

	dest := "/contact/?sent=1"
	if lang := r.URL.Query().Get("lang"); lang != "" {
		dest += "&lang=" + url.QueryEscape(lang)
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}
