// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/mail"
	"unicode/utf8"

	"royalsite/internal/models"
)

// Validation limits for contact form fields.
const (
	maxNameLen    = 100
	maxEmailLen   = 254
	maxPhoneLen   = 30
	maxChoiceLen  = 100
	maxMessageLen = 5_000
)

// validateContact checks a contact form submission and returns every
// problem found, so the form can show them all at once.
func validateContact(m *models.ContactMessage) []string {
	var errs []string

	if m.FirstName == "" {
		errs = append(errs, "First name is required.")
	} else if utf8.RuneCountInString(m.FirstName) > maxNameLen {
		errs = append(errs, "First name is too long (max 100 characters).")
	}

	if m.LastName == "" {
		errs = append(errs, "Last name is required.")
	} else if utf8.RuneCountInString(m.LastName) > maxNameLen {
		errs = append(errs, "Last name is too long (max 100 characters).")
	}

	if m.Email == "" {
		errs = append(errs, "Email is required.")
	} else if len(m.Email) > maxEmailLen {
		errs = append(errs, "Email is too long.")
	} else if _, err := mail.ParseAddress(m.Email); err != nil {
		errs = append(errs, "Email address is not valid.")
	}

	if utf8.RuneCountInString(m.Phone) > maxPhoneLen {
		errs = append(errs, "Phone number is too long (max 30 characters).")
	}
	if utf8.RuneCountInString(m.ProjectType) > maxChoiceLen {
		errs = append(errs, "Project type is too long (max 100 characters).")
	}
	if utf8.RuneCountInString(m.Budget) > maxChoiceLen {
		errs = append(errs, "Budget is too long (max 100 characters).")
	}

	if m.Message == "" {
		errs = append(errs, "Message is required.")
	} else if utf8.RuneCountInString(m.Message) > maxMessageLen {
		errs = append(errs, "Message is too long (max 5,000 characters).")
	}

	return errs
}
