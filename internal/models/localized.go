// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the entities of the marketing site: admin-managed
// content collections, the company singletons, and contact form submissions.
// Every user-facing text field carries an English and an optional Arabic
// value, represented by the Localized type.
package models

// Lang identifies a site display language.
type Lang string

const (
	LangEnglish Lang = "en"
	LangArabic  Lang = "ar"
)

// ParseLang maps a request value onto a supported language, defaulting
// to English for anything unrecognised.
func ParseLang(s string) Lang {
	if s == string(LangArabic) {
		return LangArabic
	}
	return LangEnglish
}

// Localized is a language-keyed text pair. Storage keeps flat paired
// columns (name, name_ar); this type carries them together so the
// English-fallback rule lives in one place instead of at every call site.
type Localized struct {
	EN string `json:"en"`
	AR string `json:"ar,omitempty"`
}

// In returns the text for the given language. Arabic falls back to
// English when the Arabic side is empty.
func (l Localized) In(lang Lang) string {
	if lang == LangArabic && l.AR != "" {
		return l.AR
	}
	return l.EN
}

// IsZero reports whether both sides are empty.
func (l Localized) IsZero() bool {
	return l.EN == "" && l.AR == ""
}
