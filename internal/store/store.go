// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access for every site entity. Each store
// struct wraps a *sql.DB and exposes typed query methods. Public-facing
// listing methods apply the display contract: active rows only, ordered by
// display_order ascending with an entity-specific tie-break.
package store

import "errors"

var (
	// ErrSingletonExists is returned when creating a singleton row that
	// already exists (CompanyStatistics).
	ErrSingletonExists = errors.New("store: singleton row already exists")

	// ErrSingletonProtected is returned when deleting a singleton row that
	// must never be removed (CompanyStatistics).
	ErrSingletonProtected = errors.New("store: singleton row cannot be deleted")
)
