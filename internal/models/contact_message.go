// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageStatus labels a contact message for admin triage. It is just a
// label: any status may be set at any time, there is no enforced
// transition order.
type MessageStatus string

const (
	MessageStatusNew     MessageStatus = "new"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
	MessageStatusClosed  MessageStatus = "closed"
)

// ValidMessageStatus reports whether s is one of the known statuses.
func ValidMessageStatus(s string) bool {
	switch MessageStatus(s) {
	case MessageStatusNew, MessageStatusRead, MessageStatusReplied, MessageStatusClosed:
		return true
	}
	return false
}

// ContactMessage is a public contact form submission. Rows are immutable
// after creation except for the status label.
type ContactMessage struct {
	ID          uuid.UUID     `json:"id"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone,omitempty"`
	ProjectType string        `json:"project_type,omitempty"`
	Budget      string        `json:"budget,omitempty"`
	Message     string        `json:"message"`
	Status      MessageStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
