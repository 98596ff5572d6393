package model

import (
	"time"
)

// DisplayDateFormat is the human-readable date shown on note cards,
// e.g. "Jul 4, 2023". Sorting never relies on it; see SortKey.
const DisplayDateFormat = "Jan 2, 2006"

type Note struct {
	ID         int       `json:"id"`
	Title      string    `json:"title" binding:"required"`
	Date       string    `json:"date"`
	Category   string    `json:"category"`
	Content    string    `json:"content" binding:"required"`
	Tags       []string  `json:"tags,omitempty"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// Categories the note form ships with. The set is open-ended: the select
// control is editable, so validation only checks the token shape.
var Categories = []string{
	"literature",
	"science",
	"math",
	"history",
	"reports",
	"personal",
	"gallery",
}

const DefaultCategory = "personal"

// SortKey returns the machine-sortable timestamp for a note. Records written
// by older clients may only carry the display date string; parsing it is the
// fallback of last resort.
func (n Note) SortKey() time.Time {
	if !n.UpdatedAt.IsZero() {
		return n.UpdatedAt
	}
	if !n.CreatedAt.IsZero() {
		return n.CreatedAt
	}
	if ts, err := time.Parse(DisplayDateFormat, n.Date); err == nil {
		return ts
	}
	return time.Time{}
}
