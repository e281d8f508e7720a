// Package entity contains the core business objects of the project.
package entity

import "time"

// SourceKind tags an inbox entry with the source it was reconciled from.
// The three kinds carry different read-state capabilities: personal entries
// have a remote read flag, broadcasts a local dismiss set, and the
// placeholder an in-memory-only acknowledgment.
type SourceKind string

const (
	SourcePersonal    SourceKind = "personal"
	SourceBroadcast   SourceKind = "broadcast"
	SourcePlaceholder SourceKind = "placeholder"
)

// Bucket is a calendar-day partition of the inbox relative to local "now".
// Boundaries use date components only, not a rolling 24h window.
type Bucket string

const (
	BucketToday     Bucket = "today"
	BucketYesterday Bucket = "yesterday"
	BucketEarlier   Bucket = "earlier"
)

// PlaceholderID is the fixed id of the synthetic one-time welcome entry.
const PlaceholderID = "welcome"

// InboxEntry is the reconciled, renderable unit. It is derived on every
// inbox load and never stored.
type InboxEntry struct {
	ID        string            `json:"id"`             // Source id; PlaceholderID for the synthetic entry.
	Kind      SourceKind        `json:"kind"`           // Which source this entry was reconciled from.
	Type      string            `json:"type"`           // Source notification type.
	Title     string            `json:"title"`          // Headline.
	Body      string            `json:"body"`           // Message body.
	Icon      string            `json:"icon,omitempty"` // Icon path or URL.
	Priority  string            `json:"priority,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	Read      bool              `json:"read"`       // Personal read flag; always false for broadcasts and the placeholder.
	CreatedAt time.Time         `json:"created_at"` // Sort key within and across buckets.
}

// Inbox is the day-bucketed reconciliation of all notification sources.
// Entries within each bucket are ordered by creation time descending.
type Inbox struct {
	Today     []InboxEntry `json:"today"`
	Yesterday []InboxEntry `json:"yesterday"`
	Earlier   []InboxEntry `json:"earlier"`
}

// Len returns the total number of entries across all buckets.
func (in *Inbox) Len() int {
	return len(in.Today) + len(in.Yesterday) + len(in.Earlier)
}
