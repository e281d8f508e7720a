// Package entity contains the core business objects of the project.
package entity

// PermissionStatus represents the process-wide push permission state.
// It starts as unknown and is only changed by an explicit user-gesture
// request; the platform never re-prompts after a denial.
type PermissionStatus string

const (
	PermissionUnknown PermissionStatus = "unknown"
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
)
