package models

// Roles assignable to a user. Every account starts as RoleUser; no endpoint
// elevates a user to RoleAdmin.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
