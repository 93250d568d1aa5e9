package models

import "time"

type UserRole string

const (
	UserRoleVictim    UserRole = "victim"
	UserRoleVolunteer UserRole = "volunteer"
	UserRoleOrgAdmin  UserRole = "org_admin"
	UserRoleAdmin     UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	DisplayName  string
	Phone        *string
	Role         UserRole
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
