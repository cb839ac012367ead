package entity

import (
	"legalconnect/core/entity"
)

type Role string

const (
	RoleUser   Role = "USER"
	RoleLawyer Role = "LAWYER"
	RoleAdmin  Role = "ADMIN"
)

type User struct {
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Email     string `db:"email" json:"email"`
	Role      Role   `db:"role" json:"role"`
	entity.BaseEntity
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// DashboardPath is where the frontend lands this user after OAuth completes.
func (u *User) DashboardPath() string {
	switch u.Role {
	case RoleLawyer:
		return "/dashboard/lawyer"
	case RoleAdmin:
		return "/dashboard/admin"
	default:
		return "/dashboard/user"
	}
}
