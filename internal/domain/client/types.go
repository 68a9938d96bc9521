package client

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
)

func NewRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleStaff:
		return true
	default:
		return false
	}
}
