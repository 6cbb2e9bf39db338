package entity

import "fmt"

// Role is the closed set of actor roles. Every operation receives a verified
// (actor id, role) pair from the boundary; nothing is read from ambient state.
type Role string

const (
	RoleClient  Role = "client"
	RoleCompany Role = "company"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleCompany:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleCompany
}

// Actor is an authenticated party: a client or a company.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsClient() bool {
	return a.Role == RoleClient
}

func (a Actor) IsCompany() bool {
	return a.Role == RoleCompany
}
