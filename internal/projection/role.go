// Package projection derives a deterministic career trajectory from a parsed
// resume, a target role and a time horizon.
package projection

import (
	"strings"
)

// Role is a target role from the closed catalog.
type Role int

const (
	RoleFrontend Role = iota + 1
	RoleBackend
	RoleFullStack
	RoleDataScientist
	RoleDevOps
	RoleProductManager
	RoleUIUX
	RoleMobile
	RoleQA
)

// DefaultRole is used when a requested role is not in the catalog.
const DefaultRole = RoleFullStack

// RoleProfile is the static data attached to a Role.
type RoleProfile struct {
	Name         string
	Aliases      []string
	BaseSalary   float64 // LPA
	Multiplier   float64
	Skills       []string
	Requirements []string
	Templates    []ProjectTemplate
}

// ProjectTemplate is a portfolio project suggested for a role.
type ProjectTemplate struct {
	Title               string
	TechStack           []string
	Description         string
	Impact              string
	WhatYouWillBuild    []string
	WhyThisMatters      string
	WhatRecruiterLearns []string
	LearningOutcomes    []string
}

var allRoles = []Role{
	RoleFrontend, RoleBackend, RoleFullStack, RoleDataScientist, RoleDevOps,
	RoleProductManager, RoleUIUX, RoleMobile, RoleQA,
}

// Roles lists the catalog in display order.
func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// Profile returns the role's data. Values outside the catalog resolve to the
// default role.
func (r Role) Profile() RoleProfile {
	if p, ok := roleProfiles[r]; ok {
		return p
	}
	return roleProfiles[DefaultRole]
}

func (r Role) String() string {
	return r.Profile().Name
}

// ParseRole matches a role name or alias case-insensitively. Unknown names
// return DefaultRole and false.
func ParseRole(name string) (Role, bool) {
	key := normalizeRoleName(name)
	if key == "" {
		return DefaultRole, false
	}
	for _, r := range allRoles {
		p := roleProfiles[r]
		if normalizeRoleName(p.Name) == key {
			return r, true
		}
		for _, alias := range p.Aliases {
			if normalizeRoleName(alias) == key {
				return r, true
			}
		}
	}
	return DefaultRole, false
}

func normalizeRoleName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ", "/", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
