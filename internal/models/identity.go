package models

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleEmployer Role = "employer"
)

func ParseRole(value string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	switch role {
	case RoleEmployee, RoleEmployer:
		return role, nil
	default:
		return "", fmt.Errorf("unknown role: %q", value)
	}
}

// Identity is the signed-in user. Skills and BusinessName are optional.
type Identity struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Location     string  `json:"location"`
	Role         Role    `json:"role"`
	Skills       *string `json:"skills,omitempty"`
	BusinessName *string `json:"businessName,omitempty"`
}

// SkillsText returns the declared skills string, empty when none are declared.
func (i Identity) SkillsText() string {
	if i.Skills == nil {
		return ""
	}
	return *i.Skills
}

// Employee is a worker listed in the employer console.
type Employee struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Location   string   `json:"location"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience,omitempty"`
	Available  bool     `json:"available"`
}

type Credentials struct {
	Phone    string `json:"phone" validate:"required,ke_phone"`
	Password string `json:"password" validate:"required,min=4"`
}

type Registration struct {
	Name         string `json:"name" validate:"required,min=2,max=80"`
	Phone        string `json:"phone" validate:"required,ke_phone"`
	Password     string `json:"password" validate:"required,min=4"`
	Location     string `json:"location" validate:"required"`
	Role         Role   `json:"role" validate:"required,oneof=employee employer"`
	Skills       string `json:"skills,omitempty"`
	BusinessName string `json:"businessName,omitempty" validate:"required_if=Role employer"`
}

// ProfilePatch carries only the fields being changed.
type ProfilePatch struct {
	ID           string  `json:"id" validate:"required"`
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2,max=80"`
	Location     *string `json:"location,omitempty" validate:"omitempty,min=2"`
	Skills       *string `json:"skills,omitempty"`
	BusinessName *string `json:"businessName,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p ProfilePatch) Empty() bool {
	return p.Name == nil && p.Location == nil && p.Skills == nil && p.BusinessName == nil
}

// AuthResult is returned by login and registration.
type AuthResult struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}
