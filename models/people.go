package models

import (
	"fmt"
	"strings"
)

// ConsumerType classifies who is buying
type ConsumerType string

const (
	ConsumerStudent ConsumerType = "STUDENT"
	ConsumerStaff   ConsumerType = "STAFF"
	ConsumerFaculty ConsumerType = "FACULTY"
)

// Consumer represents a registered canteen customer
type Consumer struct {
	UID  string       `json:"uid"`
	Name string       `json:"name"`
	Type ConsumerType `json:"type"`
}

// ParseConsumerType accepts a type name or its menu index (0-STUDENT, 1-STAFF, 2-FACULTY)
func ParseConsumerType(s string) (ConsumerType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "0", string(ConsumerStudent):
		return ConsumerStudent, nil
	case "1", string(ConsumerStaff):
		return ConsumerStaff, nil
	case "2", string(ConsumerFaculty):
		return ConsumerFaculty, nil
	}
	return "", fmt.Errorf("unknown consumer type %q", s)
}

// Role is a staff user's permission level
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleCashier Role = "CASHIER"
)

// User represents a staff account
type User struct {
	UID          string `json:"uid"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash []byte `json:"-"`
	Role         Role   `json:"role"`
}

// ParseRole accepts a role name or its menu index (0-ADMIN, 1-MANAGER, 2-CASHIER)
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "0", string(RoleAdmin):
		return RoleAdmin, nil
	case "1", string(RoleManager):
		return RoleManager, nil
	case "2", string(RoleCashier):
		return RoleCashier, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
