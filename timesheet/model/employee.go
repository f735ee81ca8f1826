package model

import "strings"

type Employee struct {
	ID        int    `json:"id"`
	FirstName string `json:"nome"`
	LastName  string `json:"cognome"`
	Username  string `json:"username"`
	Password  string `json:"password,omitempty"`
	Role      Role   `json:"ruolo"`
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// User is the authenticated principal returned by login.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"nome"`
	LastName  string `json:"cognome"`
	Username  string `json:"username"`
	Role      Role   `json:"ruolo"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u User) IsManager() bool {
	return u.Role == RoleManager
}
