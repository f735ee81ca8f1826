package model

type EntryStatus string

const (
	StatusPending  EntryStatus = "pending"
	StatusApproved EntryStatus = "approved"
	StatusRejected EntryStatus = "rejected"
	// StatusMixed is only produced when aggregating a week; entries never carry it.
	StatusMixed EntryStatus = "mixed"
)

func (s EntryStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "dipendente"
)
