package model

import "time"

// Account represents the GitHub account the bump runs as
type Account struct {
	ID        int64
	Login     string
	Name      string // optional display name
	Email     string // optional public email
	CreatedAt time.Time
}

// DisplayName returns Name, or Login when no display name is set
func (a *Account) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Login
}

// Identity is the commit author identity configured before bumping
type Identity struct {
	Name  string
	Email string
}
