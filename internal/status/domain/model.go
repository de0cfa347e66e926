// Package domain holds status check records reported by API clients.
package domain

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/apperr"
)

const MaxClientNameLength = 100

var ErrCheckNotFound = errors.New("status check not found")

// Check is one status check recorded for a client.
type Check struct {
	ID         string         `json:"id"`
	ClientName string         `json:"client_name"`
	Metadata   map[string]any `json:"metadata"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  *time.Time     `json:"updated_at"`
}

// CreateRequest is the payload for recording a check.
type CreateRequest struct {
	ClientName string         `json:"client_name"`
	Metadata   map[string]any `json:"metadata"`
}

// Validate checks the client name length, counted in characters.
func (r CreateRequest) Validate() error {
	n := utf8.RuneCountInString(r.ClientName)
	if n < 1 || n > MaxClientNameLength {
		return apperr.Validation("client_name must be between 1 and %d characters", MaxClientNameLength).
			WithDetail("field", "client_name")
	}
	return nil
}

// Check builds the record to store. Metadata defaults to an empty map.
func (r CreateRequest) Check() *Check {
	md := r.Metadata
	if md == nil {
		md = map[string]any{}
	}
	return &Check{ClientName: r.ClientName, Metadata: md}
}

// ClientStat summarizes the checks of one client.
type ClientStat struct {
	ClientName string    `json:"client_name"`
	CheckCount int64     `json:"check_count"`
	LastCheck  time.Time `json:"last_check"`
}

type ClientStats struct {
	TotalClients int          `json:"total_clients"`
	Clients      []ClientStat `json:"clients"`
}
