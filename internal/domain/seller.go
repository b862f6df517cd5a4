package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Seller is a vendor account. Callers act as a seller through a member whose
// auth identity maps back to it.
type Seller struct {
	ID     uuid.UUID
	Name   string
	Handle string

	CreatedAt time.Time
	DeletedAt *time.Time
}

type Member struct {
	ID             uuid.UUID
	SellerID       uuid.UUID
	Name           string
	Email          string
	Role           string
	AuthIdentityID string

	CreatedAt time.Time
}

type SellerOnboarding struct {
	ID        uuid.UUID
	SellerID  uuid.UUID
	Completed bool

	CreatedAt time.Time
}

var nonHandleChars = regexp.MustCompile(`[^a-z0-9-]+`)
var dashRuns = regexp.MustCompile(`-{2,}`)

// ToHandle derives a URL-safe handle from a display name.
func ToHandle(name string) string {
	handle := strings.ToLower(strings.TrimSpace(name))
	handle = strings.ReplaceAll(handle, " ", "-")
	handle = nonHandleChars.ReplaceAllString(handle, "")
	handle = dashRuns.ReplaceAllString(handle, "-")
	return strings.Trim(handle, "-")
}
