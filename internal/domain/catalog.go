package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Provider is the salon offering services. Rows are owned by the catalog collaborator;
// the engine only reads them.
type Provider struct {
	bun.BaseModel `bun:"table:providers"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Name      string    `bun:"name,notnull"`
	TimeZone  string    `bun:"time_zone,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// Location resolves the provider's IANA zone. An empty zone means UTC.
func (p Provider) Location() (*time.Location, error) {
	tz := strings.TrimSpace(p.TimeZone)
	if tz == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(tz)
}

type Service struct {
	bun.BaseModel `bun:"table:services"`

	ID              uuid.UUID `bun:"id,pk,type:uuid"`
	ProviderID      uuid.UUID `bun:"provider_id,notnull,type:uuid"`
	Name            string    `bun:"name,notnull"`
	DurationMinutes int       `bun:"duration_minutes,notnull"`
	IsActive        bool      `bun:"is_active,notnull"`
	CreatedAt       time.Time `bun:"created_at,notnull"`
	UpdatedAt       time.Time `bun:"updated_at,notnull"`
}

func (s Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
