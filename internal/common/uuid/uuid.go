// Package uuid generates identifiers for drink records.
package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/pourlog/internal/common/uuid UUID
type UUID interface {
	NewUUID() string
}

// DefaultUUID hands out time-ordered (v7) ids so records sort by creation
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a v7 UUID, or a random v4 one if the clock source fails
func (d *DefaultUUID) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
