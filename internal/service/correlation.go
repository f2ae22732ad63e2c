package service

import "github.com/google/uuid"

// IDGenerator hands out correlation ids.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
