package utils

import "github.com/google/uuid"

// UUIDGenerator issues record identifiers. Version 7 ids are time-ordered,
// so two records created within the same millisecond still get distinct,
// sortable ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
