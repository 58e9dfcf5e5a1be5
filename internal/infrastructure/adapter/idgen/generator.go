// Package idgen produces merchant references and record ids.
package idgen

import (
	"fmt"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/guidy-app/joblight/internal/domain/port/core"
)

const (
	// ReferencePrefix marks references issued by JobLight
	ReferencePrefix = "JL"
	// referenceLength is the random part; CinetPay accepts only [A-Za-z0-9] transaction ids
	referenceLength = 20
	alphanumeric    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// Generator implements core.IDGenerator
type Generator struct{}

// New creates a Generator
func New() core.IDGenerator {
	return &Generator{}
}

// NewReference returns "JL" followed by 20 random alphanumerics
func (g *Generator) NewReference() (string, error) {
	random, err := gonanoid.Generate(alphanumeric, referenceLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate reference: %w", err)
	}
	return ReferencePrefix + random, nil
}

// NewID returns a random UUID
func (g *Generator) NewID() string {
	return uuid.NewString()
}
