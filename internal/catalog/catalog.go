// Package catalog holds the static registry of AI lawyer personas. It is
// loaded once at startup and read-only afterwards.
package catalog

import (
	"strings"

	"github.com/nyaya-ai/legal-voice-api/internal/domain"
)

// GeneralLawyerKey is the normalized specialist every lookup falls back to.
const GeneralLawyerKey = "general-lawyer"

// Catalog is an in-memory lookup table over the persona list.
type Catalog struct {
	personas []domain.LawyerPersona
	byID     map[int]*domain.LawyerPersona
	byKey    map[string]*domain.LawyerPersona
}

// New builds a catalog from the given personas. The default persona set is
// Personas().
func New(personas []domain.LawyerPersona) *Catalog {
	c := &Catalog{
		personas: personas,
		byID:     make(map[int]*domain.LawyerPersona, len(personas)),
		byKey:    make(map[string]*domain.LawyerPersona, len(personas)),
	}
	for i := range c.personas {
		p := &c.personas[i]
		c.byID[p.ID] = p
		c.byKey[Normalize(p.Specialist)] = p
	}
	return c
}

// All returns every persona in declaration order.
func (c *Catalog) All() []domain.LawyerPersona {
	return c.personas
}

// ByID looks up a persona by its stable id.
func (c *Catalog) ByID(id int) (*domain.LawyerPersona, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// BySpecialist looks up a persona by specialist name. The input is normalized
// before lookup, so "Criminal Lawyer" and "criminal-lawyer" hit the same entry.
func (c *Catalog) BySpecialist(specialist string) (*domain.LawyerPersona, bool) {
	p, ok := c.byKey[Normalize(specialist)]
	return p, ok
}

// Normalize converts a specialist name to its lookup key: lower-cased, runs of
// non-alphanumeric characters collapsed to a single hyphen, edges trimmed.
// Idempotent, so it is safe to use on both sides of the map.
func Normalize(specialist string) string {
	var b strings.Builder
	b.Grow(len(specialist))
	hyphen := false
	for _, r := range strings.ToLower(specialist) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
		default:
			hyphen = true
		}
	}
	return b.String()
}
