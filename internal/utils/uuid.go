package utils

import "github.com/google/uuid"

// IDGenerator issues record ids for notes, timestamps and cards created on
// the client. Ids are time-ordered (v7) so locally created rows sort by
// creation; when the v7 source fails a random v4 id is used.
type IDGenerator struct {
	newID func() (uuid.UUID, error)
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{newID: uuid.NewV7}
}

// NewID returns a fresh id string.
func (g *IDGenerator) NewID() string {
	if g == nil || g.newID == nil {
		return uuid.NewString()
	}
	id, err := g.newID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// IsID reports whether s parses as an id issued by NewID.
func IsID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
