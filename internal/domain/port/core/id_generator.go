package core

// IDGenerator produces identifiers for new records
type IDGenerator interface {
	// NewReference returns a merchant transaction reference accepted by every provider
	NewReference() (string, error)
	// NewID returns a random unique id for ledger lines and events
	NewID() string
}
