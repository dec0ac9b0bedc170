package core

// IDGenerator issues identifiers for ledger transactions, generation records and guard owners
type IDGenerator interface {
	NewID() string
}
