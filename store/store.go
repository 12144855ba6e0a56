package store

import "context"

// ConfigRecord is one raw configuration row from the record store. The
// four blob fields are JSON-encoded strings authored out-of-band; they
// are parsed (and defaulted) by the config resolver, not here.
type ConfigRecord struct {
	Vertical              string
	ActionText            string
	ProductVerified       string
	OrderPageElements     string
	CurrentStatusElements string
}

// RecordStore is the external record store holding the active-vertical
// singleton and per-vertical configuration rows. Implementations carry
// no state of their own; both reads hit the store fresh every time.
type RecordStore interface {
	// ActiveVertical returns the vertical named by the singleton
	// active-vertical record, or "" when no record exists or the
	// field is empty.
	ActiveVertical(ctx context.Context) (string, error)

	// ConfigsForVertical returns every configuration record whose
	// Vertical field exactly matches the given name.
	ConfigsForVertical(ctx context.Context, vertical string) ([]ConfigRecord, error)
}
