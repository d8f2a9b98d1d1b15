package model

// Item represents a sample record served by the demo listing endpoint.
// This is a pure domain model with no database-specific dependencies or tags.
// The service holds a fixed set of these in memory; there is no item lifecycle.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
