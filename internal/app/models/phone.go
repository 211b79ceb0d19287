package models

import "github.com/google/uuid"

// Phone is one entry of the phone registry. Number is unique across all alumnos.
type Phone struct {
	ID     uuid.UUID `json:"_id" db:"id"`
	Number string    `json:"number" db:"number"`
}

// PhoneNumber is the projection returned by the list query
type PhoneNumber struct {
	Number string `json:"number"`
}

// Numbers returns the numbers of phones, in order
func Numbers(phones []Phone) []string {
	numbers := make([]string, len(phones))
	for i, p := range phones {
		numbers[i] = p.Number
	}
	return numbers
}

// IDs returns the ids of phones, in order
func IDs(phones []Phone) []uuid.UUID {
	ids := make([]uuid.UUID, len(phones))
	for i, p := range phones {
		ids[i] = p.ID
	}
	return ids
}
