package measurement

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Garment categorizes a measurement set by the type of garment it was taken for.
// It is a value object backed by an int, persisted numerically and rendered via
// String for display and APIs.
type Garment int

const (
	// UnknownGarment represents an invalid or undefined garment category.
	UnknownGarment Garment = iota

	Shirt
	Trousers
	Jacket
	Suit
	Dress
	Other
)

func getGarmentStrings() map[Garment]string {
	return map[Garment]string{
		UnknownGarment: "Unknown",
		Shirt:          "Shirt",
		Trousers:       "Trousers",
		Jacket:         "Jacket",
		Suit:           "Suit",
		Dress:          "Dress",
		Other:          "Other",
	}
}

func getValidGarmentStrings() map[Garment]string {
	//nolint:exhaustive // UnknownGarment is intentionally excluded as it's invalid
	return map[Garment]string{
		Shirt:    "Shirt",
		Trousers: "Trousers",
		Jacket:   "Jacket",
		Suit:     "Suit",
		Dress:    "Dress",
		Other:    "Other",
	}
}

// GarmentFromString parses a garment category from its display name.
// Returns an error for unrecognized names.
func GarmentFromString(s string) (Garment, error) {
	for garment, name := range getValidGarmentStrings() {
		if name == s {
			return garment, nil
		}
	}
	return UnknownGarment, errs.NewValueIsInvalidErrorWithCause(
		"garment",
		fmt.Errorf("%q is not a recognized garment category", s),
	)
}

// Validate checks if the Garment value is valid.
func (g Garment) Validate() error {
	if _, ok := getValidGarmentStrings()[g]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"garment",
			fmt.Errorf("%d is not a valid garment category", g),
		)
	}
	return nil
}

// String returns the human-readable name of the garment category.
// Implements fmt.Stringer and is safe to call on invalid values.
func (g Garment) String() string {
	if str, ok := getGarmentStrings()[g]; ok {
		return str
	}
	return "Unknown"
}
