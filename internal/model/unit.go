package model

import (
	"errors"
	"fmt"
	"strings"
)

// CurrencyUnit is the display denomination. The set is closed: only the
// constants below are valid.
type CurrencyUnit string

const (
	UnitTroyOunce CurrencyUnit = "troy-ounce" // USD per Troy Ounce
	UnitPawn      CurrencyUnit = "pawn"       // LKR per Pawn (8 g)
)

// ErrUnknownUnit is returned when a unit string is outside the closed set.
var ErrUnknownUnit = errors.New("unknown currency unit")

// Units lists every valid unit.
var Units = []CurrencyUnit{UnitTroyOunce, UnitPawn}

// Valid reports whether u is a member of the closed set.
func (u CurrencyUnit) Valid() bool {
	return u == UnitTroyOunce || u == UnitPawn
}

// MustValid panics when u is outside the closed set. Core code calls it at
// dispatch points so that a bad unit fails loudly instead of rendering USD.
func (u CurrencyUnit) MustValid() {
	if !u.Valid() {
		panic(fmt.Sprintf("model: %v: %q", ErrUnknownUnit, string(u)))
	}
}

// ParseCurrencyUnit parses external input (query strings, config, chat
// commands). An empty string yields def.
func ParseCurrencyUnit(s string, def CurrencyUnit) (CurrencyUnit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def, nil
	}
	u := CurrencyUnit(s)
	if !u.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}
