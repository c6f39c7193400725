package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Value is a measurement cell that may be missing.
type Value struct {
	Float float64
	Valid bool
}

// Of returns a present value.
func Of(f float64) Value {
	return Value{Float: f, Valid: true}
}

// Missing returns a missing value.
func Missing() Value {
	return Value{}
}

// naTokens are the cell texts read as "not available", as pandas does by
// default.
var naTokens = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// IsNA reports whether the cell text stands for a missing value.
func IsNA(s string) bool {
	return naTokens[strings.TrimSpace(s)]
}

// ParseValue converts a cell to a Value. Empty, NA, non-numeric and
// non-finite cells become missing instead of failing.
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	if IsNA(s) {
		return Missing()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Missing()
	}
	return Of(f)
}

// Add returns v+o, missing if either side is missing.
func (v Value) Add(o Value) Value {
	if !v.Valid || !o.Valid {
		return Missing()
	}
	return Of(v.Float + o.Float)
}

// Div returns v/d, missing if v is missing or d is zero.
func (v Value) Div(d float64) Value {
	if !v.Valid || d == 0 {
		return Missing()
	}
	return Of(v.Float / d)
}

// Or returns the value, or def when it is missing.
func (v Value) Or(def float64) float64 {
	if !v.Valid {
		return def
	}
	return v.Float
}

func (v Value) String() string {
	if !v.Valid {
		return "NaN"
	}
	return strconv.FormatFloat(v.Float, 'g', -1, 64)
}
