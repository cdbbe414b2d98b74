package units

import (
	"fmt"
	"math"
	"strings"
)

// Dimension identifies one of the three quantities in F = m·a.
type Dimension string

const (
	Mass         Dimension = "mass"
	Acceleration Dimension = "acceleration"
	Force        Dimension = "force"
)

// AllDimensions returns the dimensions in display order.
func AllDimensions() []Dimension {
	return []Dimension{Mass, Acceleration, Force}
}

// Valid reports whether d is one of the three known dimensions.
func (d Dimension) Valid() bool {
	switch d {
	case Mass, Acceleration, Force:
		return true
	}
	return false
}

// CanonicalUnit returns the SI unit symbol canonical values are expressed in.
func (d Dimension) CanonicalUnit() string {
	switch d {
	case Mass:
		return "kg"
	case Acceleration:
		return "m/s^2"
	case Force:
		return "N"
	default:
		return ""
	}
}

// DisplayName returns a human-readable name for a dimension.
func (d Dimension) DisplayName() string {
	switch d {
	case Mass:
		return "Mass"
	case Acceleration:
		return "Acceleration"
	case Force:
		return "Force"
	default:
		return string(d)
	}
}

// Quantity is a numeric value paired with the unit it was entered in.
type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Unit defines one accepted unit spelling and its scale to the canonical unit.
type Unit struct {
	Symbol    string
	Dimension Dimension
	Factor    float64
}

// seedUnits lists every accepted spelling. Matching is exact after trimming:
// SI prefixes are case-sensitive (mN is millinewton, MN would be meganewton),
// so no case folding is applied. Imperial units (lb, lbf, ft/s^2) are
// deliberately absent; answers off by those factors are the classifier's
// business, not the normalizer's.
var seedUnits = []Unit{
	{Symbol: "kg", Dimension: Mass, Factor: 1},
	{Symbol: "g", Dimension: Mass, Factor: 0.001},
	{Symbol: "mg", Dimension: Mass, Factor: 1e-6},
	{Symbol: "t", Dimension: Mass, Factor: 1000},

	{Symbol: "m/s^2", Dimension: Acceleration, Factor: 1},
	{Symbol: "m/s2", Dimension: Acceleration, Factor: 1},
	{Symbol: "m/s²", Dimension: Acceleration, Factor: 1},
	{Symbol: "cm/s^2", Dimension: Acceleration, Factor: 0.01},
	{Symbol: "km/s^2", Dimension: Acceleration, Factor: 1000},

	{Symbol: "N", Dimension: Force, Factor: 1},
	{Symbol: "kN", Dimension: Force, Factor: 1000},
	{Symbol: "mN", Dimension: Force, Factor: 0.001},
}

// table is the package-level unit registry, keyed by symbol.
var table map[string]*Unit

// byDimension indexes units by dimension, in seed order.
var byDimension map[Dimension][]*Unit

func init() {
	table = make(map[string]*Unit, len(seedUnits))
	byDimension = make(map[Dimension][]*Unit)
	for i := range seedUnits {
		u := &seedUnits[i]
		table[u.Symbol] = u
		byDimension[u.Dimension] = append(byDimension[u.Dimension], u)
	}
}

// Lookup returns the unit definition for a symbol, or nil if not recognized.
func Lookup(symbol string) *Unit {
	return table[strings.TrimSpace(symbol)]
}

// UnitsFor returns the accepted units for a dimension in seed order.
func UnitsFor(d Dimension) []*Unit {
	return byDimension[d]
}

// Register adds a unit spelling to the conversion table. Re-registering
// an existing spelling with the same definition is a no-op; conflicting
// redefinitions are rejected. Call during startup, before the table is
// shared across goroutines.
func Register(u Unit) error {
	symbol := strings.TrimSpace(u.Symbol)
	if symbol == "" {
		return fmt.Errorf("register unit: empty symbol")
	}
	if !u.Dimension.Valid() {
		return fmt.Errorf("register unit %q: unknown dimension %q", symbol, u.Dimension)
	}
	if math.IsNaN(u.Factor) || math.IsInf(u.Factor, 0) || u.Factor <= 0 {
		return fmt.Errorf("register unit %q: factor must be a positive finite number", symbol)
	}
	if existing := table[symbol]; existing != nil {
		if existing.Dimension == u.Dimension && existing.Factor == u.Factor {
			return nil
		}
		return fmt.Errorf("register unit %q: already defined as %s", symbol, existing.Dimension)
	}
	u.Symbol = symbol
	table[symbol] = &u
	byDimension[u.Dimension] = append(byDimension[u.Dimension], &u)
	return nil
}

// UnitError reports a unit that could not be resolved to the expected
// dimension. Got is empty when the spelling is unknown entirely.
type UnitError struct {
	Unit string
	Want Dimension
	Got  Dimension
}

func (e *UnitError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("unsupported unit %q for %s (expected e.g. %q)", e.Unit, e.Want, e.Want.CanonicalUnit())
	}
	return fmt.Sprintf("unit %q measures %s, not %s", e.Unit, e.Got, e.Want)
}

// ValueError reports a quantity value that is not a finite number.
type ValueError struct {
	Value float64
	Want  Dimension
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("value %v for %s is not a finite number", e.Value, e.Want)
}

// Normalize converts a quantity to the canonical SI value for the expected
// dimension. It fails with *ValueError for non-finite values and *UnitError
// for unknown or dimensionally-wrong units. Pure: no state is touched.
func Normalize(q Quantity, want Dimension) (float64, error) {
	if math.IsNaN(q.Value) || math.IsInf(q.Value, 0) {
		return 0, &ValueError{Value: q.Value, Want: want}
	}
	u := Lookup(q.Unit)
	if u == nil {
		return 0, &UnitError{Unit: strings.TrimSpace(q.Unit), Want: want}
	}
	if u.Dimension != want {
		return 0, &UnitError{Unit: u.Symbol, Want: want, Got: u.Dimension}
	}
	return q.Value * u.Factor, nil
}
