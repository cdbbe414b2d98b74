package units

import (
	"errors"
	"math"
	"testing"
)

func TestNormalize_CanonicalIdempotent(t *testing.T) {
	tests := []struct {
		unit string
		dim  Dimension
	}{
		{"kg", Mass},
		{"m/s^2", Acceleration},
		{"N", Force},
	}
	for _, tt := range tests {
		got, err := Normalize(Quantity{Value: 4.25, Unit: tt.unit}, tt.dim)
		if err != nil {
			t.Fatalf("Normalize(%q): unexpected error: %v", tt.unit, err)
		}
		if got != 4.25 {
			t.Errorf("Normalize(4.25 %s) = %v, want 4.25", tt.unit, got)
		}
	}
}

func TestNormalize_ScaledUnits(t *testing.T) {
	tests := []struct {
		name  string
		q     Quantity
		dim   Dimension
		want  float64
	}{
		{"grams to kg", Quantity{Value: 500, Unit: "g"}, Mass, 0.5},
		{"milligrams to kg", Quantity{Value: 2000, Unit: "mg"}, Mass, 0.002},
		{"tonnes to kg", Quantity{Value: 1.5, Unit: "t"}, Mass, 1500},
		{"kilonewtons to N", Quantity{Value: 2, Unit: "kN"}, Force, 2000},
		{"millinewtons to N", Quantity{Value: 300, Unit: "mN"}, Force, 0.3},
		{"cm/s^2 to m/s^2", Quantity{Value: 50, Unit: "cm/s^2"}, Acceleration, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.q, tt.dim)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize_AccelerationSpellings(t *testing.T) {
	for _, unit := range []string{"m/s^2", "m/s2", "m/s²"} {
		got, err := Normalize(Quantity{Value: 3, Unit: unit}, Acceleration)
		if err != nil {
			t.Fatalf("Normalize(%q): unexpected error: %v", unit, err)
		}
		if got != 3 {
			t.Errorf("Normalize(3 %s) = %v, want 3", unit, got)
		}
	}
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	got, err := Normalize(Quantity{Value: 2, Unit: "  kg "}, Mass)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Errorf("got %v, want 2", got)
	}
}

func TestNormalize_UnknownUnit(t *testing.T) {
	_, err := Normalize(Quantity{Value: 10, Unit: "lb"}, Mass)
	var ue *UnitError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v, want *UnitError", err)
	}
	if ue.Unit != "lb" || ue.Want != Mass || ue.Got != "" {
		t.Errorf("UnitError = %+v, want {Unit: lb, Want: mass, Got: \"\"}", ue)
	}
}

func TestNormalize_WrongDimension(t *testing.T) {
	_, err := Normalize(Quantity{Value: 10, Unit: "N"}, Mass)
	var ue *UnitError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v, want *UnitError", err)
	}
	if ue.Got != Force {
		t.Errorf("UnitError.Got = %q, want %q", ue.Got, Force)
	}
}

func TestNormalize_NonFiniteValue(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Normalize(Quantity{Value: v, Unit: "kg"}, Mass)
		var ve *ValueError
		if !errors.As(err, &ve) {
			t.Errorf("Normalize(%v kg): got %v, want *ValueError", v, err)
		}
	}
}

func TestDimension_Valid(t *testing.T) {
	for _, d := range AllDimensions() {
		if !d.Valid() {
			t.Errorf("%q should be valid", d)
		}
	}
	if Dimension("velocity").Valid() {
		t.Error("velocity should not be valid")
	}
}

func TestDimension_CanonicalUnit(t *testing.T) {
	tests := []struct {
		dim  Dimension
		want string
	}{
		{Mass, "kg"},
		{Acceleration, "m/s^2"},
		{Force, "N"},
	}
	for _, tt := range tests {
		if got := tt.dim.CanonicalUnit(); got != tt.want {
			t.Errorf("CanonicalUnit(%s) = %q, want %q", tt.dim, got, tt.want)
		}
	}
}

func TestUnitsFor_CoversAllDimensions(t *testing.T) {
	for _, d := range AllDimensions() {
		us := UnitsFor(d)
		if len(us) == 0 {
			t.Errorf("UnitsFor(%s) is empty", d)
		}
		for _, u := range us {
			if u.Dimension != d {
				t.Errorf("unit %q indexed under %s but has dimension %s", u.Symbol, d, u.Dimension)
			}
		}
	}
}

func TestLookup_CanonicalFactorsAreOne(t *testing.T) {
	for _, d := range AllDimensions() {
		u := Lookup(d.CanonicalUnit())
		if u == nil {
			t.Fatalf("canonical unit %q not in table", d.CanonicalUnit())
		}
		if u.Factor != 1 {
			t.Errorf("canonical unit %q has factor %v, want 1", u.Symbol, u.Factor)
		}
	}
}

func TestRegister(t *testing.T) {
	if err := Register(Unit{Symbol: "ug", Dimension: Mass, Factor: 1e-9}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	got, err := Normalize(Quantity{Value: 2e9, Unit: "ug"}, Mass)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if got != 2 {
		t.Errorf("Normalize(2e9 ug) = %v, want 2", got)
	}
}

func TestRegister_ExistingDefinitionIsNoOp(t *testing.T) {
	before := len(UnitsFor(Mass))
	if err := Register(Unit{Symbol: "g", Dimension: Mass, Factor: 0.001}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if after := len(UnitsFor(Mass)); after != before {
		t.Errorf("duplicate registration grew the table: %d -> %d", before, after)
	}
}

func TestRegister_Rejections(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
	}{
		{"empty symbol", Unit{Symbol: "  ", Dimension: Mass, Factor: 1}},
		{"unknown dimension", Unit{Symbol: "J", Dimension: "energy", Factor: 1}},
		{"zero factor", Unit{Symbol: "zz", Dimension: Mass, Factor: 0}},
		{"negative factor", Unit{Symbol: "zz", Dimension: Mass, Factor: -1}},
		{"conflicting redefinition", Unit{Symbol: "kg", Dimension: Force, Factor: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Register(tt.unit); err == nil {
				t.Errorf("Register(%+v) = nil, want error", tt.unit)
			}
		})
	}
}
