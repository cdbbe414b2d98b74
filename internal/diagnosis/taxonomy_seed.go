package diagnosis

// seedMisconceptions defines the misconception taxonomy for Newton's Second
// Law problems, grouped by the error kind each explains.
var seedMisconceptions = []Misconception{
	// Inverted formula (2)
	{
		ID:          "formula-flip",
		Kind:        KindInvertedFormula,
		Label:       "Rearrangement flipped",
		Description: "Rearranges F = m·a the wrong way round, dividing where they should multiply or flipping the ratio; e.g., a = m/F instead of a = F/m",
		Examples:    []string{"F=10N, m=2kg: answers a = 2/10 = 0.2", "m=4kg, a=3m/s^2: answers F = 4/3"},
	},
	{
		ID:          "formula-wrong-target",
		Kind:        KindInvertedFormula,
		Label:       "Solved for the wrong quantity",
		Description: "Applies the rearrangement for a different target, returning another quantity's value",
		Examples:    []string{"asked for mass, computes F·a as if finding something else"},
	},

	// Unit mismatch (4)
	{
		ID:          "prefix-scale",
		Kind:        KindUnitMismatch,
		Label:       "Metric prefix slip",
		Description: "Off by a metric prefix factor, typically 1000 (kilo/milli) or 100 (centi)",
		Examples:    []string{"answers 100000 when the force is 100 N", "gives kN value in N"},
	},
	{
		ID:          "gram-kilogram",
		Kind:        KindUnitMismatch,
		Label:       "Grams for kilograms",
		Description: "Works in grams where kilograms are expected, scaling the result by 1000",
		Examples:    []string{"mass 500 g used as 500 kg"},
	},
	{
		ID:          "pound-kilogram",
		Kind:        KindUnitMismatch,
		Label:       "Pounds for kilograms",
		Description: "Converts through pounds, leaving a 2.2 factor in the result",
		Examples:    []string{"answer is 2.2× the correct value"},
	},
	{
		ID:          "mass-weight",
		Kind:        KindUnitMismatch,
		Label:       "Mass/weight confusion",
		Description: "Multiplies or divides by standard gravity 9.8, confusing mass with weight",
		Examples:    []string{"answer is 9.8× or the correct value ÷ 9.8"},
	},

	// Sign error (1)
	{
		ID:          "direction-sign",
		Kind:        KindSignError,
		Label:       "Direction sign dropped",
		Description: "Magnitude is right but the sign is flipped, usually a dropped deceleration or direction convention",
		Examples:    []string{"answers 12 where -12 N is correct"},
	},

	// Arithmetic (2)
	{
		ID:          "multiply-slip",
		Kind:        KindArithmetic,
		Label:       "Multiplication slip",
		Description: "Knows the formula but slips on the multiplication or division, landing near the correct value",
		Examples:    []string{"4 × 3 answered as 11"},
	},
	{
		ID:          "rounding-too-early",
		Kind:        KindArithmetic,
		Label:       "Rounded too early",
		Description: "Rounds intermediate values aggressively, drifting the final answer outside tolerance",
		Examples:    []string{"10/3 rounded to 3.3 before multiplying"},
	},
}
