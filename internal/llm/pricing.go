package llm

// ModelCost is USD per one million tokens, split by direction. Figures
// taken from models.dev, last refreshed 2026-02-15.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost converts token counts for one request into USD.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns pricing for a model ID, or nil when the table has
// no entry. Unknown models just log without a cost estimate.
func LookupCost(modelID string) *ModelCost {
	if c, ok := pricingTable[modelID]; ok {
		return &c
	}
	return nil
}

// pricingTable covers the models the provider aliases can resolve to and
// their close relatives. Tutoring calls are small, so the estimate is
// informational, never enforced.
var pricingTable = map[string]ModelCost{
	// Anthropic
	"claude-3-5-haiku-latest":    {0.8, 4},
	"claude-3-5-haiku-20241022":  {0.8, 4},
	"claude-haiku-4-5":           {1, 5},
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-0":          {3, 15},
	"claude-sonnet-4-5":          {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},
	"claude-opus-4-5":            {5, 25},
	"claude-opus-4-5-20251101":   {5, 25},

	// OpenAI
	"gpt-3.5-turbo": {0.5, 1.5},
	"gpt-4o":        {2.5, 10},
	"gpt-4o-mini":   {0.15, 0.6},
	"gpt-4.1":       {2, 8},
	"gpt-4.1-mini":  {0.4, 1.6},
	"gpt-4.1-nano":  {0.1, 0.4},
	"gpt-5":         {1.25, 10},
	"gpt-5-mini":    {0.25, 2},
	"gpt-5-nano":    {0.05, 0.4},
	"o4-mini":       {1.1, 4.4},

	// Google (Gemini)
	"gemini-1.5-flash":         {0.075, 0.3},
	"gemini-2.0-flash":         {0.1, 0.4},
	"gemini-2.0-flash-lite":    {0.075, 0.3},
	"gemini-2.5-flash":         {0.3, 2.5},
	"gemini-2.5-flash-lite":    {0.1, 0.4},
	"gemini-2.5-pro":           {1.25, 10},
	"gemini-flash-latest":      {0.3, 2.5},
	"gemini-flash-lite-latest": {0.1, 0.4},
}
