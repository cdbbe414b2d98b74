package problemgen

import "fmt"

const systemPrompt = `You are a physics tutor writing practice problems on Newton's second law.

Rules:
- Write a single short word problem in which two of mass, force and acceleration are given and the third is asked for.
- Use SI units only, spelled the way students should type them: kg for mass, N for force, m/s^2 for acceleration.
- State both given values with their units inside the problem text, and ask for exactly the requested unknown.
- Plain text only. No LaTeX, no markdown, no special symbols.
- The three numbers must satisfy F = m * a exactly.
- Keep the values realistic for everyday objects (carts, sleds, bicycles, crates).
- Do not repeat any problem from the "already asked" list.`

// buildUserMessage renders the per-request part of the prompt: the
// requested unknown plus the dedup list of this session's problems.
func buildUserMessage(input GenerateInput, cfg Config) string {
	unknown := "any"
	if input.Target.Valid() {
		unknown = string(input.Target)
	}

	return fmt.Sprintf("Unknown quantity: %s\n\nAlready asked in this session:\n%s",
		unknown, buildDedup(input.PriorStatements, cfg.MaxPriorStatements))
}
