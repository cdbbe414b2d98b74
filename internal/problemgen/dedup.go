package problemgen

import (
	"fmt"
	"strings"
)

// buildDedup renders prior problem statements as a numbered list for the
// prompt. Only the newest max entries are kept; zero disables the cap.
// An empty history renders as "None".
func buildDedup(statements []string, max int) string {
	if len(statements) == 0 {
		return "None"
	}
	if max > 0 && len(statements) > max {
		statements = statements[len(statements)-max:]
	}

	lines := make([]string, len(statements))
	for i, s := range statements {
		lines[i] = fmt.Sprintf("%d. %s", i+1, s)
	}
	return strings.Join(lines, "\n")
}
