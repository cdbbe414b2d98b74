package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// LoggingProvider is a decorator that emits a structured log line for
// every LLM request, including latency, token usage and estimated cost.
type LoggingProvider struct {
	inner  Provider
	logger *slog.Logger
}

// WithLogging wraps a Provider with request logging. A nil logger falls
// back to slog.Default().
func WithLogging(p Provider, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	fields := []any{
		"purpose", purpose,
		"model", l.inner.ModelID(),
		"latency_ms", time.Since(start).Milliseconds(),
	}

	if resp != nil {
		fields = append(fields,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
		)
		if cost := LookupCost(resp.Model); cost != nil {
			fields = append(fields, "cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
		}
	}

	if err != nil {
		fields = append(fields, "error", err.Error())
		l.logger.WarnContext(ctx, "llm request failed", fields...)
		return resp, err
	}

	l.logger.InfoContext(ctx, "llm request", fields...)

	// Full prompt and response go to debug only; they can be large.
	if l.logger.Enabled(ctx, slog.LevelDebug) {
		l.logger.DebugContext(ctx, "llm exchange",
			"purpose", purpose,
			"request", serializeRequest(req),
			"response", string(resp.Content),
		)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest renders a request for debug logs: system prompt,
// then each message, then the schema definition.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
