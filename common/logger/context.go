package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Fields flow through context enrichment so business identifiers (user_id,
// organization_id, ...) show up on every log statement without manual plumbing.
type LogFields struct {
	UserID           *int64  // Acting user ID
	SessionID        *int64  // Session ID backing the request
	OrganizationID   *int64  // Organization ID
	OrganizationSlug *string // Organization slug
	MessageID        *string // Redis stream message ID
	Component        string  // Component name (OTel semantic convention style, e.g. "console.worker.orgdelete")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.SessionID != nil {
		result.SessionID = next.SessionID
	}
	if next.OrganizationID != nil {
		result.OrganizationID = next.OrganizationID
	}
	if next.OrganizationSlug != nil {
		result.OrganizationSlug = next.OrganizationSlug
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
