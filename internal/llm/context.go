package llm

import "context"

// Purpose labels what a request is for. It rides on the context so the
// logging middleware can attribute events without threading a parameter
// through every provider call.
type Purpose string

const (
	PurposeGenerate Purpose = "content-gen"
	PurposeReview   Purpose = "content-review"
	PurposeUnknown  Purpose = "unknown"
)

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose tags the context with the request purpose.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey, p)
}

// PurposeFrom reads the purpose tag, defaulting to PurposeUnknown.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey).(Purpose); ok {
		return p
	}
	return PurposeUnknown
}
