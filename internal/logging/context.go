package logging

import "context"

type contextKey string

const ctxKeyLoadID contextKey = "load_id"

// ContextWithLoadID tags ctx with the ID of the dataset load it serves.
func ContextWithLoadID(ctx context.Context, loadID string) context.Context {
	return context.WithValue(ctx, ctxKeyLoadID, loadID)
}

// LoadIDFromContext extracts the load ID, or "".
func LoadIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyLoadID).(string); ok {
		return v
	}
	return ""
}
