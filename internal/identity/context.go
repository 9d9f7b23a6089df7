package identity

import "context"

type accountContextKey struct{}

// ContextWithAccount attaches the authenticated account summary to the
// context. The association lives only for the request lifetime.
func ContextWithAccount(ctx context.Context, sum Summary) context.Context {
	return context.WithValue(ctx, accountContextKey{}, &sum)
}

// AccountFromContext extracts the authenticated account summary.
func AccountFromContext(ctx context.Context) (Summary, bool) {
	if ctx == nil {
		return Summary{}, false
	}
	v, ok := ctx.Value(accountContextKey{}).(*Summary)
	if !ok || v == nil {
		return Summary{}, false
	}
	return *v, true
}
