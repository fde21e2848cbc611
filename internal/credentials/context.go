package credentials

import "context"

type key struct{}

var credentialsKey key

func NewContext(ctx context.Context, credentials *Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey, credentials)
}

func FromContext(ctx context.Context) (*Credentials, bool) {
	c, ok := ctx.Value(credentialsKey).(*Credentials)
	return c, ok
}
