// Package http provides operator authentication handlers and middleware.
package http

import (
	"context"

	authDomain "github.com/allisson/sharelink/internal/auth/domain"
)

type operatorKey struct{}

// WithOperator stores the authenticated operator in the context.
func WithOperator(ctx context.Context, operator *authDomain.Operator) context.Context {
	return context.WithValue(ctx, operatorKey{}, operator)
}

// GetOperator retrieves the authenticated operator stored by AuthenticationMiddleware.
func GetOperator(ctx context.Context) (*authDomain.Operator, bool) {
	operator, ok := ctx.Value(operatorKey{}).(*authDomain.Operator)
	return operator, ok && operator != nil
}
