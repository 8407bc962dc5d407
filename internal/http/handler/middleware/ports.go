package middleware

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Identifier . Identifier
type Identifier interface {
	Identify(ctx context.Context, token string) (string, error)
}
