package interfaces

import "context"

// ITransactor runs fn in a single storage transaction. A non-nil error from
// fn rolls back every repository write made with the context passed to fn.

type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
