package repository

import "context"

// TxRunner executes fn as one atomic unit. Repository calls made with the
// context passed to fn share that unit's connection; any error rolls the
// whole unit back.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
