package memory

import "context"

// TxManager runs fn directly. Each memory store guards its own rows, so
// there is no cross-store transaction to open.
type TxManager struct{}

// RunInTx calls fn with ctx unchanged.
func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
