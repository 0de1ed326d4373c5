package postgres

import (
	"context"

	"gorm.io/gorm"
)

// cloneWithTx returns a shallow copy of Postgres with tx as the active connection.
// This lets a transaction-scoped Client share the parent's configuration and
// shutdown signals while operating against the transaction's *gorm.DB.
func (p *Postgres) cloneWithTx(tx *gorm.DB) *Postgres {
	return &Postgres{
		Client:          tx,
		cfg:             p.cfg,
		shutdownSignal:  p.shutdownSignal,
		retryChanSignal: p.retryChanSignal,
	}
}

// Transaction executes fn within a database transaction, passing a Client
// scoped to that transaction. If fn returns an error, the transaction is
// rolled back; otherwise it is committed.
//
// Example usage:
//
//	err := pg.Transaction(ctx, func(tx Client) error {
//		if err := tx.Create(ctx, user); err != nil {
//			return err
//		}
//		return tx.Create(ctx, userProfile)
//	})
func (p *Postgres) Transaction(ctx context.Context, fn func(tx Client) error) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.Client.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(p.cloneWithTx(tx))
	})
}
