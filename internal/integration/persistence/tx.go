// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"database/sql"
	"sync"

	"gorm.io/gorm"
)

// invariantWriteMu serializes the check-then-write transactions guarding
// cross-row rules (partner share sum, owner cap) inside one process.
var invariantWriteMu sync.Mutex

// guardedTransaction runs fn in a transaction while holding invariantWriteMu.
// On PostgreSQL the transaction also runs at SERIALIZABLE isolation so the rule
// holds across processes sharing the database.
func guardedTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	invariantWriteMu.Lock()
	defer invariantWriteMu.Unlock()

	return db.WithContext(ctx).Transaction(fn, txOptions(db))
}

func txOptions(db *gorm.DB) *sql.TxOptions {
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		return &sql.TxOptions{Isolation: sql.LevelSerializable}
	}
	return nil
}
