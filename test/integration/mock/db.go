package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shop-ledger/backend/internal/integration/persistence"
)

var once sync.Once
var db *Db

// Db is a shared in-memory database for the feature suite.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb returns the suite database, opening it on first use. models maps
// table names to the gorm model used to inspect them.
func NewDb(models map[string]any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file:shop_ledger_features?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		panic(err)
	}

	// One connection keeps the shared in-memory database alive and serializes writers.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: models,
	}

	if err := persistence.AutoMigrate(dbConn); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDbMock
}

// ClearDB empties every table and resets the id sequences.
// Ledger tables go first because they reference products.
func (d *Db) ClearDB() error {
	for _, table := range []string{"expenses", "income", "products", "partners", "users"} {
		if err := d.DbConn.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	err := d.DbConn.Exec("DELETE FROM sqlite_sequence").Error
	if err != nil && !isMissingSequenceTable(err) {
		return err
	}
	return nil
}

// GetModel returns the model registered for table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}

func isMissingSequenceTable(err error) bool {
	return strings.Contains(err.Error(), "no such table: sqlite_sequence")
}
