package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is an in-memory SQLite database shared by all scenarios.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared database and migrates models, parents before
// children. Later calls return the same database.
func NewDb(models []any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}
	for _, m := range models {
		if !dbConn.Migrator().HasTable(m) {
			panic(fmt.Sprintf("table for model %T was not created", m))
		}
	}

	return &Db{DbConn: dbConn, models: models}
}

// Reset deletes every row, children first.
func (d *Db) Reset() error {
	for i := len(d.models) - 1; i >= 0; i-- {
		m := d.models[i]
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to clear %T: %w", m, err)
		}
	}
	return nil
}
