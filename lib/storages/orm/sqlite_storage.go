package orm

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/pescuma/eotracker/lib/consoles"
	"github.com/pescuma/eotracker/lib/storages"
)

func WithSqlite(file string) gorm.Dialector {
	return sqlite.Open(file + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
}

func WithSqliteInMemory() gorm.Dialector {
	return sqlite.Open(":memory:")
}

func NewSqliteMemoryStorage(console consoles.Console) (storages.Storage, error) {
	return NewGormStorage(WithSqliteInMemory(), console)
}
