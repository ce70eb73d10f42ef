// Package dbtx lets gorm repositories join a transaction opened by a service
// on the underlying *sql.DB.
package dbtx

import (
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Bind returns a gorm handle whose statements run on tx. When tx is nil the
// base handle is returned unchanged.
func Bind(base *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return base
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: tx}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 base.Logger,
		NowFunc:                base.NowFunc,
	})
	if err != nil {
		fallback := base.Session(&gorm.Session{NewDB: true})
		_ = fallback.AddError(err)
		return fallback
	}

	return db
}
