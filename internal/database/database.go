package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the cgo-free "sqlite" driver

	"ppetrack/internal/domain"
	"ppetrack/internal/modules/notification"
	"ppetrack/internal/modules/upload"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema, including the unique indexes that back
// the system's invariants: one cycle per (person, month), one result
// per (cycle, barcode), one signoff per quarter.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Person{},
		&domain.EquipmentItem{},
		&domain.InspectionCycle{},
		&domain.ItemResult{},
		&domain.AuditSignoff{},
		&notification.Notification{},
		&upload.Upload{},
	)
}
