package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"buwana-tours/pkg/models"
)

const pingTimeout = 5 * time.Second

// Store persists form submissions. Each Create* call is a single atomic
// insert; no operation reads or mutates an existing record.
type Store struct {
	db *gorm.DB
}

// Open connects to the database named by databaseURL and migrates the
// submission tables. A postgres:// or postgresql:// URL selects PostgreSQL;
// anything else is treated as a SQLite path, optionally prefixed sqlite://.
func Open(databaseURL string) (*Store, error) {
	var dialector gorm.Dialector

	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		log.Println("[STORE] Connecting to PostgreSQL database...")
		dialector = postgres.Open(databaseURL)
	} else {
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		log.Printf("[STORE] Connecting to SQLite database at %s...", path)
		sqlDB, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		dialector = sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        path,
			Conn:       sqlDB,
		}
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Silent mode keeps submitted personal data out of the logs
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	if err := db.AutoMigrate(&models.Inquiry{}, &models.Contact{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("[STORE] Database connected and migrated")
	return store, nil
}

// CreateInquiry inserts a new inquiry record, assigning its timestamps
func (s *Store) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	if err := s.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return fmt.Errorf("failed to save inquiry: %w", err)
	}
	return nil
}

// CreateContact inserts a new contact record, assigning its timestamps
func (s *Store) CreateContact(ctx context.Context, contact *models.Contact) error {
	if err := s.db.WithContext(ctx).Create(contact).Error; err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}
	return nil
}

// Ping verifies the underlying connection is alive
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Close releases the underlying database connections
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
