// Package store persists and retrieves transaction records. Uniqueness of
// the external transaction id is enforced by a database unique index, and
// structural validation runs in a model hook, so direct database access gets
// the same guarantees as the ingest pipeline.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/relisha1/MoMo-Data-Analysis/internal/models"
	"github.com/relisha1/MoMo-Data-Analysis/internal/parsererror"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// maxListResults caps filtered reads to bound response size.
const maxListResults = 100

// ErrNotFound is returned by Get when no record carries the requested id.
var ErrNotFound = errors.New("transaction not found")

// Filter narrows List results. Zero values leave the corresponding
// predicate off. Date bounds are inclusive and compared in the persisted
// timestamp layout.
type Filter struct {
	Type      string
	DateFrom  string
	DateTo    string
	MinAmount int
}

// TypeSummary is one row of the grouped aggregate query.
type TypeSummary struct {
	Type        string `json:"type"`
	Count       int64  `json:"count"`
	TotalAmount int64  `json:"total_amount"`
}

// TransactionStore provides access to persisted transaction records.
type TransactionStore struct {
	db *gorm.DB
}

// New wraps an existing gorm handle.
func New(db *gorm.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// Open connects to the configured database, migrates the transactions table
// and returns a store. Supported drivers are "sqlite" and "postgres".
func Open(driver, dsn string) (*TransactionStore, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite", "":
		if dir := filepath.Dir(dsn); dir != "." && dsn != ":memory:" {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, fmt.Errorf("error creating database directory: %w", err)
			}
		}
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	log.WithField("driver", driver).Info("Connected to database")
	return New(db), nil
}

// Insert persists one transaction record. It returns a DuplicateIDError when
// the external transaction id is already present, and a ValidationError when
// the record is structurally invalid.
func (s *TransactionStore) Insert(t *models.Transaction) error {
	if err := s.db.Create(t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &parsererror.DuplicateIDError{TxID: t.ExternalID()}
		}
		return err
	}
	return nil
}

// List returns records matching the filter, ordered by date descending and
// capped at 100 entries.
func (s *TransactionStore) List(f Filter) ([]models.Transaction, error) {
	q := s.db.Model(&models.Transaction{})
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.DateFrom != "" {
		q = q.Where("date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("date <= ?", f.DateTo)
	}
	if f.MinAmount > 0 {
		q = q.Where("amount >= ?", f.MinAmount)
	}

	var transactions []models.Transaction
	if err := q.Order("date DESC").Limit(maxListResults).Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	return transactions, nil
}

// All returns every stored record ordered by date descending, uncapped.
// Intended for exports, not for the query API.
func (s *TransactionStore) All() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("error reading transactions: %w", err)
	}
	return transactions, nil
}

// Get returns the record with the given identifier, or ErrNotFound.
func (s *TransactionStore) Get(id uint) (*models.Transaction, error) {
	var t models.Transaction
	if err := s.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching transaction %d: %w", id, err)
	}
	return &t, nil
}

// Delete removes the record with the given identifier. Deleting an absent id
// is a no-op, not an error.
func (s *TransactionStore) Delete(id uint) error {
	res := s.db.Delete(&models.Transaction{}, id)
	if res.Error != nil {
		return fmt.Errorf("error deleting transaction %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		log.WithField("id", id).Debug("Delete of absent transaction, nothing to do")
	}
	return nil
}

// SummaryByType returns per-category record counts and amount totals.
func (s *TransactionStore) SummaryByType() ([]TypeSummary, error) {
	var rows []TypeSummary
	err := s.db.Model(&models.Transaction{}).
		Select("type, COUNT(*) AS count, SUM(amount) AS total_amount").
		Group("type").
		Order("type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error aggregating transactions: %w", err)
	}
	return rows, nil
}
