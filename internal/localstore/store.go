package localstore

import (
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("localstore: key not found")

// Entry is one persisted key/value pair. The store plays the role the
// browser's localStorage played for the dashboard: the session token under a
// fixed key, plus the last good dashboard snapshots.
type Entry struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Entry) TableName() string {
	return "entries"
}

type Store interface {
	Get(key string) (string, error)
	Put(key, value string) error
	Delete(key string) error
}

type store struct {
	db *gorm.DB
}

// OpenDB connects to (and if needed creates) the sqlite file at path. The
// same handle backs the key/value store and the reference-data tables.
func OpenDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// Open opens the sqlite file at path and migrates the key/value table.
func Open(path string) (Store, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, err
	}
	return New(db)
}

// New builds the key/value store on an existing handle.
func New(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &store{db: db}, nil
}

func (s *store) Get(key string) (string, error) {
	var entry Entry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return entry.Value, nil
}

func (s *store) Put(key, value string) error {
	entry := Entry{Key: key, Value: value}
	return s.db.Save(&entry).Error
}

func (s *store) Delete(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}
