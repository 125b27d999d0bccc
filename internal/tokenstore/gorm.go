package tokenstore

import (
	"context"
	"errors"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one persisted key/value pair.
type Entry struct {
	Key       string    `gorm:"column:state_key;primaryKey;size:64"`
	Value     string    `gorm:"column:state_value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Entry) TableName() string { return "console_client_state" }

// Gorm stores tokens in a two-row key/value table.
type Gorm struct{ db *gorm.DB }

func NewGorm(db *gorm.DB) *Gorm { return &Gorm{db: db} }

// OpenMySQL connects with parseTime forced on, which the updated_at column needs.
func OpenMySQL(dsn string) (*gorm.DB, error) {
	cfg, err := gomysql.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	cfg.ParseTime = true
	return gorm.Open(mysql.Open(cfg.FormatDSN()), &gorm.Config{})
}

func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// Migrate creates the state table if needed.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Entry{})
}

func (g *Gorm) Load(ctx context.Context) (Tokens, error) {
	var rows []Entry
	err := g.db.WithContext(ctx).
		Where("state_key IN ?", []string{KeyAccessToken, KeyRefreshToken}).
		Find(&rows).Error
	if err != nil {
		return Tokens{}, err
	}
	var t Tokens
	for _, r := range rows {
		switch r.Key {
		case KeyAccessToken:
			t.AccessToken = r.Value
		case KeyRefreshToken:
			t.RefreshToken = r.Value
		}
	}
	return t, nil
}

func (g *Gorm) Save(ctx context.Context, t Tokens) error {
	now := time.Now()
	rows := []Entry{
		{Key: KeyAccessToken, Value: t.AccessToken, UpdatedAt: now},
		{Key: KeyRefreshToken, Value: t.RefreshToken, UpdatedAt: now},
	}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "state_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"state_value", "updated_at"}),
		}).
		Create(&rows).Error
}

func (g *Gorm) Clear(ctx context.Context) error {
	err := g.db.WithContext(ctx).
		Where("state_key IN ?", []string{KeyAccessToken, KeyRefreshToken}).
		Delete(&Entry{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
