package persist

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvRecordはキーごとのJSON値1行
type kvRecord struct {
	Key       string    `gorm:"primaryKey;type:varchar(255)"`
	Value     []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

func (kvRecord) TableName() string {
	return "kv_records"
}

// GormStoreはPostgres上のkey-valueテーブルに保存する（STORAGE_DRIVER=postgres）。
type GormStore struct {
	db *gorm.DB
}

// DI
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	var rec kvRecord

	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&rec).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(rec.Value, dst); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *GormStore) Save(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	//同一キーは上書き
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&kvRecord{Key: key, Value: b, UpdatedAt: time.Now()}).Error
}
