package storage

import (
	"errors"

	"MedzenGo/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore 把key/JSON存进数据库的store_blobs表
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (g *GormStore) Read(key string) ([]byte, error) {
	var blob models.StoreBlob
	if err := g.db.Where("store_key = ?", key).First(&blob).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return blob.Value, nil
}

func (g *GormStore) Write(key string, value []byte) error {
	blob := models.StoreBlob{Key: key, Value: value}
	// 已存在则整行覆盖
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_key"}},
		UpdateAll: true,
	}).Create(&blob).Error
}

func (g *GormStore) Delete(key string) error {
	return g.db.Where("store_key = ?", key).Delete(&models.StoreBlob{}).Error
}
