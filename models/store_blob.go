package models

import "time"

// StoreBlob key -> JSON 持久化模型，对应浏览器端的localStorage条目
type StoreBlob struct {
	Key       string    `gorm:"type:varchar(191);primaryKey;column:store_key" json:"key"`
	Value     []byte    `gorm:"type:mediumblob" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (StoreBlob) TableName() string {
	return "store_blobs"
}
