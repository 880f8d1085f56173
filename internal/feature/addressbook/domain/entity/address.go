// Package entity はaddressbookフィーチャーのドメインモデルを定義します。
package entity

import "time"

// UserAddress は1人のユーザーの連絡先・住所レコードを表します。
// CreatedAtとUpdatedAtはリポジトリが書き込み時に明示的に設定するため、
// gormの自動タイムスタンプ追跡は無効化しています。
type UserAddress struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Phone     string    `gorm:"size:20"`
	Email     string    `gorm:"size:100"`
	Street    string    `gorm:"size:255"`
	City      string    `gorm:"size:100"`
	State     string    `gorm:"size:100"`
	ZipCode   string    `gorm:"column:zip_code;size:20"`
	Country   string    `gorm:"size:100"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;autoUpdateTime:false;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}
