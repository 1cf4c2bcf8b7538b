package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// JobRate 勤務先ごとの時給設定モデル
type JobRate struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"uniqueIndex:idx_user_job;not null"`
	Job       string         `json:"job" gorm:"uniqueIndex:idx_user_job;size:100;not null"` // 勤務先名
	Rate      int            `json:"rate" gorm:"not null"`                                  // 通常時給（円）
	NightRate int            `json:"night_rate" gorm:"not null"`                            // 深夜時給（円）
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName テーブル名を設定
func (JobRate) TableName() string {
	return "job_rates"
}

// DefaultNightRate 通常時給から深夜時給を算出する（25%割増、四捨五入）
func DefaultNightRate(rate int) int {
	return int(math.Round(float64(rate) * 1.25))
}
