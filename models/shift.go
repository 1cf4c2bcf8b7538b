package models

import (
	"time"

	"gorm.io/gorm"
)

// Shift シフト（勤務記録）モデル
// hours は開始・終了時刻から求めた実働時間、income は登録時点の時給で
// 計算した給料。時給設定を後から変更しても再計算は行わない。
type Shift struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	Job       string         `json:"job" gorm:"size:100;not null;index"` // 勤務先名
	StartDate string         `json:"start_date" gorm:"size:10;not null"` // YYYY-MM-DD
	EndDate   string         `json:"end_date" gorm:"size:10;not null;index"`
	StartTime time.Time      `json:"start_time" gorm:"not null"`
	EndTime   time.Time      `json:"end_time" gorm:"not null"`
	Hours     float64        `json:"hours" gorm:"not null"`      // 実働時間（時間単位）
	Rate      int            `json:"rate" gorm:"not null"`       // 登録時点の通常時給（円）
	NightRate int            `json:"night_rate" gorm:"not null"` // 登録時点の深夜時給（円）
	Income    int            `json:"income" gorm:"not null"`     // 給料（円）
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName テーブル名を設定
func (Shift) TableName() string {
	return "shifts"
}
