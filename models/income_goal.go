package models

import (
	"time"

	"gorm.io/gorm"
)

// IncomeGoal 年収目標モデル（ユーザー×年ごとに1件）
type IncomeGoal struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	UserID     uint           `json:"user_id" gorm:"uniqueIndex:idx_user_year;not null"`
	Year       string         `json:"year" gorm:"uniqueIndex:idx_user_year;size:4;not null"` // YYYY
	IncomeGoal int            `json:"income_goal" gorm:"not null"`                           // 目標年収（円）
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
	User       User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName テーブル名を設定
func (IncomeGoal) TableName() string {
	return "income_goals"
}
