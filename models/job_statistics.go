package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// StatEntry ひとつの期間バケットの収入と労働時間
type StatEntry struct {
	Income int     `json:"income"` // 収入（円）
	Hours  float64 `json:"hours"`  // 労働時間
}

// StatBuckets 期間キー（日付・週・月・年）ごとの集計値
// JSON カラムとして保存する
type StatBuckets map[string]StatEntry

// Value driver.Valuer の実装
func (s StatBuckets) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan sql.Scanner の実装
func (s *StatBuckets) Scan(value interface{}) error {
	if value == nil {
		*s = StatBuckets{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("StatBuckets: 変換できない型 %T", value)
	}
	return json.Unmarshal(b, s)
}

// JobStatistics 勤務先ごとの収入統計キャッシュモデル
// 生のシフトから再計算して丸ごと上書きする非正規化キャッシュ。
// job = "all" の行は全勤務先の合算を表す合成行。
type JobStatistics struct {
	ID        uint           `json:"-" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"uniqueIndex:idx_user_stat_job;not null"`
	Job       string         `json:"job" gorm:"uniqueIndex:idx_user_stat_job;size:100;not null"`
	Daily     StatBuckets    `json:"daily" gorm:"type:json"`
	Weekly    StatBuckets    `json:"weekly" gorm:"type:json"`
	Monthly   StatBuckets    `json:"monthly" gorm:"type:json"`
	Yearly    StatBuckets    `json:"yearly" gorm:"type:json"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName テーブル名を設定
func (JobStatistics) TableName() string {
	return "job_statistics"
}

// AllJobs 全勤務先合算を表す合成行のキー
const AllJobs = "all"
