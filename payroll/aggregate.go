package payroll

import "time"

// Granularity 集計の粒度
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// Record 集計対象の1シフト分のデータ。収入は終了日のバケットに帰属する。
type Record struct {
	EndDate string // YYYY-MM-DD
	Income  int    // 円
	Hours   float64
}

// Sum バケットごとの合計
type Sum struct {
	Income int     `json:"income"`
	Hours  float64 `json:"hours"`
}

// BucketKey 終了日から集計キーを導出する。
// daily は日付文字列そのまま、weekly はその週の月曜日（週の開始は月曜）、
// monthly は YYYY-MM、yearly は YYYY。
func BucketKey(g Granularity, endDate string) (string, bool) {
	if g == Daily {
		return endDate, endDate != ""
	}
	d, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
	if err != nil {
		return "", false
	}
	switch g {
	case Weekly:
		// 月曜始まり: Monday=0 ... Sunday=6 日分さかのぼる
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset).Format("2006-01-02"), true
	case Monthly:
		return d.Format("2006-01"), true
	case Yearly:
		return d.Format("2006"), true
	}
	return "", false
}

// Aggregate シフトを粒度ごとのバケットにまとめ、収入と労働時間を合算する。
// シフトのないバケットはマップに現れない（疎な表現）。
// 加算は可換なので入力順に依らず結果は一意。
func Aggregate(g Granularity, records []Record) map[string]Sum {
	sums := make(map[string]Sum)
	for _, r := range records {
		key, ok := BucketKey(g, r.EndDate)
		if !ok {
			continue
		}
		s := sums[key]
		s.Income += r.Income
		s.Hours += r.Hours
		sums[key] = s
	}
	return sums
}
