// Package payroll はシフトの給料計算と期間別集計を行う純粋なドメインロジック。
// DB や HTTP には依存しない。
package payroll

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidInterval 終了時刻が開始時刻より前
	ErrInvalidInterval = errors.New("payroll: 終了時刻が開始時刻より前です")
	// ErrIntervalTooLong 勤務時間が24時間を超えている
	ErrIntervalTooLong = errors.New("payroll: 勤務時間が24時間を超えています")
)

// MaxShiftDuration 1回のシフトとして認める上限
const MaxShiftDuration = 24 * time.Hour

var sixty = decimal.NewFromInt(60)

// isNightMinute 深夜時給が適用される時間帯（22:00:00〜04:59:59）かどうか
func isNightMinute(t time.Time) bool {
	h := t.Hour()
	return h >= 22 || h < 5
}

// CalcIncome 開始時刻から終了時刻までの給料を円単位で計算する。
// 1分刻みで深夜帯（22:00〜04:59）か否かを判定し、その分の時給÷60を積算、
// 丸めは最後に1回だけ行う。start == end は 0 円。
func CalcIncome(start, end time.Time, rate, nightRate int) (int, error) {
	if end.Before(start) {
		return 0, ErrInvalidInterval
	}
	if end.Sub(start) > MaxShiftDuration {
		return 0, ErrIntervalTooLong
	}

	dayPerMin := decimal.NewFromInt(int64(rate)).Div(sixty)
	nightPerMin := decimal.NewFromInt(int64(nightRate)).Div(sixty)

	total := decimal.Zero
	for t := start; t.Before(end); t = t.Add(time.Minute) {
		if isNightMinute(t) {
			total = total.Add(nightPerMin)
		} else {
			total = total.Add(dayPerMin)
		}
	}

	return int(total.Round(0).IntPart()), nil
}
