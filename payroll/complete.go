package payroll

import (
	"errors"
	"time"
)

var (
	// ErrIncompleteInput 開始・終了・実働時間のうち2つが揃っていない
	ErrIncompleteInput = errors.New("payroll: 開始・終了・実働時間のうち2つを指定してください")
)

// Given シフト時間の入力。開始・終了・実働時間のうち2つを与えると
// Complete が残りの1つを導出する。
type Given struct {
	start *time.Time
	end   *time.Time
	hours *float64
}

// StartEnd 開始時刻と終了時刻から
func StartEnd(start, end time.Time) Given {
	return Given{start: &start, end: &end}
}

// StartHours 開始時刻と実働時間から
func StartHours(start time.Time, hours float64) Given {
	return Given{start: &start, hours: &hours}
}

// EndHours 終了時刻と実働時間から
func EndHours(end time.Time, hours float64) Given {
	return Given{end: &end, hours: &hours}
}

// Interval 完成したシフト時間
type Interval struct {
	Start time.Time
	End   time.Time
}

// Hours 実働時間（時間単位）
func (iv Interval) Hours() float64 {
	return iv.End.Sub(iv.Start).Hours()
}

// Complete 与えられた2項目から残りを時間軸上の加減算で導出する。
// 導出結果が不正な区間（終了が開始より前、24時間超）の場合はエラー。
func (g Given) Complete() (Interval, error) {
	var iv Interval
	switch {
	case g.start != nil && g.end != nil:
		iv = Interval{Start: *g.start, End: *g.end}
	case g.start != nil && g.hours != nil:
		d := time.Duration(*g.hours * float64(time.Hour))
		iv = Interval{Start: *g.start, End: g.start.Add(d)}
	case g.end != nil && g.hours != nil:
		d := time.Duration(*g.hours * float64(time.Hour))
		iv = Interval{Start: g.end.Add(-d), End: *g.end}
	default:
		return Interval{}, ErrIncompleteInput
	}

	if iv.End.Before(iv.Start) {
		return Interval{}, ErrInvalidInterval
	}
	if iv.End.Sub(iv.Start) > MaxShiftDuration {
		return Interval{}, ErrIntervalTooLong
	}
	return iv, nil
}
