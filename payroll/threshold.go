package payroll

import "fmt"

// 年収の壁（円）
const (
	Wall103 = 1030000 // 所得税の扶養の壁
	Wall130 = 1300000 // 社会保険の扶養の壁
)

// 週の労働時間の警告帯
const (
	weeklyHoursWarn = 35.0
	weeklyHoursMax  = 40.0
)

// HoursWarning 週の労働時間に関する注意喚起
type HoursWarning struct {
	Hours     float64 `json:"hours"`     // 今週の労働時間
	Remaining float64 `json:"remaining"` // 週40時間までの残り
	Message   string  `json:"message"`
}

// IncomeWarning 年収の壁に関する注意喚起
type IncomeWarning struct {
	Wall      int    `json:"wall"`       // 近づいている壁（円）
	RemainMan int    `json:"remain_man"` // 壁までの残り（万円、1万円未満切り捨て）
	Message   string `json:"message"`
}

// EvaluateWeeklyHours 今週の労働時間が35時間以上40時間未満なら警告を返す。
// 返り値 nil は警告なし。
func EvaluateWeeklyHours(hours float64) *HoursWarning {
	if hours < weeklyHoursWarn || hours >= weeklyHoursMax {
		return nil
	}
	remaining := weeklyHoursMax - hours
	return &HoursWarning{
		Hours:     hours,
		Remaining: remaining,
		Message:   fmt.Sprintf("今週の労働時間は%.1f時間です。週40時間まであと%.1f時間です", hours, remaining),
	}
}

// EvaluateYearlyIncome 年収が103万円・130万円の壁に近づいていれば警告を返す。
// 95万円超〜103万円未満は103万円の壁、103万円以上130万円未満は130万円の壁。
// 返り値 nil は警告なし。
func EvaluateYearlyIncome(income int) *IncomeWarning {
	var wall int
	switch {
	case income > 950000 && income < Wall103:
		wall = Wall103
	case income >= Wall103 && income < Wall130:
		wall = Wall130
	default:
		return nil
	}

	remainMan := (wall - income) / 10000
	var msg string
	if remainMan == 0 {
		msg = fmt.Sprintf("年収が%d万円の壁まで残り1万円未満です", wall/10000)
	} else {
		msg = fmt.Sprintf("年収が%d万円の壁まで残り約%d万円です", wall/10000, remainMan)
	}
	return &IncomeWarning{Wall: wall, RemainMan: remainMan, Message: msg}
}
