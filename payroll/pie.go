package payroll

import (
	"math"
	"sort"
)

// UnmetSlice 目標未達分を表す合成スライスの名前
const UnmetSlice = "未達成"

// PieSlice 目標達成円グラフの1切れ
type PieSlice struct {
	Name       string  `json:"name"`       // 勤務先名、または未達成
	Income     int     `json:"income"`     // 円
	Percentage float64 `json:"percentage"` // 目標に対する割合（%）
}

// GoalPie 目標年収と勤務先ごとの年間収入から円グラフ用のデータを作る。
// 各勤務先が目標の何%かを占め、目標に届かない分は「未達成」の合成
// スライスになる。収入合計が目標以上のときは未達成スライスを付けず、
// 正規化もしない。合計が100%を超えることを許す。
func GoalPie(target int, incomes map[string]int) []PieSlice {
	jobs := make([]string, 0, len(incomes))
	for job := range incomes {
		jobs = append(jobs, job)
	}
	sort.Strings(jobs)

	slices := make([]PieSlice, 0, len(jobs)+1)
	total := 0
	for _, job := range jobs {
		income := incomes[job]
		slices = append(slices, PieSlice{
			Name:       job,
			Income:     income,
			Percentage: percentOf(income, target),
		})
		total += income
	}

	if remaining := target - total; remaining > 0 {
		slices = append(slices, PieSlice{
			Name:       UnmetSlice,
			Income:     remaining,
			Percentage: percentOf(remaining, target),
		})
	}
	return slices
}

// percentOf 割合（%）を小数第2位まで
func percentOf(income, target int) float64 {
	if target <= 0 {
		return 0
	}
	return math.Round(float64(income)/float64(target)*100*100) / 100
}
