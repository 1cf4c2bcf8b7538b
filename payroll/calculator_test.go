package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m int) time.Time {
	return time.Date(2025, 3, 14, h, m, 0, 0, time.Local)
}

func TestCalcIncome_AllDayRate(t *testing.T) {
	// 09:00〜13:00 の4時間はすべて通常時給
	income, err := CalcIncome(at(9, 0), at(13, 0), 1200, 1500)
	require.NoError(t, err)
	assert.Equal(t, 4800, income)
}

func TestCalcIncome_AllNightRate_CrossMidnight(t *testing.T) {
	// 23:00〜翌01:00 の2時間はすべて深夜時給
	start := at(23, 0)
	end := start.Add(2 * time.Hour)
	income, err := CalcIncome(start, end, 1200, 1500)
	require.NoError(t, err)
	assert.Equal(t, 3000, income)
}

func TestCalcIncome_MixedRate(t *testing.T) {
	// 21:00〜23:00 は通常1時間 + 深夜1時間
	income, err := CalcIncome(at(21, 0), at(23, 0), 1200, 1500)
	require.NoError(t, err)
	assert.Equal(t, 1200+1500, income)
}

func TestCalcIncome_NightBoundaries(t *testing.T) {
	// 22:00 ちょうどから深夜、05:00 ちょうどから通常
	income, err := CalcIncome(at(22, 0), at(22, 30), 1200, 1500)
	require.NoError(t, err)
	assert.Equal(t, 750, income)

	start := time.Date(2025, 3, 15, 4, 30, 0, 0, time.Local)
	income, err = CalcIncome(start, start.Add(time.Hour), 1200, 1500)
	require.NoError(t, err)
	// 深夜30分(750) + 通常30分(600)
	assert.Equal(t, 1350, income)
}

func TestCalcIncome_ZeroLength(t *testing.T) {
	income, err := CalcIncome(at(9, 0), at(9, 0), 1200, 1500)
	require.NoError(t, err)
	assert.Equal(t, 0, income)
}

func TestCalcIncome_InvalidInterval(t *testing.T) {
	_, err := CalcIncome(at(13, 0), at(9, 0), 1200, 1500)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestCalcIncome_TooLong(t *testing.T) {
	_, err := CalcIncome(at(9, 0), at(9, 0).Add(25*time.Hour), 1200, 1500)
	assert.ErrorIs(t, err, ErrIntervalTooLong)
}

func TestCalcIncome_RoundsOnceAtEnd(t *testing.T) {
	// 時給1000円の1分 = 16.666...円。50分で833.33...円 → 833円。
	// 1分ごとに丸めると 17*50=850 になってしまう
	income, err := CalcIncome(at(9, 0), at(9, 50), 1000, 1250)
	require.NoError(t, err)
	assert.Equal(t, 833, income)
}

func TestCalcIncome_Monotonic(t *testing.T) {
	// 区間を伸ばすほど給料は単調非減少
	start := at(20, 0)
	prev := 0
	for m := 0; m <= 8*60; m += 15 {
		income, err := CalcIncome(start, start.Add(time.Duration(m)*time.Minute), 1200, 1500)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, income, prev)
		prev = income
	}
}
