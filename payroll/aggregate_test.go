package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketKey(t *testing.T) {
	tests := []struct {
		g       Granularity
		endDate string
		want    string
	}{
		{Daily, "2025-03-14", "2025-03-14"},
		{Monthly, "2025-03-14", "2025-03"},
		{Yearly, "2025-03-14", "2025"},
		// 2025-03-14 は金曜日 → その週の月曜は 2025-03-10
		{Weekly, "2025-03-14", "2025-03-10"},
		// 月曜日はそのまま
		{Weekly, "2025-03-10", "2025-03-10"},
		// 日曜日は6日さかのぼる
		{Weekly, "2025-03-16", "2025-03-10"},
		// 年をまたぐ週
		{Weekly, "2025-01-01", "2024-12-30"},
	}
	for _, tt := range tests {
		key, ok := BucketKey(tt.g, tt.endDate)
		require.True(t, ok, "%s %s", tt.g, tt.endDate)
		assert.Equal(t, tt.want, key, "%s %s", tt.g, tt.endDate)
	}
}

func TestBucketKey_Invalid(t *testing.T) {
	_, ok := BucketKey(Weekly, "not-a-date")
	assert.False(t, ok)
	_, ok = BucketKey(Daily, "")
	assert.False(t, ok)
}

func TestAggregate_Monthly(t *testing.T) {
	records := []Record{
		{EndDate: "2025-03-01", Income: 5000, Hours: 4},
		{EndDate: "2025-03-20", Income: 7000, Hours: 6},
		{EndDate: "2025-04-02", Income: 3000, Hours: 2.5},
	}
	sums := Aggregate(Monthly, records)
	require.Len(t, sums, 2)
	assert.Equal(t, Sum{Income: 12000, Hours: 10}, sums["2025-03"])
	assert.Equal(t, Sum{Income: 3000, Hours: 2.5}, sums["2025-04"])
}

func TestAggregate_DailyPartition(t *testing.T) {
	// 日別のバケット分けでは収入が増えも減りもしない
	records := []Record{
		{EndDate: "2025-03-14", Income: 4800, Hours: 4},
		{EndDate: "2025-03-14", Income: 2700, Hours: 2},
		{EndDate: "2025-03-15", Income: 3000, Hours: 2},
		{EndDate: "2025-06-01", Income: 9600, Hours: 8},
	}
	sums := Aggregate(Daily, records)

	wantTotal := 0
	for _, r := range records {
		wantTotal += r.Income
	}
	gotTotal := 0
	for _, s := range sums {
		gotTotal += s.Income
	}
	assert.Equal(t, wantTotal, gotTotal)
	assert.Equal(t, 4800+2700, sums["2025-03-14"].Income)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	a := []Record{
		{EndDate: "2025-03-14", Income: 100, Hours: 1},
		{EndDate: "2025-03-14", Income: 200, Hours: 2},
		{EndDate: "2025-03-21", Income: 300, Hours: 3},
	}
	b := []Record{a[2], a[0], a[1]}
	assert.Equal(t, Aggregate(Weekly, a), Aggregate(Weekly, b))
}

func TestAggregate_SkipsInvalidEndDate(t *testing.T) {
	records := []Record{
		{EndDate: "", Income: 1000, Hours: 1},
		{EndDate: "2025-03-14", Income: 2000, Hours: 2},
	}
	sums := Aggregate(Yearly, records)
	require.Len(t, sums, 1)
	assert.Equal(t, 2000, sums["2025"].Income)
}

func TestAggregate_Sparse(t *testing.T) {
	sums := Aggregate(Daily, []Record{{EndDate: "2025-03-14", Income: 1, Hours: 1}})
	// シフトのない日はキー自体が存在しない
	_, ok := sums["2025-03-15"]
	assert.False(t, ok)
}
