package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"baito/database"
	"baito/middleware"
	"baito/models"
	"baito/payroll"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// StatisticsHandler 収入統計処理
type StatisticsHandler struct{}

// NewStatisticsHandler 収入統計処理を作成
func NewStatisticsHandler() *StatisticsHandler {
	return &StatisticsHandler{}
}

// toRecords シフトを集計用レコードに変換する
func toRecords(shifts []models.Shift) []payroll.Record {
	records := make([]payroll.Record, 0, len(shifts))
	for _, s := range shifts {
		records = append(records, payroll.Record{
			EndDate: s.EndDate,
			Income:  s.Income,
			Hours:   s.Hours,
		})
	}
	return records
}

// toBuckets 集計結果を保存用の形式に変換する
func toBuckets(sums map[string]payroll.Sum) models.StatBuckets {
	buckets := make(models.StatBuckets, len(sums))
	for key, s := range sums {
		buckets[key] = models.StatEntry{Income: s.Income, Hours: s.Hours}
	}
	return buckets
}

// computeStatistics 1勤務先分の全粒度の集計を行う
func computeStatistics(userID uint, job string, records []payroll.Record) models.JobStatistics {
	return models.JobStatistics{
		UserID:  userID,
		Job:     job,
		Daily:   toBuckets(payroll.Aggregate(payroll.Daily, records)),
		Weekly:  toBuckets(payroll.Aggregate(payroll.Weekly, records)),
		Monthly: toBuckets(payroll.Aggregate(payroll.Monthly, records)),
		Yearly:  toBuckets(payroll.Aggregate(payroll.Yearly, records)),
	}
}

// GetStatistics 収入統計の取得
// @Summary 収入統計の取得
// @Description 勤務先ごと＋全勤務先合算（job="all"）の日・週・月・年別の収入と労働時間を返す。
// @Description 生のシフトから再計算し、job_statistics キャッシュを丸ごと上書きする
// @Tags 統計
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.JobStatistics "取得成功"
// @Failure 401 {object} map[string]interface{} "未認証"
// @Failure 404 {object} map[string]interface{} "シフトまたは勤務先が未登録"
// @Router /api/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var shifts []models.Shift
	if err := database.DB.Where("user_id = ?", userID).Find(&shifts).Error; err != nil {
		log.Printf("シフトの取得に失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "サーバーエラーが発生しました"})
		return
	}
	var jobRates []models.JobRate
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&jobRates).Error; err != nil {
		log.Printf("勤務先の取得に失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "サーバーエラーが発生しました"})
		return
	}

	if len(shifts) == 0 || len(jobRates) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "シフトまたは勤務先が登録されていません"})
		return
	}

	// 勤務先ごとの集計と合算行を作る
	statistics := make([]models.JobStatistics, 0, len(jobRates)+1)
	for _, jr := range jobRates {
		var jobShifts []models.Shift
		for _, s := range shifts {
			if s.Job == jr.Job {
				jobShifts = append(jobShifts, s)
			}
		}
		statistics = append(statistics, computeStatistics(userID, jr.Job, toRecords(jobShifts)))
	}
	statistics = append(statistics, computeStatistics(userID, models.AllJobs, toRecords(shifts)))

	// キャッシュを丸ごと上書きする。同時に開いた別タブ同士の上書きは
	// 防がない（単一ライター前提）
	for i := range statistics {
		if err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "job"}},
			DoUpdates: clause.AssignmentColumns([]string{"daily", "weekly", "monthly", "yearly", "updated_at"}),
		}).Create(&statistics[i]).Error; err != nil {
			log.Printf("統計キャッシュの保存に失敗: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "統計の保存に失敗しました"})
			return
		}
	}

	c.JSON(http.StatusOK, statistics)
}

// WarningsResponse 働きすぎ・年収の壁の注意喚起
type WarningsResponse struct {
	WeeklyHours  *payroll.HoursWarning  `json:"weekly_hours"`  // nil なら警告なし
	YearlyIncome *payroll.IncomeWarning `json:"yearly_income"` // nil なら警告なし
}

// GetWarnings 注意喚起の取得
// @Summary 働きすぎ・年収の壁の注意喚起
// @Description 今週の労働時間が35時間以上、または年収が103万円・130万円の壁に近いときに警告を返す。
// @Description 警告は表示するだけで何も保存しない
// @Tags 統計
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=WarningsResponse} "取得成功"
// @Failure 401 {object} Response "未認証"
// @Router /api/v1/warnings [get]
func (h *StatisticsHandler) GetWarnings(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var shifts []models.Shift
	if err := database.DB.Where("user_id = ?", userID).Find(&shifts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "取得に失敗しました"))
		return
	}
	records := toRecords(shifts)

	today := time.Now().Format("2006-01-02")
	weekKey, _ := payroll.BucketKey(payroll.Weekly, today)
	yearKey := fmt.Sprintf("%d", time.Now().Year())

	weekly := payroll.Aggregate(payroll.Weekly, records)
	yearly := payroll.Aggregate(payroll.Yearly, records)

	resp := WarningsResponse{
		WeeklyHours:  payroll.EvaluateWeeklyHours(weekly[weekKey].Hours),
		YearlyIncome: payroll.EvaluateYearlyIncome(yearly[yearKey].Income),
	}
	Success(c, resp)
}

// GoalPieResponse 目標達成円グラフのデータ
type GoalPieResponse struct {
	Year   string             `json:"year"`
	Target int                `json:"target"` // 目標年収（円）
	Total  int                `json:"total"`  // 実績合計（円）
	Slices []payroll.PieSlice `json:"slices"`
}

// GetGoalPie 目標達成円グラフの取得
// @Summary 目標達成円グラフの取得
// @Description 年収目標に対する勤務先ごとの達成割合と未達成分を円グラフ用データとして返す
// @Tags 統計
// @Produce json
// @Security BearerAuth
// @Param year query string false "年 (YYYY)。省略時は今年"
// @Success 200 {object} Response{data=GoalPieResponse} "取得成功"
// @Failure 401 {object} Response "未認証"
// @Failure 404 {object} Response "年収目標が未設定"
// @Router /api/v1/statistics/goal-pie [get]
func (h *StatisticsHandler) GetGoalPie(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	year := c.Query("year")
	if year == "" {
		year = fmt.Sprintf("%d", time.Now().Year())
	}

	var goal models.IncomeGoal
	if err := database.DB.Where("user_id = ? AND year = ?", userID, year).First(&goal).Error; err != nil {
		NotFound(c, "年収目標が設定されていません")
		return
	}

	var shifts []models.Shift
	if err := database.DB.Where("user_id = ?", userID).Find(&shifts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "取得に失敗しました"))
		return
	}

	// 勤務先ごとの年間収入
	incomes := make(map[string]int)
	total := 0
	for _, s := range shifts {
		key, ok := payroll.BucketKey(payroll.Yearly, s.EndDate)
		if !ok || key != year {
			continue
		}
		incomes[s.Job] += s.Income
		total += s.Income
	}

	Success(c, GoalPieResponse{
		Year:   year,
		Target: goal.IncomeGoal,
		Total:  total,
		Slices: payroll.GoalPie(goal.IncomeGoal, incomes),
	})
}
