package api

import (
	"fmt"
	"time"

	"baito/database"
	"baito/middleware"
	"baito/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// IncomeGoalHandler 年収目標処理
type IncomeGoalHandler struct{}

// NewIncomeGoalHandler 年収目標処理を作成
func NewIncomeGoalHandler() *IncomeGoalHandler {
	return &IncomeGoalHandler{}
}

// SaveIncomeGoalRequest 年収目標の保存リクエスト
type SaveIncomeGoalRequest struct {
	Year       string `json:"year" binding:"required,len=4" example:"2025"`
	IncomeGoal int    `json:"income_goal" binding:"omitempty,gte=0" example:"1030000"` // 円。0 は目標の削除
}

// Get 年収目標の取得
// @Summary 年収目標の取得
// @Description 指定した年の年収目標を返す。未設定なら0を返す
// @Tags 年収目標
// @Produce json
// @Security BearerAuth
// @Param year query string false "年 (YYYY)。省略時は今年"
// @Success 200 {object} Response{data=models.IncomeGoal} "取得成功"
// @Failure 401 {object} Response "未認証"
// @Router /api/v1/income-goals [get]
func (h *IncomeGoalHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	year := c.Query("year")
	if year == "" {
		year = fmt.Sprintf("%d", time.Now().Year())
	}

	var goal models.IncomeGoal
	if err := database.DB.Where("user_id = ? AND year = ?", userID, year).First(&goal).Error; err != nil {
		// 未設定は目標0として返す
		Success(c, models.IncomeGoal{UserID: userID, Year: year, IncomeGoal: 0})
		return
	}
	Success(c, goal)
}

// Save 年収目標の保存
// @Summary 年収目標の保存
// @Description 年ごとの年収目標を保存する（同じ年があれば上書き）。0 を指定すると目標を削除する
// @Tags 年収目標
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveIncomeGoalRequest true "年収目標"
// @Success 200 {object} Response{data=models.IncomeGoal} "保存成功"
// @Failure 400 {object} Response "パラメータ不正"
// @Failure 401 {object} Response "未認証"
// @Router /api/v1/income-goals [put]
func (h *IncomeGoalHandler) Save(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req SaveIncomeGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "パラメータが不正です: "+err.Error())
		return
	}

	// 目標0はその年の目標を消す
	if req.IncomeGoal == 0 {
		if err := database.DB.Where("user_id = ? AND year = ?", userID, req.Year).
			Delete(&models.IncomeGoal{}).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "保存に失敗しました"))
			return
		}
		SuccessWithMessage(c, "保存しました", nil)
		return
	}

	goal := models.IncomeGoal{
		UserID:     userID,
		Year:       req.Year,
		IncomeGoal: req.IncomeGoal,
	}
	// (user_id, year) をキーに upsert する
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"income_goal", "updated_at"}),
	}).Create(&goal).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "保存に失敗しました"))
		return
	}
	SuccessWithMessage(c, "保存しました", goal)
}
