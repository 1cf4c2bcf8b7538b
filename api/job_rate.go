package api

import (
	"strconv"
	"strings"

	"baito/database"
	"baito/middleware"
	"baito/models"

	"github.com/gin-gonic/gin"
)

// JobRateHandler 勤務先と時給の設定処理
type JobRateHandler struct{}

// NewJobRateHandler 勤務先設定処理を作成
func NewJobRateHandler() *JobRateHandler {
	return &JobRateHandler{}
}

// CreateJobRateRequest 勤務先登録リクエスト
type CreateJobRateRequest struct {
	Job       string `json:"job" binding:"required,min=1,max=100" example:"コンビニ"`
	Rate      int    `json:"rate" binding:"required,gt=0" example:"1200"`
	NightRate int    `json:"night_rate" binding:"omitempty,gt=0" example:"1500"` // 省略時は時給の25%増し
}

// UpdateJobRateRequest 勤務先更新リクエスト
type UpdateJobRateRequest struct {
	Job       string `json:"job" binding:"omitempty,min=1,max=100"`
	Rate      int    `json:"rate" binding:"omitempty,gt=0"`
	NightRate int    `json:"night_rate" binding:"omitempty,gt=0"`
}

// List 勤務先の一覧
// @Summary 勤務先の一覧取得
// @Description ログイン中のユーザーの勤務先と時給の一覧を返す
// @Tags 勤務先
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.JobRate} "取得成功"
// @Failure 401 {object} Response "未認証"
// @Router /api/v1/job-rates [get]
func (h *JobRateHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var list []models.JobRate
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "取得に失敗しました"))
		return
	}
	Success(c, list)
}

// Create 勤務先の登録
// @Summary 勤務先の登録
// @Description 勤務先と時給を登録する。深夜時給を省略すると時給の25%増し（四捨五入）になる
// @Tags 勤務先
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateJobRateRequest true "勤務先情報"
// @Success 200 {object} Response{data=models.JobRate} "登録成功"
// @Failure 400 {object} Response "パラメータ不正または勤務先名の重複"
// @Failure 401 {object} Response "未認証"
// @Router /api/v1/job-rates [post]
func (h *JobRateHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateJobRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "勤務先と時給を入力してください")
		return
	}
	req.Job = strings.TrimSpace(req.Job)
	if req.Job == "" {
		BadRequest(c, "勤務先と時給を入力してください")
		return
	}

	// 同じ勤務先名は登録できない
	var existing models.JobRate
	if err := database.DB.Where("user_id = ? AND job = ?", userID, req.Job).First(&existing).Error; err == nil {
		BadRequest(c, "この勤務先は既に登録されています")
		return
	}

	nightRate := req.NightRate
	if nightRate == 0 {
		nightRate = models.DefaultNightRate(req.Rate)
	}

	jr := models.JobRate{
		UserID:    userID,
		Job:       req.Job,
		Rate:      req.Rate,
		NightRate: nightRate,
	}
	if err := database.DB.Create(&jr).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "登録に失敗しました"))
		return
	}
	SuccessWithMessage(c, "登録しました", jr)
}

// Update 勤務先の更新
// @Summary 勤務先の更新
// @Description 勤務先名・時給・深夜時給を更新する。時給だけ変えた場合は深夜時給を25%増しで再計算する
// @Tags 勤務先
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "勤務先ID"
// @Param request body UpdateJobRateRequest true "更新する勤務先情報"
// @Success 200 {object} Response{data=models.JobRate} "更新成功"
// @Failure 400 {object} Response "パラメータ不正"
// @Failure 401 {object} Response "未認証"
// @Failure 404 {object} Response "勤務先が存在しない"
// @Router /api/v1/job-rates/{id} [put]
func (h *JobRateHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "IDが不正です")
		return
	}

	var jr models.JobRate
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&jr).Error; err != nil {
		NotFound(c, "勤務先が存在しません")
		return
	}

	var req UpdateJobRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "パラメータが不正です: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Job != "" {
		updates["job"] = strings.TrimSpace(req.Job)
	}
	if req.Rate > 0 {
		updates["rate"] = req.Rate
		// 深夜時給の指定がなければ時給から再計算する
		if req.NightRate == 0 {
			updates["night_rate"] = models.DefaultNightRate(req.Rate)
		}
	}
	if req.NightRate > 0 {
		updates["night_rate"] = req.NightRate
	}
	if len(updates) == 0 {
		BadRequest(c, "更新する項目がありません")
		return
	}

	if err := database.DB.Model(&jr).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新に失敗しました"))
		return
	}
	var updated models.JobRate
	database.DB.First(&updated, jr.ID)
	SuccessWithMessage(c, "更新しました", updated)
}

// Delete 勤務先の削除
// @Summary 勤務先の削除
// @Description 指定した勤務先を削除する。登録済みのシフトには影響しない
// @Tags 勤務先
// @Produce json
// @Security BearerAuth
// @Param id path int true "勤務先ID"
// @Success 200 {object} Response "削除成功"
// @Failure 401 {object} Response "未認証"
// @Failure 404 {object} Response "勤務先が存在しない"
// @Router /api/v1/job-rates/{id} [delete]
func (h *JobRateHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "IDが不正です")
		return
	}

	var jr models.JobRate
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&jr).Error; err != nil {
		NotFound(c, "勤務先が存在しません")
		return
	}
	if err := database.DB.Delete(&jr).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "削除に失敗しました"))
		return
	}
	SuccessWithMessage(c, "削除しました", nil)
}
