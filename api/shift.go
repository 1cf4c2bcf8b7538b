package api

import (
	"errors"
	"strconv"
	"time"

	"baito/database"
	"baito/middleware"
	"baito/models"
	"baito/payroll"

	"github.com/gin-gonic/gin"
)

// ShiftHandler シフト（勤務記録）処理
type ShiftHandler struct{}

// NewShiftHandler シフト処理を作成
func NewShiftHandler() *ShiftHandler {
	return &ShiftHandler{}
}

// CreateShiftRequest シフト登録リクエスト
// start_time / end_time / hours のうち2つを指定すると残りは自動で求める
type CreateShiftRequest struct {
	Job       string  `json:"job" binding:"required" example:"コンビニ"`
	StartTime string  `json:"start_time" binding:"omitempty" example:"2025-03-14 09:00"`
	EndTime   string  `json:"end_time" binding:"omitempty" example:"2025-03-14 13:00"`
	Hours     float64 `json:"hours" binding:"omitempty,gt=0" example:"4"`
}

// ShiftListRequest シフト一覧リクエスト
type ShiftListRequest struct {
	Page      int    `form:"page" example:"1"`
	PageSize  int    `form:"page_size" example:"10"`
	Job       string `form:"job" example:"コンビニ"`
	StartDate string `form:"start_date" example:"2025-03-01"`
	EndDate   string `form:"end_date" example:"2025-03-31"`
}

// シフト時刻として受け付ける形式（datetime-local 形式も許す）
var shiftTimeLayouts = []string{"2006-01-02 15:04", "2006-01-02T15:04"}

func parseShiftTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range shiftTimeLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Create シフトの登録
// @Summary シフトの登録
// @Description 開始時刻・終了時刻・実働時間のうち2つからシフトを登録する。実働時間と給料は登録時に計算して固定する
// @Tags シフト
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateShiftRequest true "シフト情報"
// @Success 200 {object} Response{data=models.Shift} "登録成功"
// @Failure 400 {object} Response "パラメータ不正"
// @Failure 401 {object} Response "未認証"
// @Router /api/v1/shifts [post]
func (h *ShiftHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "パラメータが不正です: "+err.Error())
		return
	}

	// 勤務先の時給設定を引く
	var jobRate models.JobRate
	if err := database.DB.Where("user_id = ? AND job = ?", userID, req.Job).First(&jobRate).Error; err != nil {
		BadRequest(c, "勤務先が登録されていません。先に勤務先と時給を設定してください")
		return
	}

	// 2つの入力から勤務時間を完成させる
	given, err := h.buildGiven(req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	iv, err := given.Complete()
	if err != nil {
		switch {
		case errors.Is(err, payroll.ErrIncompleteInput):
			BadRequest(c, "開始時刻・終了時刻・実働時間のうち2つを入力してください")
		case errors.Is(err, payroll.ErrInvalidInterval):
			BadRequest(c, "終了時刻は開始時刻より後にしてください")
		case errors.Is(err, payroll.ErrIntervalTooLong):
			BadRequest(c, "24時間を超えるシフトは登録できません")
		default:
			BadRequest(c, err.Error())
		}
		return
	}

	income, err := payroll.CalcIncome(iv.Start, iv.End, jobRate.Rate, jobRate.NightRate)
	if err != nil {
		BadRequest(c, "給料の計算に失敗しました: "+err.Error())
		return
	}

	shift := models.Shift{
		UserID:    userID,
		Job:       req.Job,
		StartDate: iv.Start.Format("2006-01-02"),
		EndDate:   iv.End.Format("2006-01-02"),
		StartTime: iv.Start,
		EndTime:   iv.End,
		Hours:     iv.Hours(),
		Rate:      jobRate.Rate,
		NightRate: jobRate.NightRate,
		Income:    income,
	}
	if err := database.DB.Create(&shift).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "登録に失敗しました"))
		return
	}
	SuccessWithMessage(c, "登録しました", shift)
}

// buildGiven リクエストの時刻入力を payroll.Given に変換する
func (h *ShiftHandler) buildGiven(req CreateShiftRequest) (payroll.Given, error) {
	var (
		start, end time.Time
		err        error
	)
	hasStart := req.StartTime != ""
	hasEnd := req.EndTime != ""
	hasHours := req.Hours > 0

	if hasStart {
		start, err = parseShiftTime(req.StartTime)
		if err != nil {
			return payroll.Given{}, errors.New("開始時刻の形式が不正です。例: 2025-03-14 09:00")
		}
	}
	if hasEnd {
		end, err = parseShiftTime(req.EndTime)
		if err != nil {
			return payroll.Given{}, errors.New("終了時刻の形式が不正です。例: 2025-03-14 13:00")
		}
	}

	switch {
	case hasStart && hasEnd:
		return payroll.StartEnd(start, end), nil
	case hasStart && hasHours:
		return payroll.StartHours(start, req.Hours), nil
	case hasEnd && hasHours:
		return payroll.EndHours(end, req.Hours), nil
	}
	return payroll.Given{}, errors.New("開始時刻・終了時刻・実働時間のうち2つを入力してください")
}

// List シフトの一覧
// @Summary シフトの一覧取得
// @Description ログイン中のユーザーのシフト一覧を返す。勤務先・終了日の範囲で絞り込める
// @Tags シフト
// @Produce json
// @Security BearerAuth
// @Param page query int false "ページ番号" default(1)
// @Param page_size query int false "1ページの件数" default(10)
// @Param job query string false "勤務先で絞り込み"
// @Param start_date query string false "終了日の下限 (2025-03-01)"
// @Param end_date query string false "終了日の上限 (2025-03-31)"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Shift}} "取得成功"
// @Failure 401 {object} Response "未認証"
// @Router /api/v1/shifts [get]
func (h *ShiftHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ShiftListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "パラメータが不正です: "+err.Error())
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Shift{}).Where("user_id = ?", userID)
	if req.Job != "" {
		query = query.Where("job = ?", req.Job)
	}
	if req.StartDate != "" {
		query = query.Where("end_date >= ?", req.StartDate)
	}
	if req.EndDate != "" {
		query = query.Where("end_date <= ?", req.EndDate)
	}

	var total int64
	query.Count(&total)
	var list []models.Shift
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("start_time DESC").Offset(offset).Limit(req.PageSize).Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "取得に失敗しました"))
		return
	}
	Success(c, PageResponse{Total: total, Page: req.Page, PageSize: req.PageSize, List: list})
}

// Get シフトの取得
// @Summary シフトの取得
// @Description IDを指定してシフトの詳細を返す
// @Tags シフト
// @Produce json
// @Security BearerAuth
// @Param id path int true "シフトID"
// @Success 200 {object} Response{data=models.Shift} "取得成功"
// @Failure 401 {object} Response "未認証"
// @Failure 404 {object} Response "シフトが存在しない"
// @Router /api/v1/shifts/{id} [get]
func (h *ShiftHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "IDが不正です")
		return
	}

	var shift models.Shift
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&shift).Error; err != nil {
		NotFound(c, "シフトが存在しません")
		return
	}
	Success(c, shift)
}

// Delete シフトの削除
// @Summary シフトの削除
// @Description 指定したシフトを削除する
// @Tags シフト
// @Produce json
// @Security BearerAuth
// @Param id path int true "シフトID"
// @Success 200 {object} Response "削除成功"
// @Failure 401 {object} Response "未認証"
// @Failure 404 {object} Response "シフトが存在しない"
// @Router /api/v1/shifts/{id} [delete]
func (h *ShiftHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "IDが不正です")
		return
	}

	var shift models.Shift
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&shift).Error; err != nil {
		NotFound(c, "シフトが存在しません")
		return
	}
	if err := database.DB.Delete(&shift).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "削除に失敗しました"))
		return
	}
	SuccessWithMessage(c, "削除しました", nil)
}
