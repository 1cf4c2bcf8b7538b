package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"baito/database"
	"baito/middleware"
	"baito/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler シフト記録のエクスポート処理
type ExportHandler struct{}

// NewExportHandler エクスポート処理を作成
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// queryShiftsForExport 期間内のシフトを取得する
func queryShiftsForExport(c *gin.Context, userID uint) ([]models.Shift, string, string, bool) {
	startDateStr := c.Query("start_date")
	endDateStr := c.Query("end_date")

	if startDateStr == "" || endDateStr == "" {
		BadRequest(c, "開始日と終了日を指定してください")
		return nil, "", "", false
	}

	if _, err := time.ParseInLocation("2006-01-02", startDateStr, time.Local); err != nil {
		BadRequest(c, "開始日の形式が不正です（例: 2025-01-01）")
		return nil, "", "", false
	}
	if _, err := time.ParseInLocation("2006-01-02", endDateStr, time.Local); err != nil {
		BadRequest(c, "終了日の形式が不正です（例: 2025-12-31）")
		return nil, "", "", false
	}

	var shifts []models.Shift
	if err := database.DB.Where("user_id = ? AND end_date >= ? AND end_date <= ?", userID, startDateStr, endDateStr).
		Order("start_time ASC").
		Find(&shifts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "取得に失敗しました"))
		return nil, "", "", false
	}
	return shifts, startDateStr, endDateStr, true
}

// ExportCSV シフト記録を CSV でエクスポート
// @Summary シフト記録のエクスポート（CSV）
// @Description 期間を指定してシフト記録を CSV ファイルとして出力する
// @Tags エクスポート
// @Produce text/csv
// @Security BearerAuth
// @Param start_date query string true "開始日 (2025-01-01)"
// @Param end_date query string true "終了日 (2025-12-31)"
// @Success 200 {file} file "CSV ファイル"
// @Failure 400 {object} Response "リクエストが不正"
// @Failure 401 {object} Response "未認証"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	shifts, startDateStr, endDateStr, ok := queryShiftsForExport(c, userID)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// Excel で日本語を正しく表示するための BOM
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "勤務先", "開始", "終了", "労働時間", "時給", "深夜時給", "収入"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "CSV の生成に失敗しました")
		return
	}

	for _, shift := range shifts {
		row := []string{
			fmt.Sprintf("%d", shift.ID),
			shift.Job,
			shift.StartTime.Format("2006-01-02 15:04"),
			shift.EndTime.Format("2006-01-02 15:04"),
			fmt.Sprintf("%.2f", shift.Hours),
			fmt.Sprintf("%d", shift.Rate),
			fmt.Sprintf("%d", shift.NightRate),
			fmt.Sprintf("%d", shift.Income),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "CSV の生成に失敗しました")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "CSV の生成に失敗しました")
		return
	}

	filename := fmt.Sprintf("shifts_%s_%s.csv", startDateStr, endDateStr)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel シフト記録を Excel でエクスポート
// @Summary シフト記録のエクスポート（Excel）
// @Description 期間を指定してシフト記録を xlsx ファイルとして出力する
// @Tags エクスポート
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param start_date query string true "開始日 (2025-01-01)"
// @Param end_date query string true "終了日 (2025-12-31)"
// @Success 200 {file} file "Excel ファイル"
// @Failure 400 {object} Response "リクエストが不正"
// @Failure 401 {object} Response "未認証"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	shifts, startDateStr, endDateStr, ok := queryShiftsForExport(c, userID)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "シフト記録"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 16)
	f.SetColWidth(sheetName, "C", "D", 18)
	f.SetColWidth(sheetName, "E", "H", 12)

	headers := []string{"ID", "勤務先", "開始", "終了", "労働時間", "時給", "深夜時給", "収入"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var totalIncome int
	var totalHours float64
	for i, shift := range shifts {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), shift.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), shift.Job)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), shift.StartTime.Format("2006-01-02 15:04"))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), shift.EndTime.Format("2006-01-02 15:04"))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), shift.Hours)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), shift.Rate)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), shift.NightRate)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), shift.Income)

		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), dataStyle)
		totalIncome += shift.Income
		totalHours += shift.Hours
	}

	// 合計行
	summaryRow := len(shifts) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合計")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("D%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), totalHours)
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", summaryRow), fmt.Sprintf("全 %d 件", len(shifts)))
	f.MergeCell(sheetName, fmt.Sprintf("F%d", summaryRow), fmt.Sprintf("G%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("H%d", summaryRow), totalIncome)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("H%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("シフト記録_%s_%s.xlsx", startDateStr, endDateStr)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "Excel の生成に失敗しました")
		return
	}
}
