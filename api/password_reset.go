package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"baito/config"
	"baito/database"
	"baito/models"
	"baito/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// PasswordResetHandler パスワード再設定処理
type PasswordResetHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewPasswordResetHandler パスワード再設定処理を作成
func NewPasswordResetHandler(cfg *config.Config) *PasswordResetHandler {
	return &PasswordResetHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// ForgotPasswordRequest パスワード再設定メールのリクエスト
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"test@example.com"`
}

// ForgotPassword パスワード再設定メールを送信
// @Summary パスワード再設定メールの送信
// @Description 登録済みメールアドレス宛に再設定リンクを送る。未登録でも成功として返す
// @Tags 認証
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "メールアドレス"
// @Success 200 {object} map[string]interface{} "送信成功"
// @Failure 400 {object} map[string]interface{} "パラメータ不正"
// @Failure 429 {object} map[string]interface{} "リクエスト過多"
// @Router /api/auth/forgotpassword [post]
func (h *PasswordResetHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "メールアドレスが必要です"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// アカウントの有無を漏らさないため、未登録でも成功扱いにする
		c.JSON(http.StatusOK, gin.H{"message": "パスワードリセット用のメールを送信しました"})
		return
	}

	// 有効な未使用トークンが直近に発行済みなら拒否（連打防止）
	var existing models.PasswordReset
	if err := database.DB.Where("user_id = ? AND used = ? AND expires_at > ?",
		user.ID, false, time.Now()).First(&existing).Error; err == nil {
		if time.Since(existing.CreatedAt) < time.Minute {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message": "リクエストが多すぎます。しばらくしてからやり直してください",
			})
			return
		}
		database.DB.Model(&existing).Update("used", true)
	}

	token, err := models.GenerateToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "トークンの生成に失敗しました"})
		return
	}

	reset := models.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		Email:     req.Email,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
	if err := database.DB.Create(&reset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "再設定トークンの保存に失敗しました"})
		return
	}

	resetLink := fmt.Sprintf("%s/forgotpassword/reset?token=%s", h.cfg.Server.BaseURL, token)
	if err := h.emailService.SendPasswordResetEmail(req.Email, resetLink); err != nil {
		database.DB.Delete(&reset)
		log.Printf("パスワード再設定メールの送信に失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "メールの送信に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "パスワードリセット用のメールを送信しました"})
}

// VerifyResetToken 再設定トークンの検証
// @Summary 再設定トークンの検証
// @Description 再設定ページを開く前にトークンが有効かどうかを確認する
// @Tags 認証
// @Produce json
// @Param token query string true "再設定トークン"
// @Success 200 {object} map[string]interface{} "トークン有効"
// @Failure 400 {object} map[string]interface{} "トークン無効または期限切れ"
// @Router /api/auth/forgotpassword/verify [get]
func (h *PasswordResetHandler) VerifyResetToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "トークンが必要です"})
		return
	}

	var reset models.PasswordReset
	if err := database.DB.Where("token = ?", token).First(&reset).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "トークンが不正です"})
		return
	}
	if !reset.IsValid() {
		if reset.Used {
			c.JSON(http.StatusBadRequest, gin.H{"error": "トークンは既に使用されています"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "トークンの有効期限が切れています"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "トークンは有効です", "email": reset.Email})
}

// ResetPasswordRequest パスワード再設定リクエスト
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72" example:"newpassword123"`
}

// ResetPassword パスワードの再設定
// @Summary パスワードの再設定
// @Description メールのリンクに含まれるトークンで新しいパスワードを設定する
// @Tags 認証
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "再設定情報"
// @Success 200 {object} map[string]interface{} "再設定成功"
// @Failure 400 {object} map[string]interface{} "トークン無効または期限切れ"
// @Failure 500 {object} map[string]interface{} "サーバーエラー"
// @Router /api/auth/forgotpassword/reset [post]
func (h *PasswordResetHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "パラメータが不正です"})
		return
	}

	var reset models.PasswordReset
	if err := database.DB.Where("token = ?", req.Token).First(&reset).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "トークンが不正です"})
		return
	}
	if !reset.IsValid() {
		if reset.Used {
			c.JSON(http.StatusBadRequest, gin.H{"error": "トークンは既に使用されています"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "トークンの有効期限が切れています"})
		}
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "パスワードの暗号化に失敗しました"})
		return
	}

	if err := database.DB.Model(&models.User{}).
		Where("id = ?", reset.UserID).
		Update("password", string(hashedPassword)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "パスワードの更新に失敗しました"})
		return
	}

	// 使用済みにし、同一ユーザーの未使用トークンもまとめて失効させる
	database.DB.Model(&reset).Update("used", true)
	database.DB.Model(&models.PasswordReset{}).
		Where("user_id = ? AND used = ?", reset.UserID, false).
		Update("used", true)

	c.JSON(http.StatusOK, gin.H{"message": "パスワードを再設定しました。新しいパスワードでログインしてください"})
}
