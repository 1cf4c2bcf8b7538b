package api

import (
	"log"
	"net/http"

	"baito/config"
	"baito/database"
	"baito/middleware"
	"baito/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler 認証処理
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler 認証処理を作成
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// SignupRequest サインアップリクエスト
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"password123"`
}

// LoginRequest ログインリクエスト
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse ログインレスポンス
type LoginResponse struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int         `json:"expires_in"`
}

// 初期登録する勤務先と時給（未設定のまま使い始められるようにする）
var defaultJobRates = []struct {
	Job  string
	Rate int
}{
	{"コンビニ", 1200},
	{"カフェ", 1300},
}

// Signup サインアップ
// @Summary サインアップ
// @Description 新しいユーザーを登録する
// @Tags 認証
// @Accept json
// @Produce json
// @Param request body SignupRequest true "登録情報"
// @Success 200 {object} map[string]interface{} "登録成功"
// @Failure 400 {object} map[string]interface{} "パラメータ不正またはメールアドレス重複"
// @Failure 500 {object} map[string]interface{} "サーバーエラー"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "メールアドレスとパスワードを入力してください"})
		return
	}

	// メールアドレスの重複を確認
	var existingUser models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "このメールアドレスは既に登録されています"})
		return
	}

	// パスワードをハッシュ化
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "パスワードの暗号化に失敗しました"})
		return
	}

	user := models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Printf("ユーザー作成に失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "ユーザー作成に失敗しました"})
		return
	}

	// デフォルトの勤務先を登録しておく
	for _, d := range defaultJobRates {
		jr := models.JobRate{
			UserID:    user.ID,
			Job:       d.Job,
			Rate:      d.Rate,
			NightRate: models.DefaultNightRate(d.Rate),
		}
		if err := database.DB.Create(&jr).Error; err != nil {
			log.Printf("デフォルト勤務先の登録に失敗: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"user": user}})
}

// Login ログイン
// @Summary ログイン
// @Description メールアドレスとパスワードで認証し、アクセストークンを発行する
// @Tags 認証
// @Accept json
// @Produce json
// @Param request body LoginRequest true "ログイン情報"
// @Success 200 {object} LoginResponse "ログイン成功"
// @Failure 400 {object} map[string]interface{} "パラメータ不正"
// @Failure 401 {object} map[string]interface{} "認証失敗"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "メールアドレスとパスワードを入力してください"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "メールアドレスまたはパスワードが違います"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "メールアドレスまたはパスワードが違います"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.cfg.JWT.ExpireTime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "トークンの生成に失敗しました"})
		return
	}

	expiresIn := int(h.cfg.JWT.ExpireTime.Seconds())

	// アクセストークンをクッキーにも保存する（ページガード用）
	secure := h.cfg.Server.Mode == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, expiresIn, "/", "", secure, true)

	c.JSON(http.StatusOK, LoginResponse{
		User:        user,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	})
}

// Logout ログアウト
// @Summary ログアウト
// @Description セッションクッキーを削除する
// @Tags 認証
// @Produce json
// @Success 200 {object} map[string]interface{} "ログアウト成功"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	secure := h.cfg.Server.Mode == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	// クッキーを空にして即時失効させる
	c.SetCookie("token", "", -1, "/", "", secure, true)
	c.JSON(http.StatusOK, gin.H{"message": "ログアウトしました"})
}

// GetProfile ログイン中のユーザー情報を取得
// @Summary ユーザー情報の取得
// @Description ログイン中のユーザーの情報を返す
// @Tags 認証
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "取得成功"
// @Failure 401 {object} Response "未認証"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "ユーザーが存在しません")
		return
	}

	Success(c, user)
}

// ChangePasswordRequest パスワード変更リクエスト
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required" example:"oldpassword123"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72" example:"newpassword123"`
}

// ChangePassword パスワード変更
// @Summary パスワード変更
// @Description ログイン中のユーザーのパスワードを変更する
// @Tags 認証
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "パスワード情報"
// @Success 200 {object} Response "変更成功"
// @Failure 400 {object} Response "パラメータ不正"
// @Failure 401 {object} Response "現在のパスワードが違う"
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "パラメータが不正です: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "ユーザーが存在しません")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		Unauthorized(c, "現在のパスワードが違います")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "パスワードの暗号化に失敗しました")
		return
	}

	if err := database.DB.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		InternalError(c, "パスワードの更新に失敗しました")
		return
	}

	SuccessWithMessage(c, "パスワードを変更しました", nil)
}
