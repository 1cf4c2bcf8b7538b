package router

import (
	"time"

	"baito/api"
	"baito/config"
	_ "baito/docs"
	"baito/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter ルーティングを設定
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 実行モードを設定
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS ミドルウェア
	r.Use(CORSMiddleware())

	// Swagger ドキュメント
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authHandler := api.NewAuthHandler(cfg)
	passwordResetHandler := api.NewPasswordResetHandler(cfg)
	statisticsHandler := api.NewStatisticsHandler()

	// 認証関連（ログイン不要）
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)
		auth.POST("/logout", authHandler.Logout)

		// パスワード再設定
		auth.POST("/forgotpassword", passwordResetHandler.ForgotPassword)
		auth.GET("/forgotpassword/verify", passwordResetHandler.VerifyResetToken)
		auth.POST("/forgotpassword/reset", passwordResetHandler.ResetPassword)
	}

	// 収入統計（要ログイン）
	r.GET("/api/statistics", middleware.JWTAuth(), statisticsHandler.GetStatistics)

	// API v1 ルートグループ（要 JWT 認証）
	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTAuth())
	{
		// ユーザー関連
		v1.GET("/auth/profile", authHandler.GetProfile)
		v1.PUT("/auth/password", authHandler.ChangePassword)

		// 勤務先と時給
		jobRateHandler := api.NewJobRateHandler()
		jobRates := v1.Group("/job-rates")
		{
			jobRates.GET("", jobRateHandler.List)
			jobRates.POST("", jobRateHandler.Create)
			jobRates.PUT("/:id", jobRateHandler.Update)
			jobRates.DELETE("/:id", jobRateHandler.Delete)
		}

		// シフト記録
		shiftHandler := api.NewShiftHandler()
		shifts := v1.Group("/shifts")
		{
			shifts.POST("", shiftHandler.Create)
			shifts.GET("", shiftHandler.List)
			shifts.GET("/:id", shiftHandler.Get)
			shifts.DELETE("/:id", shiftHandler.Delete)
		}

		// 年収目標
		incomeGoalHandler := api.NewIncomeGoalHandler()
		goals := v1.Group("/income-goals")
		{
			goals.GET("", incomeGoalHandler.Get)
			goals.PUT("", incomeGoalHandler.Save)
		}

		// 注意喚起と円グラフ
		v1.GET("/warnings", statisticsHandler.GetWarnings)
		v1.GET("/statistics/goal-pie", statisticsHandler.GetGoalPie)

		// エクスポート
		exportHandler := api.NewExportHandler()
		export := v1.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	// ヘルスチェック
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS ミドルウェア
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
