package main

import (
	"flag"
	"log"
	"strings"

	"baito/config"
	"baito/database"
	"baito/middleware"
	"baito/router"
)

// @title バイト収入管理 API
// @version 1.0
// @description アルバイトのシフト記録から収入を自動計算し、年収の壁や働きすぎを可視化する API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部設定ファイルのパス（任意）")
	flag.StringVar(&configFile, "c", "", "外部設定ファイルのパス（省略形）")
	flag.StringVar(&port, "port", "", "待受ポート（例: 8080 または :8080）")
	flag.StringVar(&port, "p", "", "待受ポート（省略形）")
	flag.BoolVar(&showVersion, "version", false, "バージョン情報を表示")
	flag.BoolVar(&showVersion, "v", false, "バージョン情報を表示（省略形）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("バイト収入管理 v1.0.0")
		return
	}

	// 設定を読み込む（内蔵デフォルト + 外部設定の上書き）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	// コマンドライン引数でポートを上書き
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("コマンドラインでポートを指定: %s", port)
	}

	config.PrintConfig()

	// データベースを初期化
	if err := database.Init(cfg); err != nil {
		log.Fatalf("データベースの初期化に失敗: %v", err)
	}

	// JWT を初期化
	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  バイト収入管理を起動しました")
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:      http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}
