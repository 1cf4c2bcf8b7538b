package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config アプリケーション設定
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Email    EmailConfig    `mapstructure:"email"`
}

// ServerConfig サーバー設定
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig データベース設定
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// JWTConfig JWT設定
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// EmailConfig メール設定
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

var (
	// GlobalConfig グローバル設定インスタンス
	GlobalConfig *Config
)

// LoadConfig 設定を読み込む
// 優先順位: 外部設定ファイル > 組み込みデフォルト設定
// configPath: 外部設定ファイルのパス（省略可）
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. まず組み込みのデフォルト設定を読み込む
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("組み込み設定の読み込みに失敗: %w", err)
	}
	log.Println("組み込みデフォルト設定を読み込みました")

	// 2. 外部設定ファイルがあれば上書きマージする
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("警告: 指定された設定ファイル %s を読み込めません: %v", configPath, err)
		} else {
			log.Printf("外部設定ファイルをマージしました: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/baito")
		externalViper.AddConfigPath("$HOME/.baito")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("警告: 外部設定のマージに失敗: %v", err)
			} else {
				log.Printf("外部設定ファイルをマージしました: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. 環境変数による上書き（省略可）
	v.SetEnvPrefix("BAITO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定の解析に失敗: %w", err)
	}

	// JWT の有効期限を設定
	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 24
	}
	cfg.JWT.ExpireTime = time.Duration(cfg.JWT.ExpireHours) * time.Hour

	GlobalConfig = &cfg

	return &cfg, nil
}

// MustLoadConfig 設定を読み込み、失敗したら panic する
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("設定の読み込みに失敗: %v", err))
	}
	return cfg
}

// GetConfig グローバル設定を取得する
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("設定が初期化されていません。先に LoadConfig を呼んでください")
	}
	return GlobalConfig
}

// SafeErrorMessage release モードではエラー詳細をクライアントに返さず fallback を返す
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}

// PrintConfig 現在の設定を表示する（機密情報は出さない）
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("現在の設定:")
	log.Printf("  サーバー: %s (モード: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  データベース: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  メールサービス: %v", GlobalConfig.Email.Enabled)
}
