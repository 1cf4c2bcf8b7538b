package database

import (
	"fmt"
	"log"

	"baito/config"
	"baito/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init データベース接続を初期化する
func Init(cfg *config.Config) error {
	// MySQL の DSN を組み立てる
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("データベース接続に失敗: %w", err)
	}

	// コネクションプールの設定
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// テーブルの自動マイグレーション
	if err := DB.AutoMigrate(
		&models.User{},
		&models.JobRate{},
		&models.Shift{},
		&models.IncomeGoal{},
		&models.JobStatistics{},
		&models.PasswordReset{},
	); err != nil {
		return err
	}

	log.Println("データベースの初期化に成功しました")
	return nil
}

// GetDB データベース接続を取得する
func GetDB() *gorm.DB {
	return DB
}
