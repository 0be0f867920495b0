package main

import (
	"github.com/sirupsen/logrus"

	"github.com/yakyulab/spraychart-backend-go/internal/api"
	"github.com/yakyulab/spraychart-backend-go/internal/config"
	"github.com/yakyulab/spraychart-backend-go/internal/database"
	"github.com/yakyulab/spraychart-backend-go/internal/dataset"
	"github.com/yakyulab/spraychart-backend-go/internal/field"
	"github.com/yakyulab/spraychart-backend-go/internal/handler"
	"github.com/yakyulab/spraychart-backend-go/internal/repository"
	"github.com/yakyulab/spraychart-backend-go/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// 設定読み込み
	cfg := config.Load()

	// ストア初期化
	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// 依存の組み立て
	jitter := field.Jitter{AngleRange: cfg.AngleJitter, DistanceRange: cfg.DistanceJitter}
	loader := dataset.NewLoader(cfg.DataDir, jitter, cfg.JitterSeed, logger)
	repo := repository.NewPitchRepository(db)
	chartService := service.NewChartService(loader, repo, cfg.FieldImage, logger)

	// 起動時に一度読み込む。失敗してもサーバは立ち上げ、リクエスト時に
	// エラーを返す。
	if err := chartService.Ensure(); err != nil {
		logger.Warnf("Initial dataset load failed: %v", err)
	}

	chartHandler := handler.NewChartHandler(chartService)
	datasetHandler := handler.NewDatasetHandler(chartService)

	// ルーター初期化
	router := api.SetupRouter(cfg, chartHandler, datasetHandler, logger)

	// サーバー起動
	logger.Infof("Server starting on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
