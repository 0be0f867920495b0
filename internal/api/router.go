package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yakyulab/spraychart-backend-go/internal/config"
	"github.com/yakyulab/spraychart-backend-go/internal/handler"
	"github.com/yakyulab/spraychart-backend-go/internal/middleware"
)

// SetupRouter ルーター設定
func SetupRouter(cfg *config.Config, chartHandler *handler.ChartHandler, datasetHandler *handler.DatasetHandler, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))

	// CORS ミドルウェア
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// ヘルスチェック
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Spray Chart API is running",
		})
	})

	// API ルートグループ
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateBurst))
	{
		// 打球チャート
		chart := api.Group("/chart")
		{
			chart.GET("/points", chartHandler.GetPoints)
			chart.GET("/summary", chartHandler.GetSummary)
			chart.GET("/layout", chartHandler.GetLayout)
		}

		// データセット管理
		dataset := api.Group("/dataset")
		{
			dataset.GET("/meta", datasetHandler.GetMeta)
			dataset.POST("/reload", middleware.Auth(cfg.AuthSecret), datasetHandler.Reload)
		}
	}

	return r
}
