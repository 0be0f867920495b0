package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config アプリ設定
type Config struct {
	Port       string
	DataDir    string // 試合データの CSV フォルダ
	FieldImage string // 背景のグラウンド画像
	DBPath     string // 空ならインメモリ

	JitterSeed     int64
	AngleJitter    float64 // degrees
	DistanceJitter float64 // fraction of base distance

	AuthSecret string // 空なら reload 認証なし
	RateLimit  float64
	RateBurst  int
}

// Load 設定を読み込む
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", ":8080"),
		DataDir:        getEnv("DATA_DIR", "試合データ"),
		FieldImage:     getEnv("FIELD_IMAGE", "打球分析.png"),
		DBPath:         getEnv("DB_PATH", ""),
		JitterSeed:     getEnvInt64("JITTER_SEED", 42),
		AngleJitter:    getEnvFloat("ANGLE_JITTER", 0.05),
		DistanceJitter: getEnvFloat("DISTANCE_JITTER", 0.1),
		AuthSecret:     getEnv("AUTH_SECRET", ""),
		RateLimit:      getEnvFloat("RATE_LIMIT", 20),
		RateBurst:      getEnvInt("RATE_BURST", 40),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		logrus.Warnf("[Config] Ignoring invalid %s=%q", key, value)
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
		logrus.Warnf("[Config] Ignoring invalid %s=%q", key, value)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		logrus.Warnf("[Config] Ignoring invalid %s=%q", key, value)
	}
	return defaultValue
}
