package app

import (
	"github.com/yungbote/learncards-backend/internal/logger"
	"github.com/yungbote/learncards-backend/internal/utils"
)

type Config struct {
	HTTPAddr    string
	CORSOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	httpAddr := utils.GetEnv("HTTP_ADDR", ":8080", log)
	corsOrigins := utils.GetEnvAsSlice("CORS_ALLOW_ORIGINS", []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}, log)
	return Config{
		HTTPAddr:    httpAddr,
		CORSOrigins: corsOrigins,
	}
}
