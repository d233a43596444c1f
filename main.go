// @title LinguaQuest 后端 API
// @version 1.0
// @description 语言学习闯关游戏的CEFR评级后端服务。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"lingua_quest_backend/internal/app"
	"lingua_quest_backend/internal/config"
	"lingua_quest_backend/pkg/configwatcher"
	"lingua_quest_backend/pkg/logger"
	"log"
	"path/filepath"
)

func main() {
	configPath := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置热更新
	go configwatcher.WatchConfig(filepath.Join(*configPath, "config.yaml"), application.ApplyConfig)

	application.Run()
}
