package configwatcher

import (
	"lingua_quest_backend/internal/config"
	"lingua_quest_backend/pkg/logger"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ConfigReloader 收到重载后的完整配置
type ConfigReloader func(cfg *config.Config)

// WatchConfig 盯住配置文件,写入事件防抖一秒后整体重载,
// 评审服务的地址和模型改动不用重启进程
func WatchConfig(configPath string, reloader ConfigReloader) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Log.Error("create config watcher failed", zap.Error(err))
		return
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		logger.Log.Error("resolve config path failed", zap.Error(err))
		return
	}
	if err := watcher.Add(absPath); err != nil {
		logger.Log.Error("watch config file failed", zap.String("path", absPath), zap.Error(err))
		return
	}

	debounce := time.NewTimer(0)
	<-debounce.C

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write != 0 {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(time.Second)
			}
		case <-debounce.C:
			newCfg, err := config.LoadConfig(filepath.Dir(configPath))
			if err != nil {
				logger.Log.Error("reload config failed", zap.Error(err))
				continue
			}
			reloader(newCfg)
			logger.Log.Info("config file reloaded", zap.String("path", absPath))
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Log.Error("config watcher error", zap.Error(err))
		}
	}
}
