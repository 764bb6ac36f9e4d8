//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.starfall -o build/android/starfall.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Starfall.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/starfall/pkg/app"
	"github.com/decker502/starfall/pkg/config"
	"github.com/decker502/starfall/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	logger, err := app.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}

	// 触摸输入由 KeyboardProvider 一并处理
	gameApp, err := app.NewApp(app.Config{Simulation: cfg, Logger: logger})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
