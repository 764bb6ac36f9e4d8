//go:build ignore

// validate_config 校验模拟配置文件
//
//	go run tools/validate_config.go data/simulation.yaml other.toml
package main

import (
	"fmt"
	"os"

	"github.com/decker502/starfall/pkg/config"
)

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{config.DefaultConfigPath}
	}

	failed := 0
	for _, path := range paths {
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s\n", path)
		fmt.Printf("   敌人: 默认 %d, 上限 %d, 速度 %.1f, 档位 %d 个\n",
			cfg.Game.DefaultEnemies, cfg.Game.MaxEnemies, cfg.Game.EnemiesMoveSpeed, len(cfg.Game.EnemyTiers))
		fmt.Printf("   规则: breachPenalty=%s laneLeaderFiring=%v collisionWorkers=%d\n",
			cfg.Rules.BreachPenalty, cfg.Rules.LaneLeaderFiring, cfg.Rules.CollisionWorkers)
	}

	if failed > 0 {
		fmt.Printf("❌ %d 个配置文件校验失败\n", failed)
		os.Exit(1)
	}
}
