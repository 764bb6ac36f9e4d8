// verify_waves 打印指定种子下前 N 波的敌人组成，用于核对档位和随机分布
//
//	go run ./cmd/verify_waves -seed 42 -waves 6
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/config"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/entities"
	"github.com/decker502/starfall/pkg/game"
	"github.com/decker502/starfall/pkg/systems"
)

var (
	seed       = flag.Int64("seed", 42, "随机种子")
	waves      = flag.Int("waves", 6, "打印的波次数")
	configPath = flag.String("config", "", "模拟配置文件（为空使用内置默认值）")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ 配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.Game.Seed = *seed

	ctx := game.NewContext(cfg, game.NewCameraBounds(cfg.Camera), nil)
	ctx.Game.StartGame()
	spawner := systems.NewWaveSpawnSystem()

	field := ctx.Field()
	fmt.Printf("场地: x ∈ [%.2f, %.2f], y ∈ [%.2f, %.2f], seed=%d\n\n",
		field.MinX, field.MaxX, field.MinY, field.MaxY, *seed)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i := 0; i < *waves; i++ {
		spawned := spawner.SpawnWave(ctx, nil)
		ctx.Buffer.Playback()

		fmt.Fprintf(w, "波次 %d\t敌人 %d\t速度 %.1f\t\t\n", ctx.Game.CurrentWave, spawned, cfg.Game.EnemiesMoveSpeed+float64(i)/2)
		fmt.Fprintln(w, "  #\tx\t方向\t换行周期\t蛇形角度")
		view := ecs.Query2[*components.EnemyComponent, *components.PositionComponent](ctx.EM)
		for j := range view.Entities {
			enemy := view.A[j]
			serpentine := "-"
			if enemy.IsNonStop {
				serpentine = fmt.Sprintf("%.1f°", enemy.SerpentineDegree)
			}
			fmt.Fprintf(w, "  %d\t%.2f\t%s\t%.2fs\t%s\n", j, view.B[j].X, enemy.Direction, enemy.LineChangingTime, serpentine)
		}
		fmt.Fprintln(w, "\t\t\t\t")
		entities.ClearCombat(ctx)
	}
	_ = w.Flush()
}
