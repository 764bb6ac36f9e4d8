package config

import (
	"fmt"

	"github.com/decker502/starfall/pkg/embedded"
)

// LoadDefault 加载嵌入的默认配置（data/simulation.yaml）
// 调用前必须先调用 embedded.Init()
func LoadDefault() (*SimulationConfig, error) {
	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded simulation config: %w", err)
	}
	cfg, err := LoadFromBytes(data, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", DefaultConfigPath, err)
	}
	return cfg, nil
}
