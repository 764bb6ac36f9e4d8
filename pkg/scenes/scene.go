package scenes

import (
	"github.com/decker502/starfall/pkg/game"
)

// Scene 场景接口的别名，场景实现 game.Scene 即可交给 SceneManager
type Scene = game.Scene
