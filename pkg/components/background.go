package components

// BackgroundComponent 背景滚动配置（挂在单独的配置实体上）
//
// 坐标约定：
//   - TopCorner: 新背景块生成的Y坐标
//   - SpawnCorner: 背景块滚动越过此Y坐标时补充新背景块
//   - BottomCorner: 背景块低于此Y坐标时销毁
type BackgroundComponent struct {
	MaxBackgroundsCount int
	BottomCorner        float64
	SpawnCorner         float64
	TopCorner           float64
	StartY              float64 // 场上没有背景块时，首块的Y坐标
	ScrollSpeed         float64 // 滚动速度（单位/秒）
	Tile                BackgroundTileComponent
}

// BackgroundTileComponent 单个背景块
type BackgroundTileComponent struct {
	Width  float64
	Height float64
}
