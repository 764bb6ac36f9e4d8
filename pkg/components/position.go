package components

// PositionComponent 存储实体的世界坐标
// 只有 X、Y 参与移动计算；Z 保留用于网格相交判定（三轴截断取整比较）
type PositionComponent struct {
	X float64 // 世界坐标X（向右为正）
	Y float64 // 世界坐标Y（向上为正）
	Z float64 // 世界坐标Z
}

// Cell 返回坐标截断取整后所在的网格单元
// 截断方向向零（与 int() 转换一致），-0.5 和 0.5 落在同一单元
func (p *PositionComponent) Cell() Cell {
	return Cell{X: int(p.X), Y: int(p.Y), Z: int(p.Z)}
}

// Cell 离散化后的网格单元，相交判定和车道划分都基于它
type Cell struct {
	X, Y, Z int
}

// Lane 返回网格单元所在的车道（水平列号）
func (c Cell) Lane() int {
	return c.X
}
