package components

// InputComponent 存储本帧的玩家输入
// 每帧由输入系统整体覆盖写入，移动系统和射击系统只读
type InputComponent struct {
	AxisX float64 // 归一化水平轴 [-1, 1]
	Fire  bool    // 本帧是否按下射击（每次按键只持续一帧）
}
