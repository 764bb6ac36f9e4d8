//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 普通构建不编译 mobile.go 和 embed.go（它们需要 mobile/data/ 下的配置副本），
// 这里只保留 Dummy，保证 ./... 在桌面端也能通过编译。
package mobile

// Dummy 是一个空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
