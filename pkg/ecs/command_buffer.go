package ecs

import "reflect"

// CommandKind 命令类型
type CommandKind int

const (
	// CommandCreate 创建实体（ID 在录制时已预留）
	CommandCreate CommandKind = iota
	// CommandDestroy 删除实体
	CommandDestroy
	// CommandSet 添加或替换组件
	CommandSet
	// CommandRemove 移除组件
	CommandRemove
)

// String 返回命令类型名称（用于日志）
func (k CommandKind) String() string {
	switch k {
	case CommandCreate:
		return "create"
	case CommandDestroy:
		return "destroy"
	case CommandSet:
		return "set"
	case CommandRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Command 是一条待执行的结构性修改记录
type Command struct {
	Kind          CommandKind
	Target        EntityID
	Component     interface{}  // CommandSet 使用
	ComponentType reflect.Type // CommandRemove 使用
}

// CommandBuffer 命令缓冲：系统遍历期间录制的修改日志
//
// 系统在一次 Update 中不直接创建/删除实体，而是把修改录制到缓冲里，
// 由调度器在该系统执行完后统一回放。这样系统在遍历时不会看到自己造成的结构变化。
//
// 记录按目标实体建立索引，系统可以用 IsDestroyPending 查询某实体是否已被本轮判定删除。
type CommandBuffer struct {
	em       *EntityManager
	commands []Command
	byTarget map[EntityID][]int
}

// NewCommandBuffer 创建绑定到实体管理器的命令缓冲
// 新实体的ID从 em 预留，保证回放后ID不冲突
func NewCommandBuffer(em *EntityManager) *CommandBuffer {
	return &CommandBuffer{
		em:       em,
		commands: make([]Command, 0, 64),
		byTarget: make(map[EntityID][]int),
	}
}

func (cb *CommandBuffer) record(cmd Command) {
	cb.byTarget[cmd.Target] = append(cb.byTarget[cmd.Target], len(cb.commands))
	cb.commands = append(cb.commands, cmd)
}

// CreateEntity 录制创建实体，立即返回预留的ID
// 返回的ID可以继续用于 AddComponent 录制
func (cb *CommandBuffer) CreateEntity() EntityID {
	id := cb.em.reserveID()
	cb.record(Command{Kind: CommandCreate, Target: id})
	return id
}

// DestroyEntity 录制删除实体
func (cb *CommandBuffer) DestroyEntity(id EntityID) {
	if cb.IsDestroyPending(id) {
		return
	}
	cb.record(Command{Kind: CommandDestroy, Target: id})
}

// AddComponent 录制添加（或替换）组件
func (cb *CommandBuffer) AddComponent(id EntityID, component interface{}) {
	cb.record(Command{Kind: CommandSet, Target: id, Component: component})
}

// RemoveComponent 录制移除组件
func (cb *CommandBuffer) RemoveComponent(id EntityID, componentType reflect.Type) {
	cb.record(Command{Kind: CommandRemove, Target: id, ComponentType: componentType})
}

// IsDestroyPending 检查实体是否已在本缓冲中被录制删除
func (cb *CommandBuffer) IsDestroyPending(id EntityID) bool {
	for _, idx := range cb.byTarget[id] {
		if cb.commands[idx].Kind == CommandDestroy {
			return true
		}
	}
	return false
}

// Len 返回待执行记录数量
func (cb *CommandBuffer) Len() int {
	return len(cb.commands)
}

// PlaybackResult 回放统计
type PlaybackResult struct {
	Applied   int // 成功应用的记录数
	Stale     int // 目标实体已不存在而被丢弃的记录数
	Destroyed int // 最终删除的实体数
}

// Playback 按录制顺序把所有记录应用到实体管理器，然后清理标记删除的实体
//
// 目标实体已不存在的记录（过期引用）会被丢弃并计入 Stale，不视为错误。
// 回放结束后缓冲被清空，可以继续复用。
func (cb *CommandBuffer) Playback() PlaybackResult {
	var result PlaybackResult
	em := cb.em

	for _, cmd := range cb.commands {
		switch cmd.Kind {
		case CommandCreate:
			em.materialize(cmd.Target)
			result.Applied++
		case CommandDestroy:
			if !em.Exists(cmd.Target) {
				result.Stale++
				continue
			}
			em.DestroyEntity(cmd.Target)
			result.Applied++
		case CommandSet:
			if !em.Exists(cmd.Target) {
				result.Stale++
				continue
			}
			em.AddComponent(cmd.Target, cmd.Component)
			result.Applied++
		case CommandRemove:
			if !em.Exists(cmd.Target) {
				result.Stale++
				continue
			}
			em.RemoveComponent(cmd.Target, cmd.ComponentType)
			result.Applied++
		}
	}

	result.Destroyed = em.RemoveMarkedEntities()
	cb.Reset()
	return result
}

// Reset 丢弃所有未回放的记录
func (cb *CommandBuffer) Reset() {
	cb.commands = cb.commands[:0]
	clear(cb.byTarget)
}
