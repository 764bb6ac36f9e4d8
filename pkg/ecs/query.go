package ecs

// View1 是单组件查询结果
// Entities 与 A 按下标一一对应
type View1[A any] struct {
	Entities []EntityID
	A        []A
}

// Len 返回匹配的实体数量
func (v View1[A]) Len() int { return len(v.Entities) }

// View2 是双组件查询结果，三个切片按下标对齐
type View2[A, B any] struct {
	Entities []EntityID
	A        []A
	B        []B
}

// Len 返回匹配的实体数量
func (v View2[A, B]) Len() int { return len(v.Entities) }

// View3 是三组件查询结果，四个切片按下标对齐
type View3[A, B, C any] struct {
	Entities []EntityID
	A        []A
	B        []B
	C        []C
}

// Len 返回匹配的实体数量
func (v View3[A, B, C]) Len() int { return len(v.Entities) }

// Query1 查询拥有组件 A 的所有实体，返回按ID排序的对齐视图
//
// 组件通常以指针形式存储（如 *components.PositionComponent），
// 因此视图中的元素可以直接修改；结构性修改（创建/删除实体）应通过 CommandBuffer 录制。
func Query1[A any](em *EntityManager) View1[A] {
	ids := GetEntitiesWith1[A](em)
	view := View1[A]{
		Entities: make([]EntityID, 0, len(ids)),
		A:        make([]A, 0, len(ids)),
	}
	for _, id := range ids {
		a, ok := GetComponent[A](em, id)
		if !ok {
			continue
		}
		view.Entities = append(view.Entities, id)
		view.A = append(view.A, a)
	}
	return view
}

// Query2 查询同时拥有组件 A、B 的所有实体
func Query2[A, B any](em *EntityManager) View2[A, B] {
	ids := GetEntitiesWith2[A, B](em)
	view := View2[A, B]{
		Entities: make([]EntityID, 0, len(ids)),
		A:        make([]A, 0, len(ids)),
		B:        make([]B, 0, len(ids)),
	}
	for _, id := range ids {
		a, okA := GetComponent[A](em, id)
		b, okB := GetComponent[B](em, id)
		if !okA || !okB {
			continue
		}
		view.Entities = append(view.Entities, id)
		view.A = append(view.A, a)
		view.B = append(view.B, b)
	}
	return view
}

// Query3 查询同时拥有组件 A、B、C 的所有实体
func Query3[A, B, C any](em *EntityManager) View3[A, B, C] {
	ids := GetEntitiesWith3[A, B, C](em)
	view := View3[A, B, C]{
		Entities: make([]EntityID, 0, len(ids)),
		A:        make([]A, 0, len(ids)),
		B:        make([]B, 0, len(ids)),
		C:        make([]C, 0, len(ids)),
	}
	for _, id := range ids {
		a, okA := GetComponent[A](em, id)
		b, okB := GetComponent[B](em, id)
		c, okC := GetComponent[C](em, id)
		if !okA || !okB || !okC {
			continue
		}
		view.Entities = append(view.Entities, id)
		view.A = append(view.A, a)
		view.B = append(view.B, b)
		view.C = append(view.C, c)
	}
	return view
}
