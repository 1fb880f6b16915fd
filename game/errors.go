package game

import "fmt"

// DegenerateVectorError 对零向量归一化。方向向量恒为单位向量，出现即说明内部不变量被破坏。
type DegenerateVectorError struct {
	V Vec2
}

func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("degenerate vector (%g, %g): cannot normalize", e.V.X, e.V.Y)
}

// NoIntersectionError 直线与圆不相交；调用方必须先确认重叠（dist <= R）
type NoIntersectionError struct {
	RelPos Vec2
	Dir    Vec2
	Radius float64
}

func (e *NoIntersectionError) Error() string {
	return fmt.Sprintf("line through (%g, %g) dir (%g, %g) misses circle r=%g",
		e.RelPos.X, e.RelPos.Y, e.Dir.X, e.Dir.Y, e.Radius)
}
