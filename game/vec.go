package game

import "math"

const tangentSlack = 1e-12

// Vec2 二维向量（值类型，按值传递）
type Vec2 struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Cross(b Vec2) float64 { return a.X*b.Y - a.Y*b.X }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }

// Normalize 返回同方向单位向量；零向量无方向，返回 DegenerateVectorError
func Normalize(v Vec2) (Vec2, error) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, &DegenerateVectorError{V: v}
	}
	return Vec2{v.X / l, v.Y / l}, nil
}

// SolveLineCircleBacktrack 求过 relPos、方向为 dir 的直线与原点为圆心、半径 r 的圆的两个交点。
// 返回沿 dir 的偏移量 (tFar, tNear)，即 relPos + dir*t 落在圆上。
// dir 必须是单位向量。
func SolveLineCircleBacktrack(relPos, dir Vec2, r float64) (tFar, tNear float64, err error) {
	dif1 := -relPos.Dot(dir)
	dif2 := dir.Cross(relPos)
	d := r*r - dif2*dif2
	if d < 0 {
		// 相切时允许舍入误差
		if d < -tangentSlack*r*r {
			return 0, 0, &NoIntersectionError{RelPos: relPos, Dir: dir, Radius: r}
		}
		d = 0
	}
	disc := math.Sqrt(d)
	return dif1 + disc, dif1 - disc, nil
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
