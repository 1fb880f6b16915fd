package game

import "math"

// Ball 连续位置/方向/速率的圆形球体。
// direction 恒为单位向量，speed 恒在 [minSpeed, maxSpeed] 内。
type Ball struct {
	position  Vec2
	direction Vec2
	speed     float64
	radius    float64
	minSpeed  float64
	maxSpeed  float64
	lastHit   Side // 仅供渲染读取，无物理作用

	bounds Arena
}

// NewBall 在场地中心创建球，初始方向向左、速率为 minSpeed
func NewBall(bounds Arena, radius, minSpeed, maxSpeed float64) *Ball {
	return &Ball{
		position:  bounds.Center(),
		direction: Vec2{-1, 0},
		speed:     minSpeed,
		radius:    radius,
		minSpeed:  minSpeed,
		maxSpeed:  maxSpeed,
		lastHit:   NoSide,
		bounds:    bounds,
	}
}

func (b *Ball) Position() Vec2    { return b.position }
func (b *Ball) Direction() Vec2   { return b.direction }
func (b *Ball) Speed() float64    { return b.speed }
func (b *Ball) Radius() float64   { return b.radius }
func (b *Ball) LastHit() Side     { return b.lastHit }
func (b *Ball) Bounds() Arena     { return b.bounds }
func (b *Ball) MinSpeed() float64 { return b.minSpeed }
func (b *Ball) MaxSpeed() float64 { return b.maxSpeed }

// Integrate 推进一个逻辑 Tick：position += speed * direction
func (b *Ball) Integrate() {
	b.position = b.position.Add(b.direction.Scale(b.speed))
}

// ReflectOffWall 上下墙反弹：沿运动方向精确回退到墙线上，再翻转 direction.y。
// 返回是否发生了反弹。
func (b *Ball) ReflectOffWall() bool {
	top := b.bounds.Top + b.radius
	bottom := b.bounds.Bottom - b.radius
	switch {
	case b.position.Y < top:
		b.backtrackTo(top)
		b.direction.Y = math.Abs(b.direction.Y)
		return true
	case b.position.Y > bottom:
		b.backtrackTo(bottom)
		b.direction.Y = -math.Abs(b.direction.Y)
		return true
	}
	return false
}

// backtrackTo 沿运动直线把球移到 y == line 处
func (b *Ball) backtrackTo(line float64) {
	dy := line - b.position.Y
	if b.direction.Y == 0 {
		// 水平运动只可能是被球拍推入墙区，直接贴墙
		b.position.Y = line
		return
	}
	dx := dy * b.direction.X / b.direction.Y
	b.position = b.position.Add(Vec2{dx, dy})
}

// CheckOutOfBounds 球完全越过左右边界
func (b *Ball) CheckOutOfBounds() bool {
	return b.position.X < b.bounds.Left-b.radius || b.position.X > b.bounds.Right+b.radius
}

// ResetToCenter 回到中心重新发球，保持原水平朝向（发向刚失分的一侧）
func (b *Ball) ResetToCenter() {
	dx := sign(b.direction.X)
	if dx == 0 {
		// 无水平分量时按出界的一侧发球
		dx = -1
		if b.position.X > b.bounds.MidX() {
			dx = 1
		}
	}
	b.position = b.bounds.Center()
	b.direction = Vec2{dx, 0}
	b.speed = b.minSpeed
	b.lastHit = NoSide
}

// RegisterHit 记录击球方并加速，速率封顶 maxSpeed
func (b *Ball) RegisterHit(by Side, delta float64) {
	b.speed = math.Min(b.speed+delta, b.maxSpeed)
	if b.speed < b.minSpeed {
		b.speed = b.minSpeed
	}
	b.lastHit = by
}
