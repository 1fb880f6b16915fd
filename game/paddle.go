package game

// Paddle 只能沿竖直方向移动的圆形球拍；水平坐标由所在侧决定
type Paddle struct {
	position      float64 // 竖直坐标
	side          Side
	radius        float64
	moveDirection int // -1 上, 0 停, +1 下
	moveSpeed     float64
	toggleStop    bool
	kick          KickState

	bounds Arena
}

// PaddleConfig 球拍参数
type PaddleConfig struct {
	Radius     float64
	MoveSpeed  float64
	ToggleStop bool // 再次按下当前方向时停下（沿用原有手感）

	KickRadius        float64
	KickActiveTicks   int
	KickCooldownTicks int
}

// NewPaddle 在场地竖直居中处创建球拍
func NewPaddle(bounds Arena, side Side, cfg PaddleConfig) *Paddle {
	return &Paddle{
		position:   bounds.MidY(),
		side:       side,
		radius:     cfg.Radius,
		moveSpeed:  cfg.MoveSpeed,
		toggleStop: cfg.ToggleStop,
		kick:       NewKickState(cfg.KickRadius, cfg.KickActiveTicks, cfg.KickCooldownTicks),
		bounds:     bounds,
	}
}

func (p *Paddle) Side() Side         { return p.side }
func (p *Paddle) Radius() float64    { return p.radius }
func (p *Paddle) Y() float64         { return p.position }
func (p *Paddle) MoveDirection() int { return p.moveDirection }
func (p *Paddle) Kick() *KickState   { return &p.kick }

// X 左拍贴左边界，右拍贴右边界
func (p *Paddle) X() float64 {
	if p.side == Right {
		return p.bounds.Right
	}
	return p.bounds.Left
}

// Center 球拍圆心
func (p *Paddle) Center() Vec2 { return Vec2{p.X(), p.position} }

// SetMoveDirection 开始朝 d 移动。已在朝 d 移动时：toggleStop 下停止，否则不变。
func (p *Paddle) SetMoveDirection(d int) {
	d = clampDir(d)
	if d == 0 {
		return
	}
	if p.moveDirection*d > 0 {
		if p.toggleStop {
			p.moveDirection = 0
		}
		return
	}
	p.moveDirection = d
}

// ClearMoveDirection 若正朝 d 移动则停下（松开按键）
func (p *Paddle) ClearMoveDirection(d int) {
	if p.moveDirection*clampDir(d) > 0 {
		p.moveDirection = 0
	}
}

// Advance 按速度移动并裁剪到场内；撞墙即停
func (p *Paddle) Advance() {
	p.position += float64(p.moveDirection) * p.moveSpeed
	lo := p.bounds.Top + p.radius
	hi := p.bounds.Bottom - p.radius
	if p.position < lo {
		p.position = lo
		p.moveDirection = 0
	} else if p.position > hi {
		p.position = hi
		p.moveDirection = 0
	}
}

// TriggerKick 委托给技能状态机；非 READY 时无效果
func (p *Paddle) TriggerKick() bool { return p.kick.Trigger() }

// AdvanceKick 推进技能状态机一个 Tick
func (p *Paddle) AdvanceKick() { p.kick.Advance() }

func clampDir(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}
