package game

import (
	"fmt"
	"math"
)

// Outcome 一次球/拍碰撞判定的结果
type Outcome uint8

const (
	NoContact Outcome = iota
	Repositioned
	Bounced
	Kicked
)

func (o Outcome) String() string {
	switch o {
	case NoContact:
		return "no_contact"
	case Repositioned:
		return "repositioned"
	case Bounced:
		return "bounced"
	case Kicked:
		return "kicked"
	}
	return "unknown"
}

// HitDeltas 击球后的加速量
type HitDeltas struct {
	Bounce float64
	Kick   float64
}

// Resolve 计算球与球拍的精确接触点和碰撞后的方向。
// 踢球判定优先于实体碰撞，使用更大的技能半径。
func Resolve(ball *Ball, paddle *Paddle, deltas HitDeltas) (Outcome, error) {
	d := ball.position.Sub(paddle.Center())
	dist := d.Len()

	if paddle.kick.phase == KickActive && dist <= ball.radius+paddle.kick.radius {
		dir, err := Normalize(d)
		if err != nil {
			return NoContact, fmt.Errorf("kick %s paddle: %w", paddle.side, err)
		}
		ball.direction = dir
		ball.RegisterHit(paddle.side, deltas.Kick)
		paddle.kick.Consume()
		return Kicked, nil
	}

	r := ball.radius + paddle.radius
	if dist > r {
		return NoContact, nil
	}
	n, err := Normalize(d)
	if err != nil {
		return NoContact, fmt.Errorf("contact normal %s paddle: %w", paddle.side, err)
	}
	norm := ball.direction.Dot(n)

	tFar, tNear, err := SolveLineCircleBacktrack(d, ball.direction, r)
	if err != nil {
		return NoContact, fmt.Errorf("backtrack %s paddle: %w", paddle.side, err)
	}

	if norm >= 0 {
		// 球已在远离球拍：只是残留重叠，按较近的一侧修正，不改方向
		t := tNear
		if math.Abs(tFar) < math.Abs(tNear) {
			t = tFar
		}
		ball.position = ball.position.Add(ball.direction.Scale(t))
		return Repositioned, nil
	}

	// 回退到进入组合半径圆的点，恰好与球拍相切
	ball.position = ball.position.Add(ball.direction.Scale(tNear))
	// 切向分量保持，法向分量取反
	tangent := n.Cross(ball.direction)
	reflected := Vec2{
		X: tangent*-n.Y - norm*n.X,
		Y: tangent*n.X - norm*n.Y,
	}
	dir, err := Normalize(reflected)
	if err != nil {
		return NoContact, fmt.Errorf("reflect off %s paddle: %w", paddle.side, err)
	}
	ball.direction = dir
	ball.RegisterHit(paddle.side, deltas.Bounce)
	return Bounced, nil
}

// ConfineToField 把拍碰修正后越过墙线的球放回场内。
// 球拍贴墙时拍与墙之间容不下球，墙回退与拍回退会互相抵消，球被卡在墙外。
// 此时把球放到墙线上；若仍与球拍重叠，再沿墙线水平推到组合半径圆上，并让 y 方向离开墙。
// 返回是否做了修正。
func ConfineToField(ball *Ball, paddle *Paddle) bool {
	top := ball.bounds.Top + ball.radius
	bottom := ball.bounds.Bottom - ball.radius
	var line, away float64
	switch {
	case ball.position.Y < top:
		line, away = top, 1
	case ball.position.Y > bottom:
		line, away = bottom, -1
	default:
		return false
	}
	ball.position.Y = line
	ball.direction.Y = away * math.Abs(ball.direction.Y)

	r := ball.radius + paddle.radius
	dy := line - paddle.position
	if math.Abs(dy) >= r {
		return true
	}
	off := math.Sqrt(r*r - dy*dy)
	// 推向球当前所在的一侧；正好在拍线上时推回场内
	side := sign(ball.position.X - paddle.X())
	if side == 0 {
		side = 1
		if paddle.side == Right {
			side = -1
		}
	}
	ball.position.X = paddle.X() + side*off
	return true
}
