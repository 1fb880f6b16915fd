package game

import (
	"errors"
	"fmt"
	"math"
)

// unitEpsilon 方向向量长度允许的误差
const unitEpsilon = 1e-9

// Config 一局游戏的核心参数，开局注入后不可变
type Config struct {
	Arena      Arena
	BallRadius float64
	MinSpeed   float64
	MaxSpeed   float64
	Paddle     PaddleConfig
	Deltas     HitDeltas
}

// Validate 检查参数能否构成合法的初始状态
func (c Config) Validate() error {
	var errs []error
	if c.Arena.Width() <= 0 || c.Arena.Height() <= 0 {
		errs = append(errs, fmt.Errorf("arena %vx%v must be positive", c.Arena.Width(), c.Arena.Height()))
	}
	if c.BallRadius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius %v must be positive", c.BallRadius))
	}
	if c.MinSpeed <= 0 || c.MaxSpeed < c.MinSpeed {
		errs = append(errs, fmt.Errorf("speed range [%v, %v] invalid", c.MinSpeed, c.MaxSpeed))
	}
	if c.Paddle.Radius <= 0 || 2*c.Paddle.Radius > c.Arena.Height() {
		errs = append(errs, fmt.Errorf("paddle radius %v does not fit arena height %v", c.Paddle.Radius, c.Arena.Height()))
	}
	if c.Paddle.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("paddle move speed %v is negative", c.Paddle.MoveSpeed))
	}
	if c.Paddle.KickRadius < 0 || c.Paddle.KickActiveTicks < 2 || c.Paddle.KickCooldownTicks < 0 {
		errs = append(errs, fmt.Errorf("kick radius %v active %d cooldown %d invalid",
			c.Paddle.KickRadius, c.Paddle.KickActiveTicks, c.Paddle.KickCooldownTicks))
	}
	if c.Deltas.Bounce < 0 || c.Deltas.Kick < 0 {
		errs = append(errs, fmt.Errorf("speed deltas bounce %v kick %v must not be negative", c.Deltas.Bounce, c.Deltas.Kick))
	}
	return errors.Join(errs...)
}

// Simulation 持有一局中的全部实体；只能由单一协程驱动
type Simulation struct {
	cfg     Config
	ball    *Ball
	paddles [2]*Paddle

	pending []Intent
	events  []Event
	score   [2]int
	tick    uint64
}

// NewSimulation 按配置创建一局：球居中向左发，两拍竖直居中
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	return &Simulation{
		cfg:  cfg,
		ball: NewBall(cfg.Arena, cfg.BallRadius, cfg.MinSpeed, cfg.MaxSpeed),
		paddles: [2]*Paddle{
			NewPaddle(cfg.Arena, Left, cfg.Paddle),
			NewPaddle(cfg.Arena, Right, cfg.Paddle),
		},
	}, nil
}

func (s *Simulation) Ball() *Ball       { return s.ball }
func (s *Simulation) Arena() Arena      { return s.cfg.Arena }
func (s *Simulation) TickCount() uint64 { return s.tick }
func (s *Simulation) Score() [2]int     { return s.score }

// Paddle 返回指定一侧的球拍；NoSide 或非法值返回 nil
func (s *Simulation) Paddle(side Side) *Paddle {
	if side != Left && side != Right {
		return nil
	}
	return s.paddles[side]
}

// Enqueue 记录意图，在下一次 Tick 开始时生效
func (s *Simulation) Enqueue(in Intent) {
	if in.Side != Left && in.Side != Right {
		return
	}
	s.pending = append(s.pending, in)
}

// Tick 推进一个逻辑 Tick。返回的错误均为内部不变量被破坏，调用方应终止本局。
func (s *Simulation) Tick() error {
	s.tick++
	s.applyIntents()

	for _, p := range s.paddles {
		p.Advance()
		p.AdvanceKick()
	}

	s.ball.Integrate()
	if s.ball.ReflectOffWall() {
		s.emit(EventWallBounce, NoSide)
	}

	near := s.paddles[Left]
	if s.ball.position.X >= s.cfg.Arena.MidX() {
		near = s.paddles[Right]
	}
	outcome, err := Resolve(s.ball, near, s.cfg.Deltas)
	if err != nil {
		return fmt.Errorf("tick %d: %w", s.tick, err)
	}
	switch outcome {
	case Bounced:
		s.emit(EventPaddleBounce, near.side)
	case Kicked:
		s.emit(EventKick, near.side)
	case Repositioned:
		s.emit(EventReposition, near.side)
	}
	if outcome == Bounced || outcome == Repositioned {
		if ConfineToField(s.ball, near) {
			s.emit(EventWallBounce, NoSide)
		}
	}

	if s.ball.CheckOutOfBounds() {
		conceded := Left
		if s.ball.position.X > s.cfg.Arena.MidX() {
			conceded = Right
		}
		scorer := conceded.Opponent()
		s.score[scorer]++
		s.ball.ResetToCenter()
		s.emit(EventPoint, scorer)
	}

	if l := s.ball.direction.Len(); math.Abs(l-1) > unitEpsilon {
		return fmt.Errorf("tick %d: ball direction length %v drifted from unit", s.tick, l)
	}
	return nil
}

func (s *Simulation) applyIntents() {
	for _, in := range s.pending {
		p := s.paddles[in.Side]
		switch in.Kind {
		case IntentMoveStart:
			p.SetMoveDirection(in.Dir)
		case IntentMoveStop:
			p.ClearMoveDirection(in.Dir)
		case IntentKick:
			if p.TriggerKick() {
				s.emit(EventKickArmed, in.Side)
			}
		}
	}
	s.pending = s.pending[:0]
}

func (s *Simulation) emit(kind EventKind, side Side) {
	s.events = append(s.events, Event{Tick: s.tick, Kind: kind, Side: side, Speed: s.ball.speed})
}

// DrainEvents 取走并清空累计的事件
func (s *Simulation) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

// Renderables 按固定顺序列出所有渲染实体
func (s *Simulation) Renderables() []Renderable {
	return []Renderable{
		s.paddles[Left],
		s.paddles[Right],
		KickIndicator{paddle: s.paddles[Left]},
		KickIndicator{paddle: s.paddles[Right]},
		s.ball,
	}
}

// Snapshot 生成当前状态的值拷贝，可安全交给其他协程
func (s *Simulation) Snapshot() Snapshot {
	rs := s.Renderables()
	ents := make([]EntityState, 0, len(rs))
	for _, r := range rs {
		ents = append(ents, r.RenderState())
	}
	return Snapshot{
		Tick:     s.tick,
		Arena:    s.cfg.Arena,
		Score:    s.score,
		Entities: ents,
	}
}
