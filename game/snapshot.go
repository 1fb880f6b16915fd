package game

// EntityKind 渲染实体的封闭集合
type EntityKind uint8

const (
	EntityBall EntityKind = iota
	EntityPaddle
	EntityKickIndicator
)

func (k EntityKind) String() string {
	switch k {
	case EntityBall:
		return "ball"
	case EntityPaddle:
		return "paddle"
	case EntityKickIndicator:
		return "kick"
	}
	return "unknown"
}

// EntityState 单个实体的只读渲染状态
type EntityState struct {
	Kind      EntityKind `json:"kind" msgpack:"kind"`
	Side      Side       `json:"side" msgpack:"side"`
	X         float64    `json:"x" msgpack:"x"`
	Y         float64    `json:"y" msgpack:"y"`
	Radius    float64    `json:"r" msgpack:"r"`
	LastHit   Side       `json:"lastHit" msgpack:"lastHit"`
	KickPhase KickPhase  `json:"kickPhase" msgpack:"kickPhase"`
}

// Renderable 渲染层多态读取实体状态的能力接口
type Renderable interface {
	RenderState() EntityState
}

// Snapshot 一个完整 Tick 结束后的一致状态副本；渲染方不得修改
type Snapshot struct {
	Tick     uint64        `json:"tick" msgpack:"tick"`
	Arena    Arena         `json:"arena" msgpack:"arena"`
	Score    [2]int        `json:"score" msgpack:"score"`
	Entities []EntityState `json:"entities" msgpack:"entities"`
}

// Find 返回第一个匹配的实体
func (s Snapshot) Find(kind EntityKind, side Side) (EntityState, bool) {
	for _, e := range s.Entities {
		if e.Kind == kind && (kind == EntityBall || e.Side == side) {
			return e, true
		}
	}
	return EntityState{}, false
}

func (b *Ball) RenderState() EntityState {
	return EntityState{
		Kind:    EntityBall,
		Side:    NoSide,
		X:       b.position.X,
		Y:       b.position.Y,
		Radius:  b.radius,
		LastHit: b.lastHit,
	}
}

func (p *Paddle) RenderState() EntityState {
	return EntityState{
		Kind:      EntityPaddle,
		Side:      p.side,
		X:         p.X(),
		Y:         p.position,
		Radius:    p.radius,
		LastHit:   NoSide,
		KickPhase: p.kick.phase,
	}
}

// KickIndicator 球拍踢球范围的可视化
type KickIndicator struct {
	paddle *Paddle
}

func (k KickIndicator) RenderState() EntityState {
	return EntityState{
		Kind:      EntityKickIndicator,
		Side:      k.paddle.side,
		X:         k.paddle.X(),
		Y:         k.paddle.position,
		Radius:    k.paddle.kick.radius,
		LastHit:   NoSide,
		KickPhase: k.paddle.kick.phase,
	}
}
