package game

// EventKind Tick 内发生的可观测事件
type EventKind uint8

const (
	EventWallBounce EventKind = iota
	EventPaddleBounce
	EventReposition
	EventKick
	EventKickArmed
	EventPoint
)

func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleBounce:
		return "paddle_bounce"
	case EventReposition:
		return "reposition"
	case EventKick:
		return "kick"
	case EventKickArmed:
		return "kick_armed"
	case EventPoint:
		return "point"
	}
	return "unknown"
}

// Event 供日志与指标消费，不影响物理
type Event struct {
	Tick  uint64
	Kind  EventKind
	Side  Side // 击球方 / 得分方 / 发动方；墙反弹为 NoSide
	Speed float64
}
