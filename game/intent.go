package game

// IntentKind 输入意图类型（由外部输入层产生，核心不解析原始设备事件）
type IntentKind uint8

const (
	IntentMoveStart IntentKind = iota
	IntentMoveStop
	IntentKick
)

func (k IntentKind) String() string {
	switch k {
	case IntentMoveStart:
		return "move_start"
	case IntentMoveStop:
		return "move_stop"
	case IntentKick:
		return "kick"
	}
	return "unknown"
}

// Intent 针对某一侧球拍的离散意图
type Intent struct {
	Kind IntentKind
	Side Side
	Dir  int // -1 上, +1 下；Kick 时忽略
}

func PaddleMoveStart(side Side, dir int) Intent {
	return Intent{Kind: IntentMoveStart, Side: side, Dir: dir}
}

func PaddleMoveStop(side Side, dir int) Intent {
	return Intent{Kind: IntentMoveStop, Side: side, Dir: dir}
}

func PaddleKickTrigger(side Side) Intent {
	return Intent{Kind: IntentKick, Side: side}
}
