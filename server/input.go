package server

import "kickpong/game"

// OnIntent 入站意图（不立即改变状态），等下一帧开始时处理。可在任意协程调用。
func (r *Room) OnIntent(in game.Intent) {
	// 不阻塞：输入拥塞时丢弃，保证 Tick 准时
	select {
	case r.inputChan <- in:
	default:
		r.metrics.IncChanFullDiscarded()
	}
}

// ProcessInputs 把当前积压的意图交给模拟（非阻塞 drain），仅在 Tick 协程调用
func (r *Room) ProcessInputs() {
	for {
		select {
		case in := <-r.inputChan:
			r.sim.Enqueue(in)
			r.metrics.IncAccepted()
			Log.Debugf("intent: room=%s %s side=%s dir=%d", r.ID, in.Kind, in.Side, in.Dir)
		default:
			return
		}
	}
}
