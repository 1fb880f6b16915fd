package server

import (
	"sync/atomic"

	"kickpong/game"
)

// RoomMetrics 记录一局运行期的关键指标（用于监控与调试）
type RoomMetrics struct {
	FrameCount        int64 // 调度循环执行的帧数
	SimTicks          int64 // 物理 Tick 数（帧数 × 子步数）
	IntentsAccepted   int64 // 被接受的输入意图数
	ChanFullDiscarded int64 // 因通道满被丢弃的意图数
	FramesRendered    int64 // 成功派发的渲染帧
	FramesDropped     int64 // 上一帧仍在渲染而跳过的帧
	RenderErrors      int64 // 渲染返回错误的次数
	WallBounces       int64
	PaddleBounces     int64
	Repositions       int64
	Kicks             int64
	Points            int64
	TotalFrameNs      int64 // 帧累计耗时（纳秒，不含渲染）
}

func (m *RoomMetrics) IncAccepted()          { atomic.AddInt64(&m.IntentsAccepted, 1) }
func (m *RoomMetrics) IncChanFullDiscarded() { atomic.AddInt64(&m.ChanFullDiscarded, 1) }
func (m *RoomMetrics) IncRendered()          { atomic.AddInt64(&m.FramesRendered, 1) }
func (m *RoomMetrics) IncDropped()           { atomic.AddInt64(&m.FramesDropped, 1) }
func (m *RoomMetrics) IncRenderErrors()      { atomic.AddInt64(&m.RenderErrors, 1) }
func (m *RoomMetrics) AddSimTicks(n int)     { atomic.AddInt64(&m.SimTicks, int64(n)) }
func (m *RoomMetrics) AddFrame(ns int64) {
	atomic.AddInt64(&m.FrameCount, 1)
	atomic.AddInt64(&m.TotalFrameNs, ns)
}

// CountEvent 按事件类型累加
func (m *RoomMetrics) CountEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventWallBounce:
		atomic.AddInt64(&m.WallBounces, 1)
	case game.EventPaddleBounce:
		atomic.AddInt64(&m.PaddleBounces, 1)
	case game.EventReposition:
		atomic.AddInt64(&m.Repositions, 1)
	case game.EventKick:
		atomic.AddInt64(&m.Kicks, 1)
	case game.EventPoint:
		atomic.AddInt64(&m.Points, 1)
	}
}

// Snapshot 返回只读副本，便于 HTTP 输出
func (m *RoomMetrics) Snapshot() map[string]any {
	frames := atomic.LoadInt64(&m.FrameCount)
	total := atomic.LoadInt64(&m.TotalFrameNs)
	var avgMs float64
	if frames > 0 {
		avgMs = float64(total) / float64(frames) / 1e6
	}
	return map[string]any{
		"frame_count":         frames,
		"sim_ticks":           atomic.LoadInt64(&m.SimTicks),
		"intents_accepted":    atomic.LoadInt64(&m.IntentsAccepted),
		"chan_full_discarded": atomic.LoadInt64(&m.ChanFullDiscarded),
		"frames_rendered":     atomic.LoadInt64(&m.FramesRendered),
		"frames_dropped":      atomic.LoadInt64(&m.FramesDropped),
		"render_errors":       atomic.LoadInt64(&m.RenderErrors),
		"wall_bounces":        atomic.LoadInt64(&m.WallBounces),
		"paddle_bounces":      atomic.LoadInt64(&m.PaddleBounces),
		"repositions":         atomic.LoadInt64(&m.Repositions),
		"kicks":               atomic.LoadInt64(&m.Kicks),
		"points":              atomic.LoadInt64(&m.Points),
		"avg_frame_ms":        avgMs,
	}
}
