package server

import (
	"fmt"

	"kickpong/game"
)

// Room 一局游戏：权威状态维护在内存，由单一协程推进
type Room struct {
	ID string

	sim       *game.Simulation
	inputChan chan game.Intent
	frames    *frameDispatcher
	metrics   *RoomMetrics

	cfg      Config
	substeps int
}

// NewRoom 按配置创建一局，renderer 接收每帧快照
func NewRoom(id string, cfg Config, renderer Renderer) (*Room, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("room %s: %w", id, err)
	}
	sim, err := game.NewSimulation(cfg.GameConfig())
	if err != nil {
		return nil, fmt.Errorf("room %s: %w", id, err)
	}
	m := &RoomMetrics{}
	return &Room{
		ID:        id,
		sim:       sim,
		inputChan: make(chan game.Intent, cfg.Server.IntentBuffer), // 足够缓冲，避免输入阻塞 Tick
		frames:    newFrameDispatcher(renderer, m),
		metrics:   m,
		cfg:       cfg,
		substeps:  cfg.Loop.Substeps,
	}, nil
}

func (r *Room) Metrics() *RoomMetrics { return r.metrics }
func (r *Room) Config() Config        { return r.cfg }

// UpdateWorld 推进一帧：执行固定数量的子步，任一子步出错即终止
func (r *Room) UpdateWorld() error {
	for i := 0; i < r.substeps; i++ {
		if err := r.sim.Tick(); err != nil {
			return err
		}
		r.metrics.AddSimTicks(1)
	}
	for _, ev := range r.sim.DrainEvents() {
		r.metrics.CountEvent(ev)
		switch ev.Kind {
		case game.EventPoint:
			score := r.sim.Score()
			Log.Infof("point: room=%s tick=%d scorer=%s score=%d:%d", r.ID, ev.Tick, ev.Side, score[game.Left], score[game.Right])
		case game.EventWallBounce:
			// 过于频繁，不记日志
		default:
			Log.Debugf("%s: room=%s tick=%d side=%s speed=%.2f", ev.Kind, r.ID, ev.Tick, ev.Side, ev.Speed)
		}
	}
	return nil
}

// Snapshot 当前帧结束后的一致快照
func (r *Room) Snapshot() game.Snapshot { return r.sim.Snapshot() }
