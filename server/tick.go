package server

import (
	"context"
	"fmt"
	"time"
)

// pacer 按固定周期对齐 Tick 边界：以起点为相位基准计算到下一个边界的剩余时间，
// 不累积睡眠误差；超时的帧直接跳到下一个边界，不补帧。
type pacer struct {
	period time.Duration
	epoch  time.Time
	now    func() time.Time
}

func newPacer(period time.Duration, now func() time.Time) *pacer {
	return &pacer{period: period, epoch: now(), now: now}
}

// untilNext 距下一个 Tick 边界的时长
func (p *pacer) untilNext() time.Duration {
	elapsed := p.now().Sub(p.epoch)
	next := (elapsed/p.period + 1) * p.period
	return next - elapsed
}

// Run 启动本局的调度循环（单协程推进世界），阻塞直到 ctx 取消或模拟出错。
// 取消只在帧之间生效：当前帧总会完整执行，返回前等待在途渲染结束。
func (r *Room) Run(ctx context.Context) error {
	period := r.cfg.FramePeriod()
	p := newPacer(period, time.Now)
	// 渲染不随调度一起被取消，保证在途帧画完
	renderCtx := context.WithoutCancel(ctx)
	defer r.frames.Wait()

	Log.Infof("room %s running: period=%s substeps=%d", r.ID, period, r.substeps)
	for {
		// 核心循环：处理输入 → 更新世界 → 派发渲染
		start := time.Now()
		r.ProcessInputs()
		if err := r.UpdateWorld(); err != nil {
			return fmt.Errorf("room %s: simulation halted: %w", r.ID, err)
		}
		r.frames.Dispatch(renderCtx, r.Snapshot())
		r.metrics.AddFrame(time.Since(start).Nanoseconds())

		t := time.NewTimer(p.untilNext())
		select {
		case <-ctx.Done():
			t.Stop()
			Log.Infof("room %s stopping after tick %d", r.ID, r.sim.TickCount())
			return nil
		case <-t.C:
		}
	}
}
