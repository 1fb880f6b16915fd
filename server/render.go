package server

import (
	"context"
	"errors"
	"sync"

	"kickpong/game"
)

// Renderer 渲染协作方：只读消费一帧快照
type Renderer interface {
	Render(ctx context.Context, snap game.Snapshot) error
}

// RenderFunc 让普通函数满足 Renderer
type RenderFunc func(ctx context.Context, snap game.Snapshot) error

func (f RenderFunc) Render(ctx context.Context, snap game.Snapshot) error { return f(ctx, snap) }

// MultiRenderer 依次交给多个渲染方，错误合并返回
func MultiRenderer(rs ...Renderer) Renderer {
	return multiRenderer(rs)
}

type multiRenderer []Renderer

func (m multiRenderer) Render(ctx context.Context, snap game.Snapshot) error {
	var errs []error
	for _, r := range m {
		if err := r.Render(ctx, snap); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// frameDispatcher 保证同一时刻最多一帧在渲染；忙时直接丢帧，不排队、不阻塞模拟
type frameDispatcher struct {
	r        Renderer
	inflight chan struct{}
	wg       sync.WaitGroup
	metrics  *RoomMetrics
}

func newFrameDispatcher(r Renderer, m *RoomMetrics) *frameDispatcher {
	return &frameDispatcher{r: r, inflight: make(chan struct{}, 1), metrics: m}
}

// Dispatch 后台渲染一帧；返回 false 表示上一帧仍在渲染，本帧被丢弃
func (d *frameDispatcher) Dispatch(ctx context.Context, snap game.Snapshot) bool {
	select {
	case d.inflight <- struct{}{}:
	default:
		d.metrics.IncDropped()
		return false
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() { <-d.inflight }()
		if err := d.r.Render(ctx, snap); err != nil {
			d.metrics.IncRenderErrors()
			Log.Warnf("render tick=%d: %v", snap.Tick, err)
			return
		}
		d.metrics.IncRendered()
	}()
	return true
}

// Wait 等待在途渲染完成
func (d *frameDispatcher) Wait() { d.wg.Wait() }
