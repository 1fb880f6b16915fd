package server

import (
	"context"
	"fmt"
	"sync"

	"kickpong/game"
)

// Hub 管理观战连接；作为渲染方把每帧快照推给所有观战端
type Hub struct {
	mu      sync.RWMutex
	viewers map[*ClientConn]struct{}
}

func NewHub() *Hub {
	return &Hub{viewers: make(map[*ClientConn]struct{})}
}

// Add 登记观战连接
func (h *Hub) Add(c *ClientConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.viewers[c] = struct{}{}
}

// Remove 注销并关闭观战连接（可重复调用）
func (h *Hub) Remove(c *ClientConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.viewers[c]; !ok {
		return
	}
	delete(h.viewers, c)
	c.Close()
}

// Count 当前观战人数
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// Render 每种编码只编码一次，然后非阻塞入队
func (h *Hub) Render(_ context.Context, snap game.Snapshot) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.viewers) == 0 {
		return nil
	}
	type encoded struct {
		b  []byte
		mt int
	}
	cache := make(map[Codec]encoded, 2)
	for c := range h.viewers {
		e, ok := cache[c.codec]
		if !ok {
			b, mt, err := c.codec.Encode(snap)
			if err != nil {
				return fmt.Errorf("encode %s frame: %w", c.codec, err)
			}
			e = encoded{b: b, mt: mt}
			cache[c.codec] = e
		}
		c.Enqueue(e.mt, e.b)
	}
	return nil
}

// Close 断开全部观战端
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.viewers {
		c.Close()
		delete(h.viewers, c)
	}
}
