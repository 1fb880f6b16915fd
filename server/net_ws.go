package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type outMsg struct {
	mt   int
	data []byte
}

// ClientConn 负责发送（写）数据到观战端的轻量包装
type ClientConn struct {
	ws    *websocket.Conn
	codec Codec
	send  chan outMsg
}

func NewClientConn(ws *websocket.Conn, codec Codec, buffer int) *ClientConn {
	return &ClientConn{
		ws:    ws,
		codec: codec,
		send:  make(chan outMsg, buffer),
	}
}

// Enqueue 将要发送的消息压入队列（非阻塞，满则丢弃）。只在 Hub 读锁下调用。
func (c *ClientConn) Enqueue(mt int, b []byte) {
	select {
	case c.send <- outMsg{mt: mt, data: b}:
	default:
		// 为了实时性，慢观战端直接丢帧
	}
}

// Close 关闭发送队列，写协程随后关闭底层连接。只在 Hub 写锁下调用。
func (c *ClientConn) Close() {
	if c.send != nil {
		close(c.send)
		c.send = nil
	}
}

// writePump 独立协程，负责从 send 队列写出到 WS，并定期 ping 保活
func (c *ClientConn) writePump(send <-chan outMsg) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()
	for {
		select {
		case msg, ok := <-send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(msg.mt, msg.data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump 观战端只读：丢弃入站消息，仅维持读超时与关闭检测
func (c *ClientConn) readPump(h *Hub) {
	// 读泵退出时注销连接
	defer h.Remove(c)
	c.ws.SetReadLimit(1 << 10)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error { return c.ws.SetReadDeadline(time.Now().Add(pongWait)) })
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// 观战只读，允许所有来源
		return true
	},
}

// HandleWS WebSocket 观战接入：/ws?codec=json|msgpack
func (h *Hub) HandleWS(defaultCodec Codec, buffer int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codec := defaultCodec
		if name := r.URL.Query().Get("codec"); name != "" {
			var err error
			if codec, err = ParseCodec(name); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			Log.Warnf("upgrade error: %v", err)
			return
		}

		client := NewClientConn(ws, codec, buffer)
		send := client.send
		h.Add(client)
		Log.Infof("viewer joined from %s codec=%s viewers=%d", r.RemoteAddr, codec, h.Count())

		go client.writePump(send)
		go client.readPump(h)
	}
}
