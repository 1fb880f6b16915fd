package server

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"kickpong/game"
)

const (
	CodecJSON    = "json"
	CodecMsgpack = "msgpack"
)

// Codec 快照帧的线上编码
type Codec string

// ParseCodec 解析编码名称（大小写不敏感）
func ParseCodec(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case CodecJSON:
		return CodecJSON, nil
	case CodecMsgpack:
		return CodecMsgpack, nil
	}
	return "", fmt.Errorf("unknown codec %q (want json or msgpack)", name)
}

// Frame 发往观战端的一帧
type Frame struct {
	Type  string        `json:"type" msgpack:"type"`
	State game.Snapshot `json:"state" msgpack:"state"`
}

// Encode 编码快照，同时返回 WebSocket 消息类型
func (c Codec) Encode(snap game.Snapshot) ([]byte, int, error) {
	f := Frame{Type: "state", State: snap}
	switch c {
	case CodecMsgpack:
		b, err := msgpack.Marshal(&f)
		return b, websocket.BinaryMessage, err
	default:
		b, err := json.Marshal(f)
		return b, websocket.TextMessage, err
	}
}
