package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"kickpong/game"
)

// Config 一局游戏的全部配置，开局加载后不可变
type Config struct {
	Arena  ArenaConfig  `toml:"arena" json:"arena"`
	Ball   BallConfig   `toml:"ball" json:"ball"`
	Paddle PaddleConfig `toml:"paddle" json:"paddle"`
	Kick   KickConfig   `toml:"kick" json:"kick"`
	Loop   LoopConfig   `toml:"loop" json:"loop"`
	Server ServerConfig `toml:"server" json:"server"`
	Log    LogConfig    `toml:"log" json:"log"`
}

type ArenaConfig struct {
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
	Wall   float64 `toml:"wall" json:"wall"` // 上下墙厚度
}

type BallConfig struct {
	Radius      float64 `toml:"radius" json:"radius"`
	MinSpeed    float64 `toml:"min_speed" json:"minSpeed"` // 每 Tick 移动距离
	MaxSpeed    float64 `toml:"max_speed" json:"maxSpeed"`
	BounceDelta float64 `toml:"bounce_delta" json:"bounceDelta"`
}

type PaddleConfig struct {
	Radius     float64 `toml:"radius" json:"radius"`
	MoveSpeed  float64 `toml:"move_speed" json:"moveSpeed"`
	ToggleStop bool    `toml:"toggle_stop" json:"toggleStop"`
}

type KickConfig struct {
	Radius        float64 `toml:"radius" json:"radius"`
	SpeedDelta    float64 `toml:"speed_delta" json:"speedDelta"`
	ActiveTicks   int     `toml:"active_ticks" json:"activeTicks"`
	CooldownTicks int     `toml:"cooldown_ticks" json:"cooldownTicks"`
}

type LoopConfig struct {
	FrameRate float64 `toml:"frame_rate" json:"frameRate"` // 每秒帧数（渲染与输入频率）
	Substeps  int     `toml:"substeps" json:"substeps"`    // 每帧物理 Tick 数
}

type ServerConfig struct {
	Addr         string `toml:"addr" json:"addr"`
	ViewerBuffer int    `toml:"viewer_buffer" json:"viewerBuffer"`
	IntentBuffer int    `toml:"intent_buffer" json:"intentBuffer"`
	DefaultCodec string `toml:"default_codec" json:"defaultCodec"`
}

type LogConfig struct {
	File  string `toml:"file" json:"file"`
	Level string `toml:"level" json:"level"`
}

// DefaultConfig 默认参数：600x300 场地、5 像素墙，约 64 帧每秒
func DefaultConfig() Config {
	return Config{
		Arena:  ArenaConfig{Width: 600, Height: 300, Wall: 5},
		Ball:   BallConfig{Radius: 6, MinSpeed: 5, MaxSpeed: 12, BounceDelta: 1},
		Paddle: PaddleConfig{Radius: 35, MoveSpeed: 6, ToggleStop: true},
		Kick:   KickConfig{Radius: 50, SpeedDelta: 2, ActiveTicks: 8, CooldownTicks: 90},
		Loop:   LoopConfig{FrameRate: 64, Substeps: 1},
		Server: ServerConfig{Addr: ":8080", ViewerBuffer: 64, IntentBuffer: 256, DefaultCodec: CodecJSON},
		Log:    LogConfig{File: "app.log", Level: "info"},
	}
}

// LoadConfig 在默认值之上叠加 TOML 文件；path 为空时直接返回默认值
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return cfg, fmt.Errorf("load config %s: unknown keys %v", path, undec)
	}
	return cfg, cfg.Validate()
}

// Validate 校验循环与服务参数，并交由 game 校验物理参数
func (c Config) Validate() error {
	var errs []error
	if c.Loop.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.frame_rate %v must be positive", c.Loop.FrameRate))
	}
	if c.Loop.Substeps < 1 {
		errs = append(errs, fmt.Errorf("loop.substeps %d must be at least 1", c.Loop.Substeps))
	}
	if c.Arena.Wall < 0 {
		errs = append(errs, fmt.Errorf("arena.wall %v is negative", c.Arena.Wall))
	}
	if c.Server.ViewerBuffer < 1 || c.Server.IntentBuffer < 1 {
		errs = append(errs, errors.New("server buffers must be positive"))
	}
	if _, err := ParseCodec(c.Server.DefaultCodec); err != nil {
		errs = append(errs, err)
	}
	if err := c.GameConfig().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// GameConfig 转换为核心模拟参数
func (c Config) GameConfig() game.Config {
	return game.Config{
		Arena:      game.NewArena(c.Arena.Width, c.Arena.Height, c.Arena.Wall),
		BallRadius: c.Ball.Radius,
		MinSpeed:   c.Ball.MinSpeed,
		MaxSpeed:   c.Ball.MaxSpeed,
		Paddle: game.PaddleConfig{
			Radius:            c.Paddle.Radius,
			MoveSpeed:         c.Paddle.MoveSpeed,
			ToggleStop:        c.Paddle.ToggleStop,
			KickRadius:        c.Kick.Radius,
			KickActiveTicks:   c.Kick.ActiveTicks,
			KickCooldownTicks: c.Kick.CooldownTicks,
		},
		Deltas: game.HitDeltas{Bounce: c.Ball.BounceDelta, Kick: c.Kick.SpeedDelta},
	}
}

// FramePeriod 每帧时长
func (c Config) FramePeriod() time.Duration {
	return time.Duration(float64(time.Second) / c.Loop.FrameRate)
}
