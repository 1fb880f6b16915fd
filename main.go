package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kickpong/server"
	"kickpong/term"
)

// kickpong 入口：加载配置，启动终端前端、观战 WebSocket 与调度循环
func main() {
	var (
		cfgPath  string
		addr     string
		logFile  string
		headless bool
	)
	flag.StringVar(&cfgPath, "config", "", "path to a TOML config file (defaults apply when empty)")
	flag.StringVar(&addr, "addr", "", "HTTP listen address, overrides server.addr, e.g. :8080")
	flag.StringVar(&logFile, "log", "", "log file path, overrides log.file")
	flag.BoolVar(&headless, "headless", false, "run without the terminal front end (spectators only)")
	flag.Parse()

	if err := run(cfgPath, addr, logFile, headless); err != nil {
		fmt.Fprintln(os.Stderr, "kickpong:", err)
		os.Exit(1)
	}
}

func run(cfgPath, addr, logFile string, headless bool) error {
	cfg, err := server.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	// 使用第三方 zap 日志库写入文件（带滚动），终端留给画面
	if err := server.InitLogger(cfg.Log.File, cfg.Log.Level); err != nil {
		return err
	}
	defer server.SyncLogger()

	// 优雅退出（Ctrl+C / SIGTERM / 终端 q 键）
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := server.NewHub()
	defer hub.Close()
	renderers := []server.Renderer{hub}

	var screen *term.Screen
	if !headless {
		if screen, err = term.NewScreen(server.Log); err != nil {
			return err
		}
		defer screen.Fini()
		renderers = append(renderers, screen)
	}

	room, err := server.NewRoom("local", cfg, server.MultiRenderer(renderers...))
	if err != nil {
		return err
	}
	if screen != nil {
		go screen.PollKeys(room.OnIntent, stop)
	}

	codec, _ := server.ParseCodec(cfg.Server.DefaultCodec)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.HandleWS(codec, cfg.Server.ViewerBuffer))
	// 管理与监控接口
	mux.HandleFunc("/admin/config", server.HandleAdminConfig(room))
	mux.HandleFunc("/metrics", server.HandleMetrics(room, hub))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		server.Log.Infof("kickpong listening on %s; spectate at ws://localhost%v/ws", cfg.Server.Addr, cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			server.Log.Errorf("listen: %v", err)
			stop()
		}
	}()

	runErr := room.Run(ctx)

	server.Log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		server.Log.Warnf("http shutdown: %v", err)
	}
	if runErr != nil {
		server.Log.Errorf("fatal: %v", runErr)
		return runErr
	}
	return nil
}
