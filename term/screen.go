// Package term 终端前端：用 tcell 绘制快照，并把按键翻译成球拍意图。
package term

import (
	"context"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"kickpong/game"
)

var (
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBall    = tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true)
	styleKick    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleScore   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePaddles = [2]tcell.Style{
		game.Left:  tcell.StyleDefault.Foreground(tcell.ColorRed),
		game.Right: tcell.StyleDefault.Foreground(tcell.ColorBlue),
	}
)

// Screen 基于 tcell 的渲染方
type Screen struct {
	s   tcell.Screen
	log *zap.SugaredLogger
}

// NewScreen 初始化真实终端
func NewScreen(log *zap.SugaredLogger) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return NewScreenWith(s, log), nil
}

// NewScreenWith 包装一个已初始化的 tcell.Screen（测试中使用 SimulationScreen）
func NewScreenWith(s tcell.Screen, log *zap.SugaredLogger) *Screen {
	s.HideCursor()
	s.Clear()
	return &Screen{s: s, log: log}
}

// Fini 恢复终端
func (sc *Screen) Fini() { sc.s.Fini() }

// viewport 场地坐标到字符格的映射；第 0 行留给比分
type viewport struct {
	arena      game.Arena
	cols, rows int
}

func (v viewport) cell(x, y float64) (int, int) {
	cx := (x - v.arena.Left) / v.arena.Width() * float64(v.cols-1)
	cy := (y-v.arena.Top)/v.arena.Height()*float64(v.rows-4) + 2
	return int(math.Round(cx)), int(math.Round(cy))
}

func (v viewport) rowsFor(radius float64) int {
	return int(math.Round(radius / v.arena.Height() * float64(v.rows-4)))
}

// Render 绘制一帧
func (sc *Screen) Render(_ context.Context, snap game.Snapshot) error {
	cols, rows := sc.s.Size()
	if cols < 10 || rows < 6 {
		return fmt.Errorf("terminal %dx%d too small", cols, rows)
	}
	v := viewport{arena: snap.Arena, cols: cols, rows: rows}
	sc.s.Clear()

	for x := 0; x < cols; x++ {
		sc.s.SetContent(x, 1, '▀', nil, styleWall)
		sc.s.SetContent(x, rows-1, '▄', nil, styleWall)
	}
	score := fmt.Sprintf("%d : %d", snap.Score[game.Left], snap.Score[game.Right])
	sc.text((cols-len(score))/2, 0, score, styleScore)

	for _, e := range snap.Entities {
		switch e.Kind {
		case game.EntityKickIndicator:
			if e.KickPhase == game.KickActive {
				sc.drawBar(v, e, ')', '(', styleKick, 1)
			}
		case game.EntityPaddle:
			st := stylePaddles[e.Side]
			if e.KickPhase == game.KickCooldown {
				st = st.Dim(true)
			}
			sc.drawBar(v, e, '█', '█', st, 0)
		}
	}
	if b, ok := snap.Find(game.EntityBall, game.NoSide); ok {
		st := styleBall
		// 击球闪色：沿用最后击球方的颜色
		if b.LastHit == game.Left || b.LastHit == game.Right {
			st = stylePaddles[b.LastHit].Bold(true)
		}
		x, y := v.cell(b.X, b.Y)
		sc.s.SetContent(x, y, '●', nil, st)
	}
	sc.s.Show()
	return nil
}

// drawBar 以竖条表示圆形实体；offset 为向场内偏移的列数
func (sc *Screen) drawBar(v viewport, e game.EntityState, leftCh, rightCh rune, st tcell.Style, offset int) {
	x, y := v.cell(e.X, e.Y)
	ch := leftCh
	if e.Side == game.Right {
		x -= offset
		ch = rightCh
	} else {
		x += offset
	}
	h := v.rowsFor(e.Radius)
	for dy := -h; dy <= h; dy++ {
		if yy := y + dy; yy > 1 && yy < v.rows-1 {
			sc.s.SetContent(x, yy, ch, nil, st)
		}
	}
}

func (sc *Screen) text(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		sc.s.SetContent(x+i, y, r, nil, st)
	}
}
