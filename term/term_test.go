package term

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"kickpong/game"
)

func newSimScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(80, 24)
	return s, NewScreenWith(s, zap.NewNop().Sugar())
}

func testSnapshot(t *testing.T) game.Snapshot {
	t.Helper()
	sim, err := game.NewSimulation(game.Config{
		Arena:      game.NewArena(600, 300, 5),
		BallRadius: 6,
		MinSpeed:   5,
		MaxSpeed:   12,
		Paddle: game.PaddleConfig{
			Radius: 35, MoveSpeed: 6, ToggleStop: true,
			KickRadius: 50, KickActiveTicks: 8, KickCooldownTicks: 60,
		},
		Deltas: game.HitDeltas{Bounce: 1, Kick: 2},
	})
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	sim.Enqueue(game.PaddleKickTrigger(game.Left))
	if err := sim.Tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}
	return sim.Snapshot()
}

func countRune(s tcell.SimulationScreen, r rune) int {
	cells, _, _ := s.GetContents()
	n := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == r {
			n++
		}
	}
	return n
}

func TestRenderDrawsEntities(t *testing.T) {
	s, sc := newSimScreen(t)
	if err := sc.Render(context.Background(), testSnapshot(t)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if n := countRune(s, '●'); n != 1 {
		t.Fatalf("ball cells = %d, want 1", n)
	}
	if n := countRune(s, '█'); n == 0 {
		t.Fatalf("no paddle cells drawn")
	}
	// 左拍技能激活，右拍未激活
	if countRune(s, ')') == 0 {
		t.Fatalf("active kick indicator not drawn")
	}
	if countRune(s, '(') != 0 {
		t.Fatalf("ready kick must not be drawn")
	}
	cells, w, _ := s.GetContents()
	row := ""
	for x := 0; x < w; x++ {
		if rs := cells[x].Runes; len(rs) > 0 {
			row += string(rs[0])
		}
	}
	if want := "0 : 0"; !strings.Contains(row, want) {
		t.Fatalf("score row %q missing %q", row, want)
	}
}

func TestRenderRejectsTinyTerminal(t *testing.T) {
	s, sc := newSimScreen(t)
	s.SetSize(5, 3)
	if err := sc.Render(context.Background(), testSnapshot(t)); err == nil {
		t.Fatalf("expected error for a 5x3 terminal")
	}
}

func TestMapKey(t *testing.T) {
	cases := []struct {
		name   string
		ev     *tcell.EventKey
		action Action
		want   []game.Intent
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionIntents,
			[]game.Intent{game.PaddleMoveStart(game.Left, -1)}},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), ActionIntents,
			[]game.Intent{game.PaddleMoveStart(game.Left, +1)}},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), ActionIntents,
			[]game.Intent{game.PaddleKickTrigger(game.Left)}},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionIntents,
			[]game.Intent{game.PaddleMoveStop(game.Left, -1), game.PaddleMoveStop(game.Left, +1)}},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionIntents,
			[]game.Intent{game.PaddleMoveStart(game.Right, -1)}},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionIntents,
			[]game.Intent{game.PaddleMoveStart(game.Right, +1)}},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionIntents,
			[]game.Intent{game.PaddleKickTrigger(game.Right)}},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit, nil},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit, nil},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			action, got := MapKey(c.ev)
			if action != c.action {
				t.Fatalf("action = %v, want %v", action, c.action)
			}
			if len(got) != len(c.want) {
				t.Fatalf("intents = %+v, want %+v", got, c.want)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Fatalf("intent %d = %+v, want %+v", i, got[i], c.want[i])
				}
			}
		})
	}
}

func TestPollKeysUntilQuit(t *testing.T) {
	s, sc := newSimScreen(t)
	s.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	s.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var got []game.Intent
	quit := false
	sc.PollKeys(func(in game.Intent) { got = append(got, in) }, func() { quit = true })

	if !quit {
		t.Fatalf("quit callback not invoked")
	}
	want := []game.Intent{game.PaddleMoveStart(game.Left, -1), game.PaddleMoveStart(game.Right, +1)}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("intents = %+v, want %+v", got, want)
	}
}
