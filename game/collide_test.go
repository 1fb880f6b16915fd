package game

import (
	"math"
	"testing"
)

// scenarioPair 球拍圆心 (0,300)、半径 35；球半径 6，组合半径 41
func scenarioPair(t *testing.T, ballPos, dir Vec2) (*Ball, *Paddle) {
	t.Helper()
	arena := Arena{Left: 0, Top: 0, Right: 600, Bottom: 600}
	cfg := testConfig().Paddle
	p := NewPaddle(arena, Left, cfg)
	p.position = 300
	b := NewBall(arena, 6, 5, 12)
	b.position = ballPos
	b.direction = dir
	return b, p
}

var testDeltas = HitDeltas{Bounce: 1, Kick: 2}

func TestResolveNoContactJustOutside(t *testing.T) {
	b, p := scenarioPair(t, Vec2{41.5, 300}, Vec2{-1, 0})
	out, err := Resolve(b, p, testDeltas)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out != NoContact {
		t.Fatalf("outcome = %v, want no_contact", out)
	}
	if b.position != (Vec2{41.5, 300}) || b.speed != 5 {
		t.Fatalf("ball changed without contact: %+v", b)
	}
}

func TestResolveHeadOnAtContact(t *testing.T) {
	b, p := scenarioPair(t, Vec2{41, 300}, Vec2{-1, 0})
	out, err := Resolve(b, p, testDeltas)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out != Bounced {
		t.Fatalf("outcome = %v, want bounced", out)
	}
	if d := b.position.Sub(p.Center()).Len(); !approx(d, 41, 1e-6) {
		t.Fatalf("distance after bounce = %v, want 41", d)
	}
	assertVec(t, "direction", b.direction, Vec2{1, 0}, 1e-12)
	if b.speed != 6 {
		t.Fatalf("speed = %v, want 6", b.speed)
	}
	if b.lastHit != Left {
		t.Fatalf("last hit = %v, want left", b.lastHit)
	}
}

func TestResolveSpeedClampedAtMax(t *testing.T) {
	b, p := scenarioPair(t, Vec2{41, 300}, Vec2{-1, 0})
	b.speed = 12
	if _, err := Resolve(b, p, testDeltas); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if b.speed != 12 {
		t.Fatalf("speed = %v, want clamped to 12", b.speed)
	}
}

func TestResolvePenetratedBacktracks(t *testing.T) {
	b, p := scenarioPair(t, Vec2{38, 300}, Vec2{-1, 0})
	out, err := Resolve(b, p, testDeltas)
	if err != nil || out != Bounced {
		t.Fatalf("outcome %v err %v", out, err)
	}
	assertVec(t, "position", b.position, Vec2{41, 300}, 1e-9)
}

func TestResolveObliqueIsMirrorReflection(t *testing.T) {
	theta := math.Pi / 6
	n := Vec2{math.Cos(theta), math.Sin(theta)}
	contact := Vec2{0, 300}.Add(n.Scale(39)) // 略微穿入
	in, _ := Normalize(Vec2{-1, -0.2})
	b, p := scenarioPair(t, contact, in)

	out, err := Resolve(b, p, testDeltas)
	if err != nil || out != Bounced {
		t.Fatalf("outcome %v err %v", out, err)
	}
	d := b.position.Sub(p.Center())
	if !approx(d.Len(), 41, 1e-6) {
		t.Fatalf("distance = %v, want 41", d.Len())
	}
	// 以判定时的法线为镜面：v' = v - 2(v·n)n
	want := in.Sub(n.Scale(2 * in.Dot(n)))
	assertVec(t, "direction", b.direction, want, 1e-9)
	if !approx(b.direction.Len(), 1, 1e-9) {
		t.Fatalf("direction not unit: %v", b.direction.Len())
	}
}

func TestResolveRepositionWhenMovingAway(t *testing.T) {
	b, p := scenarioPair(t, Vec2{38, 300}, Vec2{1, 0})
	out, err := Resolve(b, p, testDeltas)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out != Repositioned {
		t.Fatalf("outcome = %v, want repositioned", out)
	}
	// 取绝对值较小的修正量 +3，而不是穿过球拍的 -79
	assertVec(t, "position", b.position, Vec2{41, 300}, 1e-9)
	if b.direction != (Vec2{1, 0}) || b.speed != 5 || b.lastHit != NoSide {
		t.Fatalf("reposition must not change motion: %+v", b)
	}
}

func TestResolveRepositionOblique(t *testing.T) {
	dir, _ := Normalize(Vec2{0.3, 1})
	b, p := scenarioPair(t, Vec2{30, 320}, dir)
	out, err := Resolve(b, p, testDeltas)
	if err != nil || out != Repositioned {
		t.Fatalf("outcome %v err %v", out, err)
	}
	if d := b.position.Sub(p.Center()).Len(); !approx(d, 41, 1e-6) {
		t.Fatalf("distance = %v, want 41", d)
	}
}

func TestResolveKick(t *testing.T) {
	b, p := scenarioPair(t, Vec2{45, 310}, Vec2{-1, 0})
	p.TriggerKick()

	out, err := Resolve(b, p, testDeltas)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out != Kicked {
		t.Fatalf("outcome = %v, want kicked", out)
	}
	want, _ := Normalize(Vec2{45, 10})
	assertVec(t, "direction", b.direction, want, 1e-12)
	if b.speed != 7 {
		t.Fatalf("speed = %v, want 7", b.speed)
	}
	if p.kick.phase != KickCooldown {
		t.Fatalf("kick not consumed: %v", p.kick.phase)
	}
	// 位置不变：排斥场而非接触
	if b.position != (Vec2{45, 310}) {
		t.Fatalf("kick must not move the ball: %+v", b.position)
	}

	// 冷却中再次进入范围只会按普通碰撞处理
	b.position = Vec2{45, 310}
	b.direction = Vec2{-1, 0}
	if out, _ := Resolve(b, p, testDeltas); out != NoContact {
		t.Fatalf("outcome during cooldown = %v, want no_contact", out)
	}
}

func TestResolveKickTakesPriorityOverBody(t *testing.T) {
	b, p := scenarioPair(t, Vec2{40, 300}, Vec2{-1, 0})
	p.TriggerKick()
	out, err := Resolve(b, p, testDeltas)
	if err != nil || out != Kicked {
		t.Fatalf("outcome %v err %v", out, err)
	}
	assertVec(t, "direction", b.direction, Vec2{1, 0}, 0)
}

func TestResolveKickOutOfRange(t *testing.T) {
	b, p := scenarioPair(t, Vec2{57, 300}, Vec2{-1, 0})
	p.TriggerKick()
	if out, _ := Resolve(b, p, testDeltas); out != NoContact {
		t.Fatalf("outcome = %v, want no_contact beyond kick radius 56", out)
	}
	if p.kick.phase != KickActive {
		t.Fatalf("kick must stay armed, got %v", p.kick.phase)
	}
}

// 球拍贴下墙：场地 Bottom=295，球可用墙线 289，拍心 (600,260)
func pinnedPair(t *testing.T, ballPos, dir Vec2) (*Ball, *Paddle) {
	t.Helper()
	arena := NewArena(600, 300, 5)
	p := NewPaddle(arena, Right, testConfig().Paddle)
	p.position = arena.Bottom - p.radius
	b := NewBall(arena, 6, 5, 12)
	b.position = ballPos
	b.direction = dir
	return b, p
}

func TestConfineToField(t *testing.T) {
	pushed := 600 - math.Sqrt(41*41-29*29)
	cases := []struct {
		name     string
		pos, dir Vec2
		changed  bool
		wantPos  Vec2
		wantDir  Vec2
	}{
		{"inside", Vec2{560, 250}, Vec2{0, 1}, false, Vec2{560, 250}, Vec2{0, 1}},
		{"below wall line, pinned", Vec2{600, 301}, Vec2{0, 1}, true, Vec2{pushed, 289}, Vec2{0, -1}},
		{"below wall line, behind paddle", Vec2{603, 300}, Vec2{0.6, 0.8}, true, Vec2{600 + 600 - pushed, 289}, Vec2{0.6, -0.8}},
		{"above top line, far from paddle", Vec2{580, 8}, Vec2{-0.6, -0.8}, true, Vec2{580, 11}, Vec2{-0.6, 0.8}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, p := pinnedPair(t, c.pos, c.dir)
			if got := ConfineToField(b, p); got != c.changed {
				t.Fatalf("changed = %v, want %v", got, c.changed)
			}
			assertVec(t, "position", b.position, c.wantPos, 1e-9)
			assertVec(t, "direction", b.direction, c.wantDir, 1e-12)
			if d := b.position.Sub(p.Center()).Len(); c.changed && d < 41-1e-9 {
				t.Fatalf("ball still overlaps the paddle: distance %v", d)
			}
		})
	}
}
