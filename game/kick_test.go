package game

import "testing"

func TestKickLifecycle(t *testing.T) {
	k := NewKickState(50, 3, 2)
	if k.Phase() != KickReady {
		t.Fatalf("new kick must be ready, got %v", k.Phase())
	}
	if !k.Trigger() {
		t.Fatalf("trigger from ready must succeed")
	}
	if k.Phase() != KickActive || k.ActiveTicksLeft() != 3 {
		t.Fatalf("after trigger: %v left %d", k.Phase(), k.ActiveTicksLeft())
	}

	k.Advance()
	k.Advance()
	if k.Phase() != KickActive || k.ActiveTicksLeft() != 1 {
		t.Fatalf("mid window: %v left %d", k.Phase(), k.ActiveTicksLeft())
	}
	k.Advance()
	if k.Phase() != KickCooldown || k.CooldownTicksLeft() != 2 {
		t.Fatalf("window expired: %v cooldown %d", k.Phase(), k.CooldownTicksLeft())
	}
	if k.Trigger() {
		t.Fatalf("trigger during cooldown must be ignored")
	}
	k.Advance()
	if k.Phase() != KickCooldown || k.CooldownTicksLeft() != 1 {
		t.Fatalf("cooldown: %v left %d", k.Phase(), k.CooldownTicksLeft())
	}
	k.Advance()
	if k.Phase() != KickReady || k.CooldownTicksLeft() != 0 {
		t.Fatalf("cooldown done: %v left %d", k.Phase(), k.CooldownTicksLeft())
	}
	if !k.Trigger() {
		t.Fatalf("trigger after cooldown must succeed")
	}
}

func TestKickTriggerIdempotentWhileActive(t *testing.T) {
	k := NewKickState(50, 5, 10)
	k.Trigger()
	k.Advance()
	before := k
	if k.Trigger() {
		t.Fatalf("second trigger in the same window must not fire")
	}
	if k != before {
		t.Fatalf("second trigger changed state: %+v -> %+v", before, k)
	}
}

func TestKickConsume(t *testing.T) {
	k := NewKickState(50, 5, 4)
	k.Consume()
	if k.Phase() != KickReady {
		t.Fatalf("consume outside ACTIVE must be a no-op")
	}
	k.Trigger()
	k.Consume()
	if k.Phase() != KickCooldown || k.CooldownTicksLeft() != 4 || k.ActiveTicksLeft() != 0 {
		t.Fatalf("after consume: %+v", k)
	}
}

func TestKickWithoutCooldown(t *testing.T) {
	k := NewKickState(50, 1, 0)
	k.Trigger()
	k.Advance()
	if k.Phase() != KickReady {
		t.Fatalf("zero cooldown returns straight to ready, got %v", k.Phase())
	}
}

func TestPaddleTriggerKick(t *testing.T) {
	p := newTestPaddle(true)
	if !p.TriggerKick() {
		t.Fatalf("first trigger must fire")
	}
	if p.TriggerKick() {
		t.Fatalf("second trigger must not fire")
	}
	for i := 0; i < p.kick.activeTicks; i++ {
		p.AdvanceKick()
	}
	if p.Kick().Phase() != KickCooldown {
		t.Fatalf("phase = %v, want cooldown", p.Kick().Phase())
	}
}
