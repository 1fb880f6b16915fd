package game

// KickPhase 踢球技能阶段
type KickPhase uint8

const (
	KickReady KickPhase = iota
	KickActive
	KickCooldown
)

func (p KickPhase) String() string {
	switch p {
	case KickReady:
		return "ready"
	case KickActive:
		return "active"
	case KickCooldown:
		return "cooldown"
	}
	return "unknown"
}

// KickState 球拍的限时排斥技能状态机：READY → ACTIVE → COOLDOWN → READY
type KickState struct {
	phase             KickPhase
	activeTicksLeft   int
	cooldownTicksLeft int
	radius            float64

	activeTicks   int
	cooldownTicks int
}

// NewKickState 创建处于 READY 的技能
func NewKickState(radius float64, activeTicks, cooldownTicks int) KickState {
	return KickState{
		phase:         KickReady,
		radius:        radius,
		activeTicks:   activeTicks,
		cooldownTicks: cooldownTicks,
	}
}

func (k *KickState) Phase() KickPhase       { return k.phase }
func (k *KickState) Radius() float64        { return k.radius }
func (k *KickState) ActiveTicksLeft() int   { return k.activeTicksLeft }
func (k *KickState) CooldownTicksLeft() int { return k.cooldownTicksLeft }

// Trigger 仅在 READY 且冷却归零时进入 ACTIVE；返回是否生效
func (k *KickState) Trigger() bool {
	if k.phase != KickReady || k.cooldownTicksLeft != 0 {
		return false
	}
	k.phase = KickActive
	k.activeTicksLeft = k.activeTicks
	return true
}

// Advance 推进一个 Tick
func (k *KickState) Advance() {
	switch k.phase {
	case KickActive:
		k.activeTicksLeft--
		if k.activeTicksLeft <= 0 {
			k.startCooldown()
		}
	case KickCooldown:
		k.cooldownTicksLeft--
		if k.cooldownTicksLeft <= 0 {
			k.cooldownTicksLeft = 0
			k.phase = KickReady
		}
	}
}

// Consume 一次成功的踢球消耗掉 ACTIVE 窗口
func (k *KickState) Consume() {
	if k.phase == KickActive {
		k.startCooldown()
	}
}

func (k *KickState) startCooldown() {
	k.activeTicksLeft = 0
	k.cooldownTicksLeft = k.cooldownTicks
	k.phase = KickCooldown
	if k.cooldownTicks <= 0 {
		k.cooldownTicksLeft = 0
		k.phase = KickReady
	}
}
