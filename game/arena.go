package game

// Arena 矩形场地边界，整局不可变；以值的形式复制给球和球拍
type Arena struct {
	Left   float64 `json:"left" msgpack:"left"`
	Top    float64 `json:"top" msgpack:"top"`
	Right  float64 `json:"right" msgpack:"right"`
	Bottom float64 `json:"bottom" msgpack:"bottom"`
}

// NewArena 由场地宽高和上下墙厚度构建边界（墙内侧为可活动区域）
func NewArena(width, height, wall float64) Arena {
	return Arena{Left: 0, Top: wall, Right: width, Bottom: height - wall}
}

func (a Arena) Width() float64  { return a.Right - a.Left }
func (a Arena) Height() float64 { return a.Bottom - a.Top }
func (a Arena) MidX() float64   { return (a.Left + a.Right) / 2 }
func (a Arena) MidY() float64   { return (a.Top + a.Bottom) / 2 }

// Center 场地中心，发球点
func (a Arena) Center() Vec2 { return Vec2{a.MidX(), a.MidY()} }
