package term

import (
	"github.com/gdamore/tcell/v2"

	"kickpong/game"
)

// Action 按键对应的控制动作
type Action uint8

const (
	ActionNone Action = iota
	ActionIntents
	ActionQuit
)

// MapKey 把按键翻译为意图。终端没有按键抬起事件，停止靠再按一次同向键或专用停止键。
//
//	左拍：w 上  s 下  x 停  d 踢
//	右拍：↑ 上  ↓ 下  Enter 停  ← 踢
//	q / Esc / Ctrl-C 退出
func MapKey(ev *tcell.EventKey) (Action, []game.Intent) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, nil
	case tcell.KeyUp:
		return ActionIntents, []game.Intent{game.PaddleMoveStart(game.Right, -1)}
	case tcell.KeyDown:
		return ActionIntents, []game.Intent{game.PaddleMoveStart(game.Right, +1)}
	case tcell.KeyEnter:
		return ActionIntents, stopBoth(game.Right)
	case tcell.KeyLeft:
		return ActionIntents, []game.Intent{game.PaddleKickTrigger(game.Right)}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ActionQuit, nil
		case 'w', 'W':
			return ActionIntents, []game.Intent{game.PaddleMoveStart(game.Left, -1)}
		case 's', 'S':
			return ActionIntents, []game.Intent{game.PaddleMoveStart(game.Left, +1)}
		case 'x', 'X':
			return ActionIntents, stopBoth(game.Left)
		case 'd', 'D':
			return ActionIntents, []game.Intent{game.PaddleKickTrigger(game.Left)}
		}
	}
	return ActionNone, nil
}

// stopBoth 不知道当前方向，两个方向都松开；与当前方向不符的那条无效果
func stopBoth(side game.Side) []game.Intent {
	return []game.Intent{game.PaddleMoveStop(side, -1), game.PaddleMoveStop(side, +1)}
}

// PollKeys 读取终端事件直到退出键或屏幕关闭；emit 在本协程内调用
func (sc *Screen) PollKeys(emit func(game.Intent), quit func()) {
	for {
		ev := sc.s.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Fini 之后返回 nil
			return
		case *tcell.EventResize:
			sc.s.Sync()
		case *tcell.EventKey:
			action, intents := MapKey(ev)
			switch action {
			case ActionQuit:
				sc.log.Info("quit requested from terminal")
				quit()
				return
			case ActionIntents:
				for _, in := range intents {
					emit(in)
				}
			}
		}
	}
}
