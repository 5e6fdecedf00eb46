package vjoy

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSource reads mouse and touch state from Ebitengine. Poll must be
// called from the game's Update.
type EbitenSource struct {
	touchIDs    []ebiten.TouchID
	releasedIDs []ebiten.TouchID
	touches     []Touch
}

// Poll implements PointerSource. Touches that lifted this tick are reported
// once at their last position with JustReleased set.
func (s *EbitenSource) Poll() PointerSnapshot {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	s.releasedIDs = inpututil.AppendJustReleasedTouchIDs(s.releasedIDs[:0])
	s.touches = s.touches[:0]

	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.touches = append(s.touches, Touch{
			ID:          int(id),
			Position:    Vec2{float64(x), float64(y)},
			JustPressed: inpututil.TouchPressDuration(id) == 1,
		})
	}
	for _, id := range s.releasedIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		s.touches = append(s.touches, Touch{
			ID:           int(id),
			Position:     Vec2{float64(x), float64(y)},
			JustReleased: true,
		})
	}

	mx, my := ebiten.CursorPosition()
	return PointerSnapshot{
		Touches: s.touches,
		Mouse: Mouse{
			Position:     Vec2{float64(mx), float64(my)},
			Present:      ebiten.IsFocused(),
			Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
			JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		},
	}
}
