package input

import "github.com/hajimehoshi/ebiten/v2"

// DefaultBindings maps every control to its keys: arrows or WASD, Space, P, M.
var DefaultBindings = map[Control][]ebiten.Key{
	TurnLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	TurnRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	Thrust:    {ebiten.KeyArrowUp, ebiten.KeyW},
	Reverse:   {ebiten.KeyArrowDown, ebiten.KeyS},
	Fire:      {ebiten.KeySpace},
	Pause:     {ebiten.KeyP},
	Mute:      {ebiten.KeyM},
}

// Keyboard polls ebiten's key state.
type Keyboard struct {
	Bindings map[Control][]ebiten.Key
}

func NewKeyboard() *Keyboard {
	return &Keyboard{Bindings: DefaultBindings}
}

func (k *Keyboard) Held(c Control) bool {
	for _, key := range k.Bindings[c] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
