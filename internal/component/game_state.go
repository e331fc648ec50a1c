package component

// GameState — компонент для хранения состояния партии
type GameState struct {
	Score         int
	Record        int
	NewRecord     bool // рекорд побит в текущей партии
	GameOver      bool
	GameOverTimer int // кадров до перезапуска
	Paused        bool
	Muted         bool
}
