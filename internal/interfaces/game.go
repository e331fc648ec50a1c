package interfaces

// RecordKeeper хранит лучший результат между сессиями.
type RecordKeeper interface {
	// Submit offers a finished score and reports whether it became the new record.
	Submit(score int) bool
}
