package service

import "time"

// Timer отложенный вызов, который можно остановить
type Timer interface {
	Stop() bool
}

// Clock источник времени и планировщик отложенных вызовов.
// Продакшен-реализация — обёртка над time; тесты подставляют
// управляемые часы и прокручивают их вручную.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

type realClock struct{}

// NewClock возвращает часы на настоящем времени
func NewClock() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now().UTC() }

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
