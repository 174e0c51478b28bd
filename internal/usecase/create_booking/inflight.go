package create_booking

import (
	"sync"

	"github.com/m04kA/HLD-BookingGateway/internal/domain"
)

// InFlightGuard мьютекс состояния Submitting: на один выбор дат допускается
// не больше одной незавершенной отправки. Повторная попытка отклоняется
// локально, без сетевого запроса: дубль из той же сессии локальная
// проблема, а не забота сервера.
type InFlightGuard struct {
	mu     sync.Mutex
	states map[string]domain.FlowState
}

// NewInFlightGuard создает новый экземпляр защиты от повторной отправки
func NewInFlightGuard() *InFlightGuard {
	return &InFlightGuard{
		states: make(map[string]domain.FlowState),
	}
}

// Begin переводит выбор в состояние Submitting.
// Возвращает ErrSubmissionInFlight, если отправка уже выполняется.
func (g *InFlightGuard) Begin(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if state, ok := g.states[key]; ok && state.IsInFlight() {
		return ErrSubmissionInFlight
	}

	g.states[key] = domain.FlowSubmitting
	return nil
}

// Finish завершает отправку переходом Submitting -> Confirmed/Rejected и
// освобождает ключ. Поздний результат уже освобожденного ключа игнорируется:
// он относится к потоку, которого больше нет.
func (g *InFlightGuard) Finish(key string, confirmed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	state, ok := g.states[key]
	if !ok {
		return
	}

	next := domain.FlowRejected
	if confirmed {
		next = domain.FlowConfirmed
	}
	if !state.CanTransition(next) {
		return
	}

	delete(g.states, key)
}
