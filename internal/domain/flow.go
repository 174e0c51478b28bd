package domain

// FlowState состояние потока бронирования.
// Движком состояний владеет слой, ведущий пользователя через бронирование;
// сами переходы чистые и проверяются таблицей allowedTransitions.
type FlowState string

const (
	FlowSelectingDates FlowState = "selecting_dates"
	FlowValidating     FlowState = "validating"
	FlowValid          FlowState = "valid"
	FlowInvalid        FlowState = "invalid"
	FlowSubmitting     FlowState = "submitting"
	FlowConfirmed      FlowState = "confirmed"
	FlowRejected       FlowState = "rejected"
)

// allowedTransitions допустимые переходы между состояниями потока
var allowedTransitions = map[FlowState][]FlowState{
	FlowSelectingDates: {FlowValidating},
	FlowValidating:     {FlowValid, FlowInvalid},
	FlowValid:          {FlowSubmitting, FlowValidating},
	FlowInvalid:        {FlowSelectingDates, FlowValidating},
	FlowSubmitting:     {FlowConfirmed, FlowRejected},
	FlowRejected:       {FlowSelectingDates},
	FlowConfirmed:      {},
}

// CanTransition returns true if the flow may move from one state to another
func (s FlowState) CanTransition(to FlowState) bool {
	for _, next := range allowedTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the flow cannot leave this state
func (s FlowState) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// IsInFlight returns true if a submission is outstanding in this state.
// Пока поток находится в этом состоянии, повторная отправка того же выбора
// должна подавляться локально, без обращения к серверу.
func (s FlowState) IsInFlight() bool {
	return s == FlowSubmitting
}
