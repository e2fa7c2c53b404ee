package models

// Status is the interpreted state of a client relationship, derived from the
// free-text content of recent interactions. Exactly five values exist.
type Status string

const (
	StatusMeetingScheduled Status = "meeting_scheduled"
	StatusAwaitingResponse Status = "awaiting_response"
	StatusInitialContact   Status = "initial_contact"
	StatusFinished         Status = "finished"
	StatusInProgress       Status = "in_progress"
)

// Label returns the user-facing Portuguese label for the status.
func (s Status) Label() string {
	switch s {
	case StatusMeetingScheduled:
		return "Reunião marcada"
	case StatusAwaitingResponse:
		return "Aguardando retorno"
	case StatusInitialContact:
		return "Contato inicial"
	case StatusFinished:
		return "Finalizado"
	default:
		return "Em andamento"
	}
}
