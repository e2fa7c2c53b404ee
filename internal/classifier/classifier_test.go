package classifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarinho/interacoes/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want models.Status
	}{
		{"Reunião marcada para amanhã", models.StatusMeetingScheduled},
		{"visita agendada com o corretor", models.StatusMeetingScheduled},
		{"agendamento confirmado", models.StatusMeetingScheduled},
		{"Solicitei retorno do segurado", models.StatusAwaitingResponse},
		{"aguardando disponibilidade da oficina", models.StatusAwaitingResponse},
		{"seguimos aguardando", models.StatusAwaitingResponse},
		{"Enviei e-mail com a proposta", models.StatusInitialContact},
		{"e-mail enviado ao corretor", models.StatusInitialContact},
		{"primeiro contato realizado", models.StatusInitialContact},
		{"processo finalizado", models.StatusFinished},
		{"atendimento concluído", models.StatusFinished},
		{"caso concluido sem pendências", models.StatusFinished},
		{"sinistro encerrado", models.StatusFinished},
		{"ligação sem novidades", models.StatusInProgress},
		{"", models.StatusInProgress},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.text), "text: %q", tt.text)
	}
}

// Rule order decides when keyword sets co-occur: a scheduled meeting beats a
// pending follow-up in the same note.
func TestClassifyPrecedence(t *testing.T) {
	assert.Equal(t, models.StatusMeetingScheduled, Classify("reunião marcada, aguardando retorno"))
	assert.Equal(t, models.StatusAwaitingResponse, Classify("aguardando retorno, processo finalizado"))
	assert.Equal(t, models.StatusInitialContact, Classify("contato inicial feito, caso encerrado"))
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, models.StatusMeetingScheduled, Classify("REUNIÃO MARCADA"))
	assert.Equal(t, models.StatusFinished, Classify("FINALIZADO"))
}

func withContent(contents ...string) []models.Interaction {
	records := make([]models.Interaction, 0, len(contents))
	for _, c := range contents {
		records = append(records, models.Interaction{Content: c, ContentLower: c})
	}
	return records
}

func TestTally(t *testing.T) {
	counts := Tally(withContent(
		"aguardando retorno",
		"finalizado",
		"aguardando retorno",
		"algo sem palavra-chave",
	))
	require.Len(t, counts, 3)
	assert.Equal(t, models.StatusCount{Status: models.StatusAwaitingResponse, Count: 2}, counts[0])
	// Tie between finished and in-progress resolves by first encounter.
	assert.Equal(t, models.StatusCount{Status: models.StatusFinished, Count: 1}, counts[1])
	assert.Equal(t, models.StatusCount{Status: models.StatusInProgress, Count: 1}, counts[2])
}

func TestTallyEmpty(t *testing.T) {
	assert.Empty(t, Tally(nil))
}

func TestCurrentStatusUsesThreeMostRecent(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC) }
	records := []models.Interaction{
		{Content: "reunião marcada", Timestamp: day(1), HasTimestamp: true},
		{Content: "tudo certo", Timestamp: day(2), HasTimestamp: true},
		{Content: "aguardando retorno", Timestamp: day(3), HasTimestamp: true},
		{Content: "sem novidades", Timestamp: day(4), HasTimestamp: true},
	}

	// The oldest note scheduled a meeting, but it is outside the
	// three-record window, so the pending follow-up wins.
	assert.Equal(t, models.StatusAwaitingResponse, CurrentStatus(records))
}
