// Package classifier derives a status label from the free-text content of
// interaction records using ordered keyword rules.
package classifier

import (
	"strings"

	"github.com/dmarinho/interacoes/internal/models"
	"github.com/dmarinho/interacoes/internal/query"
)

// rules are evaluated in order; the first rule with any matching keyword
// wins. Order matters: several keyword sets can co-occur in one text
// ("reunião marcada, aguardando retorno" is a scheduled meeting).
var rules = []struct {
	status   models.Status
	keywords []string
}{
	{models.StatusMeetingScheduled, []string{
		"reunião marcada", "reunião agendada", "agendada", "agendamento",
	}},
	{models.StatusAwaitingResponse, []string{
		"solicitei retorno", "aguardando retorno", "aguardando disponibilidade", "aguardando",
	}},
	{models.StatusInitialContact, []string{
		"enviei e-mail", "e-mail enviado", "enviei email", "contato inicial", "primeiro contato",
	}},
	{models.StatusFinished, []string{
		"finalizado", "concluído", "concluido", "encerrado",
	}},
}

// Classify maps free text to a status label. Total and pure: text that
// matches no rule is simply in progress.
func Classify(text string) models.Status {
	t := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.status
			}
		}
	}
	return models.StatusInProgress
}

// Tally classifies every record independently and returns a frequency table,
// most frequent first, ties broken by first-encountered order.
func Tally(records []models.Interaction) []models.StatusCount {
	counts := make(map[models.Status]int)
	var order []models.Status
	for _, rec := range records {
		s := Classify(rec.ContentLower)
		if _, seen := counts[s]; !seen {
			order = append(order, s)
		}
		counts[s]++
	}

	result := make([]models.StatusCount, 0, len(order))
	for _, s := range order {
		result = append(result, models.StatusCount{Status: s, Count: counts[s]})
	}
	// Insertion sort keeps equal counts in first-encountered order.
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && result[j].Count > result[j-1].Count; j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result
}

// CurrentStatus reports a single client's status: the classification of the
// three most recent contents joined together, so a fresh "reunião marcada"
// outweighs older notes.
func CurrentStatus(records []models.Interaction) models.Status {
	recent := query.MostRecent(records, 3)
	contents := make([]string, 0, len(recent))
	for _, rec := range recent {
		contents = append(contents, rec.Content)
	}
	return Classify(strings.Join(contents, " "))
}
