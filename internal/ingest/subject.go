package ingest

import (
	"regexp"
	"strings"
)

// SubjectInfo is the interaction-log fields recoverable from a subject line.
type SubjectInfo struct {
	Insured     string
	EventType   string
	CNPJ        string
	Policy      string
	Integration string
	Channel     string
}

var (
	// "APHICOR/ESSOR - RC-V | NOME SEGURADO - APOLICE"
	pipeNameRe = regexp.MustCompile(`\|\s*(.*?)\s*-\s*\d`)
	// "INSTALAÇÃO - 59 - Nome Segurado CNPJ"
	seqNameRe  = regexp.MustCompile(`-\s*\d+\s*-\s*(.*)`)
	bareCNPJRe = regexp.MustCompile(`\d{11,14}`)

	cnpjRe   = regexp.MustCompile(`\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}`)
	policyRe = regexp.MustCompile(`-\s*(\d+)\s*$`)
)

// ExtractSubject pulls interaction fields out of an e-mail subject line.
// Every field degrades to a best-effort value; the function never fails.
func ExtractSubject(subject string) SubjectInfo {
	subject = strings.TrimSpace(subject)
	info := SubjectInfo{
		Insured:     extractInsured(subject),
		EventType:   eventType(subject),
		Integration: "RCV",
		Channel:     "E-mail",
	}
	if m := cnpjRe.FindString(subject); m != "" {
		info.CNPJ = m
	}
	if m := policyRe.FindStringSubmatch(subject); m != nil {
		info.Policy = m[1]
	}
	return info
}

// eventType classifies the subject by its marker keywords.
func eventType(subject string) string {
	upper := strings.ToUpper(subject)
	switch {
	case strings.Contains(upper, "INSTALAÇÃO"):
		return "Instalação"
	case strings.Contains(upper, "CAIXA POSTAL"):
		return "Caixa Postal"
	case strings.Contains(upper, "ESSOR"), strings.Contains(upper, "APHICOR"):
		return "Abertura"
	default:
		return "Outros"
	}
}

// extractInsured tries the known subject shapes in order and falls back to
// the raw subject when none match.
func extractInsured(subject string) string {
	if m := pipeNameRe.FindStringSubmatch(subject); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := seqNameRe.FindStringSubmatch(subject); m != nil {
		// Strip a trailing bare CNPJ from the captured name.
		return strings.TrimSpace(bareCNPJRe.ReplaceAllString(m[1], ""))
	}
	if i := strings.LastIndex(subject, "|"); i >= 0 {
		return strings.TrimSpace(subject[i+1:])
	}
	return subject
}
