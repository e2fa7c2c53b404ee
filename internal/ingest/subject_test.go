package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    SubjectInfo
	}{
		{
			name:    "pipe pattern with policy",
			subject: "APHICOR/ESSOR - RC-V | ACME CORRETORA - 123456",
			want: SubjectInfo{
				Insured:     "ACME CORRETORA",
				EventType:   "Abertura",
				Policy:      "123456",
				Integration: "RCV",
				Channel:     "E-mail",
			},
		},
		{
			name:    "installation with sequence number and bare cnpj",
			subject: "INSTALAÇÃO - 59 - Acme Seguros 12345678000190",
			want: SubjectInfo{
				Insured:     "Acme Seguros",
				EventType:   "Instalação",
				Integration: "RCV",
				Channel:     "E-mail",
			},
		},
		{
			name:    "formatted cnpj is captured",
			subject: "ESSOR | ACME LTDA 12.345.678/0001-90",
			want: SubjectInfo{
				// The pipe pattern stops at the dash before the CNPJ
				// check digits.
				Insured:     "ACME LTDA 12.345.678/0001",
				EventType:   "Abertura",
				CNPJ:        "12.345.678/0001-90",
				Policy:      "90",
				Integration: "RCV",
				Channel:     "E-mail",
			},
		},
		{
			name:    "mailbox notice falls back to whole subject",
			subject: "CAIXA POSTAL cheia",
			want: SubjectInfo{
				Insured:     "CAIXA POSTAL cheia",
				EventType:   "Caixa Postal",
				Integration: "RCV",
				Channel:     "E-mail",
			},
		},
		{
			name:    "unknown subject",
			subject: "Re: proposta",
			want: SubjectInfo{
				Insured:     "Re: proposta",
				EventType:   "Outros",
				Integration: "RCV",
				Channel:     "E-mail",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSubject(tt.subject))
		})
	}
}
