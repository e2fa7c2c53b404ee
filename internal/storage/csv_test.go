package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarinho/interacoes/internal/models"
)

func writeCSVFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "interacoes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVSourceListRows(t *testing.T) {
	path := writeCSVFixture(t,
		"data_hora,segurado,canal,conteudo,tipo_evento,integracao\n"+
			"01/03/2024 10:00,Acme,Email,Reunião marcada,Inicio,RCV\n"+
			"45000,Beta,Phone,Aguardando retorno,Retorno,APP\n")

	rows, err := NewCSVSource(path).ListRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, models.StringCell("01/03/2024 10:00"), rows[0].Cell(models.ColDateTime))
	assert.Equal(t, models.StringCell("Acme"), rows[0].Cell(models.ColClient))
	assert.Equal(t, models.StringCell("45000"), rows[1].Cell(models.ColDateTime))
	assert.Equal(t, models.StringCell("APP"), rows[1].Cell(models.ColIntegration))
}

func TestCSVSourceShortRecordLeavesColumnsAbsent(t *testing.T) {
	path := writeCSVFixture(t,
		"data_hora,segurado,canal,conteudo,tipo_evento,integracao\n"+
			"01/03/2024 10:00,Acme\n")

	rows, err := NewCSVSource(path).ListRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.CellAbsent, rows[0].Cell(models.ColChannel).Kind)
}

func TestCSVSourceEmptyFile(t *testing.T) {
	path := writeCSVFixture(t, "")
	rows, err := NewCSVSource(path).ListRows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCSVSourceMissingFile(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv")).ListRows(context.Background())
	assert.Error(t, err)
}
