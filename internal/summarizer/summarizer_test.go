package summarizer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleCollapsesWhitespace(t *testing.T) {
	s := NewSimple(120)
	got := s.Summarize(context.Background(), "Prezados,\n\nsegue  a apólice.\n")
	assert.Equal(t, "Prezados, segue a apólice.", got)
}

func TestSimpleEmptyBodyUsesDefault(t *testing.T) {
	s := NewSimple(120)
	assert.Equal(t, DefaultContent, s.Summarize(context.Background(), ""))
	assert.Equal(t, DefaultContent, s.Summarize(context.Background(), "  \n\t "))
}

func TestSimpleTruncates(t *testing.T) {
	s := NewSimple(10)
	got := s.Summarize(context.Background(), strings.Repeat("a", 30))
	assert.Equal(t, strings.Repeat("a", 10)+"...", got)
}

func TestSimpleTruncatesByRunes(t *testing.T) {
	s := NewSimple(5)
	got := s.Summarize(context.Background(), "çãéíõ mais texto")
	assert.Equal(t, "çãéíõ...", got)
}

func TestSimpleShortBodyUnchanged(t *testing.T) {
	s := NewSimple(120)
	assert.Equal(t, "Tudo certo.", s.Summarize(context.Background(), "Tudo certo."))
}

func TestNewSimpleDefaultsLength(t *testing.T) {
	s := NewSimple(0)
	long := strings.Repeat("x", 200)
	got := s.Summarize(context.Background(), long)
	assert.Equal(t, strings.Repeat("x", 120)+"...", got)
}
