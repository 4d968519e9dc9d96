package output

import (
	"testing"

	"github.com/reglet-dev/roster/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHighlighter(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
		wantNil    bool
	}{
		{name: "empty disables highlighting", expression: "", wantNil: true},
		{name: "grade comparison", expression: "grade < 3.0"},
		{name: "name match", expression: "name == 'Ana'"},
		{name: "combined", expression: "grade >= 4.5 && name startsWith 'A'"},
		{name: "syntax error", expression: "grade <<< 3", wantErr: true},
		{name: "unknown variable", expression: "score > 3", wantErr: true},
		{name: "not boolean", expression: "grade + 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHighlighter(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid highlight expression")
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, h)
				return
			}
			assert.Equal(t, tt.expression, h.Expression())
		})
	}
}

func TestHighlighter_Match(t *testing.T) {
	h, err := NewHighlighter("grade < 3.0 || name == 'Luis'")
	require.NoError(t, err)

	assert.True(t, h.Match(entities.MustNewRecord("Eva", 2.5)))
	assert.True(t, h.Match(entities.MustNewRecord("Luis", 5)))
	assert.False(t, h.Match(entities.MustNewRecord("Ana", 3)))
}

func TestHighlighter_NilMatchesNothing(t *testing.T) {
	var h *Highlighter

	assert.False(t, h.Match(entities.MustNewRecord("Ana", 1)))
	assert.Equal(t, "", h.Expression())
}
