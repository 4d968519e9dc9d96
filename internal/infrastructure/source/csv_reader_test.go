package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/reglet-dev/roster/internal/application/errors"
	"github.com/reglet-dev/roster/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestCSVReader_ReadRowsFromReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []entities.Row
	}{
		{
			name:  "basic",
			input: "Nombre,Nota\nAna,4.5\nLuis,6.0\n",
			want: []entities.Row{
				{"Nombre": "Ana", "Nota": "4.5"},
				{"Nombre": "Luis", "Nota": "6.0"},
			},
		},
		{
			name:  "column order and extra columns",
			input: "Curso,Nota,Nombre\nB,3,Eva\n",
			want:  []entities.Row{{"Curso": "B", "Nota": "3", "Nombre": "Eva"}},
		},
		{
			name:  "short row lacks trailing fields",
			input: "Nombre,Nota\nAna\n",
			want:  []entities.Row{{"Nombre": "Ana"}},
		},
		{
			name:  "long row ignores extra fields",
			input: "Nombre,Nota\nAna,4,extra\n",
			want:  []entities.Row{{"Nombre": "Ana", "Nota": "4"}},
		},
		{
			name:  "blank lines skipped",
			input: "Nombre,Nota\n\nAna,4\n\n",
			want:  []entities.Row{{"Nombre": "Ana", "Nota": "4"}},
		},
		{
			name:  "quoted fields",
			input: "Nombre,Nota\n\"Pérez, Ana\",\"4.5\"\n",
			want:  []entities.Row{{"Nombre": "Pérez, Ana", "Nota": "4.5"}},
		},
		{
			name:  "byte order mark stripped",
			input: "\ufeffNombre,Nota\nAna,4\n",
			want:  []entities.Row{{"Nombre": "Ana", "Nota": "4"}},
		},
		{
			name:  "crlf line endings",
			input: "Nombre,Nota\r\nAna,4\r\n",
			want:  []entities.Row{{"Nombre": "Ana", "Nota": "4"}},
		},
		{
			name:  "header only",
			input: "Nombre,Nota\n",
			want:  nil,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	reader := NewCSVReader()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := reader.ReadRowsFromReader(context.Background(), strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestCSVReader_InvalidUTF8(t *testing.T) {
	input := "Nombre,Nota\nAna,4\n\xff\xfe,3\n"

	_, err := NewCSVReader().ReadRowsFromReader(context.Background(), strings.NewReader(input))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid UTF-8 at line 3")
}

func TestCSVReader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCSVReader().ReadRowsFromReader(ctx, strings.NewReader("Nombre,Nota\nAna,4\n"))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCSVReader_ReadRows_File(t *testing.T) {
	path := writeFile(t, "estudiantes_notas.csv", "Nombre,Nota\nAna,4.5\n")

	rows, err := NewCSVReader().ReadRows(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, []entities.Row{{"Nombre": "Ana", "Nota": "4.5"}}, rows)
}

func TestCSVReader_ReadRows_NotFound(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.csv")},
		{"missing directory", filepath.Join(t.TempDir(), "nope", "missing.csv")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCSVReader().ReadRows(context.Background(), tt.path)

			require.Error(t, err)
			assert.True(t, apperrors.IsNotFound(err))

			var se *apperrors.SourceError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.path, se.Path)
		})
	}
}

func TestCSVReader_ReadRows_Unreadable(t *testing.T) {
	path := writeFile(t, "bad.csv", "Nombre,Nota\n\xff,4\n")

	_, err := NewCSVReader().ReadRows(context.Background(), path)

	var se *apperrors.SourceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, apperrors.SourceUnreadable, se.Kind)
}

func TestCSVReader_ReadRows_Directory(t *testing.T) {
	dir := t.TempDir()

	_, err := NewCSVReader().ReadRows(context.Background(), dir)

	var se *apperrors.SourceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, apperrors.SourceUnreadable, se.Kind)
}

func TestCSVReader_ReadRows_FollowsSymlink(t *testing.T) {
	target := writeFile(t, "compartido.csv", "Nombre,Nota\nAna,4.5\n")

	link := filepath.Join(t.TempDir(), "estudiantes_notas.csv")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	rows, err := NewCSVReader().ReadRows(context.Background(), link)
	require.NoError(t, err)
	assert.Equal(t, []entities.Row{{"Nombre": "Ana", "Nota": "4.5"}}, rows)
}
