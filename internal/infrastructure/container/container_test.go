package container

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/reglet-dev/roster/internal/application/errors"
	"github.com/reglet-dev/roster/internal/infrastructure/output"
	"github.com/reglet-dev/roster/internal/infrastructure/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)

	req := c.GradeReportRequest()
	assert.Equal(t, "estudiantes_notas.csv", req.InputPath)
	assert.Equal(t, "Nombre", req.Columns.Name)
	assert.Equal(t, "Nota", req.Columns.Grade)
	assert.Equal(t, 0.0, req.Range.Min())
	assert.Equal(t, 5.0, req.Range.Max())
	assert.NotNil(t, c.Logger())
	assert.Equal(t, system.DefaultConfig(), c.Config())
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := system.DefaultConfig()
	cfg.Grades.Min = 9

	_, err := New(Options{Config: cfg})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestContainer_Formatter(t *testing.T) {
	cfg := system.DefaultConfig()
	cfg.Output.Color = false

	c, err := New(Options{Config: cfg})
	require.NoError(t, err)

	f, err := c.Formatter(&bytes.Buffer{})
	require.NoError(t, err)
	table, ok := f.(*output.TableFormatter)
	require.True(t, ok)
	assert.False(t, table.EnableColor)

	cfg.Output.Highlight = "grade <"
	_, err = c.Formatter(&bytes.Buffer{})
	assert.Error(t, err)
}

func TestContainer_WiredPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notas.csv")
	require.NoError(t, os.WriteFile(path, []byte("Nombre,Nota\nLuis,6.0\nAna,4.5\nEva,abc\n"), 0600))

	cfg := system.DefaultConfig()
	cfg.Input.Path = path

	var logs bytes.Buffer
	c, err := New(Options{Config: cfg, Logger: slog.New(slog.NewTextHandler(&logs, nil))})
	require.NoError(t, err)

	rep := c.GradeReportUseCase().Execute(context.Background(), c.GradeReportRequest()).Report

	require.Equal(t, 1, rep.Count())
	assert.Equal(t, "Ana", rep.Records[0].Name())
	assert.Contains(t, logs.String(), "student=Luis")
	assert.NotContains(t, logs.String(), "Eva")
}
