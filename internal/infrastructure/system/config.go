// Package system provides infrastructure for application configuration.
// This includes loading the YAML config file (~/.roster.yaml) and
// validating it.
package system

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	apperrors "github.com/reglet-dev/roster/internal/application/errors"
	"github.com/reglet-dev/roster/internal/domain/services"
	"github.com/reglet-dev/roster/internal/domain/values"
)

// DefaultInputPath is the roster file read when nothing else is configured.
const DefaultInputPath = "estudiantes_notas.csv"

// Config represents the application configuration file.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Grades GradesConfig `yaml:"grades"`
}

// InputConfig locates the roster and names its columns.
type InputConfig struct {
	Path        string `yaml:"path" validate:"required"`
	NameColumn  string `yaml:"name_column" validate:"required"`
	GradeColumn string `yaml:"grade_column" validate:"required,nefield=NameColumn"`

	// Sheet selects the worksheet for .xlsx inputs (empty = first sheet)
	Sheet string `yaml:"sheet"`
}

// GradesConfig holds the inclusive bounds of a valid grade.
type GradesConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max" validate:"gtefield=Min"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=table json yaml"`

	// Highlight is an expression over name and grade, e.g. "grade < 3.0"
	Highlight string `yaml:"highlight"`

	Color bool `yaml:"color"`
}

// ConfigLoader loads configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultConfig returns a Config with the built-in defaults:
// estudiantes_notas.csv, Nombre/Nota columns, grades in [0.0, 5.0], table output.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Path:        DefaultInputPath,
			NameColumn:  services.DefaultNameColumn,
			GradeColumn: services.DefaultGradeColumn,
		},
		Grades: GradesConfig{
			Min: values.DefaultMinGrade,
			Max: values.DefaultMaxGrade,
		},
		Output: OutputConfig{
			Format: "table",
			Color:  true,
		},
	}
}

// Load loads the configuration from the specified path.
// If the file does not exist, returns DefaultConfig().
// Keys absent from the file keep their default values.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	//nolint:gosec // G304: path is the user-provided config file
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, apperrors.NewConfigurationError("system", "failed to read config", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.NewConfigurationError("system", "failed to parse config", err)
	}

	return cfg, nil
}

// Validate checks the configuration and returns an *apperrors.ValidationError
// listing every violated rule.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(yamlFieldName)

	err := validate.Struct(c)
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("failed to validate config: %w", err)
		}

		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fmt.Sprintf("%s: failed %q rule", fe.Namespace(), ruleName(fe)))
		}
		return apperrors.NewValidationError("config", strings.Join(details, "; "), details...)
	}

	if _, err := c.GradeRange(); err != nil {
		return apperrors.NewValidationError("grades", err.Error())
	}

	return nil
}

// GradeRange converts the bounds into a domain value.
func (c *Config) GradeRange() (values.GradeRange, error) {
	return values.NewGradeRange(c.Grades.Min, c.Grades.Max)
}

// Columns returns the configured header names.
func (c *Config) Columns() services.Columns {
	return services.Columns{Name: c.Input.NameColumn, Grade: c.Input.GradeColumn}
}

func yamlFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func ruleName(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
