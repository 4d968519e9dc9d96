package services

import (
	"testing"

	"github.com/reglet-dev/roster/internal/domain/entities"
	"github.com/reglet-dev/roster/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(records []entities.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name()
	}
	return out
}

func Test_SortByName(t *testing.T) {
	input := []entities.Record{
		entities.MustNewRecord("Luis", 3),
		entities.MustNewRecord("Ana", 4.5),
		entities.MustNewRecord("Eva", 2),
	}

	sorted := SortByName(input)

	assert.Equal(t, []string{"Ana", "Eva", "Luis"}, names(sorted))
	assert.Equal(t, []string{"Luis", "Ana", "Eva"}, names(input), "input must not be reordered")
}

func Test_SortByName_StableOnTies(t *testing.T) {
	input := []entities.Record{
		entities.MustNewRecord("Eva", 1),
		entities.MustNewRecord("Ana", 2),
		entities.MustNewRecord("Eva", 3),
		entities.MustNewRecord("Ana", 4),
	}

	sorted := SortByName(input)

	require.Len(t, sorted, 4)
	grades := []float64{sorted[0].Grade(), sorted[1].Grade(), sorted[2].Grade(), sorted[3].Grade()}
	assert.Equal(t, []float64{2, 4, 1, 3}, grades)
}

func Test_SortByName_CodePointOrder(t *testing.T) {
	input := []entities.Record{
		entities.MustNewRecord("ana", 1),
		entities.MustNewRecord("Álvaro", 1),
		entities.MustNewRecord("Zoe", 1),
		entities.MustNewRecord("Ana", 1),
	}

	// Upper case sorts before lower case, accented letters after ASCII.
	assert.Equal(t, []string{"Ana", "Zoe", "ana", "Álvaro"}, names(SortByName(input)))
}

func Test_SortByName_Empty(t *testing.T) {
	assert.Empty(t, SortByName(nil))
}

func Test_SortByName_DoesNotDependOnRange(t *testing.T) {
	rec, err := entities.NewRecord("Luis", 8, values.MustNewGradeRange(0, 10))
	require.NoError(t, err)

	sorted := SortByName([]entities.Record{rec, entities.MustNewRecord("Ana", 1)})
	assert.Equal(t, []string{"Ana", "Luis"}, names(sorted))
}
