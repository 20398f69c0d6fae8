package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/domain/validation"
)

func validFilm() *entities.Film {
	return &entities.Film{
		Name:        "Arrival of a Train",
		Description: "A train arrives at La Ciotat station",
		ReleaseDate: entities.NewDate(1896, time.January, 6),
		Duration:    1,
	}
}

func TestValidateFilm(t *testing.T) {
	tests := []struct {
		name             string
		mutate           func(f *entities.Film)
		expectedMessages []string
	}{
		{
			name:   "valid film passes",
			mutate: func(_ *entities.Film) {},
		},
		{
			name:             "blank name",
			mutate:           func(f *entities.Film) { f.Name = "   " },
			expectedMessages: []string{validation.MsgFilmNameBlank},
		},
		{
			name:             "blank description",
			mutate:           func(f *entities.Film) { f.Description = "" },
			expectedMessages: []string{validation.MsgFilmDescriptionBlank},
		},
		{
			name:             "description longer than 200 characters",
			mutate:           func(f *entities.Film) { f.Description = strings.Repeat("ы", 201) },
			expectedMessages: []string{validation.MsgFilmDescriptionLong},
		},
		{
			name:   "description of exactly 200 characters passes",
			mutate: func(f *entities.Film) { f.Description = strings.Repeat("ы", 200) },
		},
		{
			name:             "missing release date",
			mutate:           func(f *entities.Film) { f.ReleaseDate = entities.Date{} },
			expectedMessages: []string{validation.MsgFilmReleaseDateEmpty},
		},
		{
			name: "release date one day before cinema birthday",
			mutate: func(f *entities.Film) {
				f.ReleaseDate = entities.NewDate(1895, time.December, 27)
			},
			expectedMessages: []string{validation.MsgFilmReleaseDateEarly},
		},
		{
			name: "release date exactly on cinema birthday passes",
			mutate: func(f *entities.Film) {
				f.ReleaseDate = entities.NewDate(1895, time.December, 28)
			},
		},
		{
			name:             "zero duration",
			mutate:           func(f *entities.Film) { f.Duration = 0 },
			expectedMessages: []string{validation.MsgFilmDurationInvalid},
		},
		{
			name:             "negative duration",
			mutate:           func(f *entities.Film) { f.Duration = -10 },
			expectedMessages: []string{validation.MsgFilmDurationInvalid},
		},
		{
			name: "all violations are collected at once",
			mutate: func(f *entities.Film) {
				f.Name = ""
				f.Description = ""
				f.ReleaseDate = entities.Date{}
				f.Duration = 0
			},
			expectedMessages: []string{
				validation.MsgFilmNameBlank,
				validation.MsgFilmDescriptionBlank,
				validation.MsgFilmReleaseDateEmpty,
				validation.MsgFilmDurationInvalid,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			film := validFilm()
			tt.mutate(film)

			err := validation.ValidateFilm(film)

			if len(tt.expectedMessages) == 0 {
				require.NoError(t, err)
				return
			}

			var validationErr *entities.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expectedMessages, validationErr.Messages)
		})
	}
}
