package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencinema/booking-service/internal/booking"
	"github.com/opencinema/booking-service/internal/config"
)

func TestPopulateDisabledIsNoOp(t *testing.T) {
	store := booking.NewStore()
	cfg := config.Config{SeederEnabled: false}

	require.NoError(t, Populate(store, cfg))
	assert.Equal(t, "", store.ListMovies())
}

func TestPopulateCreatesMoviesTheatersAndAssignments(t *testing.T) {
	store := booking.NewStore()
	cfg := config.Config{
		SeederEnabled:             true,
		SeederMovies:              4,
		SeederTheaters:            3,
		SeederAssignmentsPerMovie: 2,
	}

	require.NoError(t, Populate(store, cfg))

	movieIDs := store.SortedMovieIDs()
	theaterIDs := store.SortedTheaterIDs()
	assert.Len(t, movieIDs, 4)
	assert.Len(t, theaterIDs, 3)

	for _, movieID := range movieIDs {
		rendered, err := store.ListTheatersForMovie(movieID)
		require.NoError(t, err)
		lines := strings.Count(rendered, "\r\n")
		assert.Equal(t, 2, lines)
	}
}

func TestPopulateClampsAssignmentsToAvailableTheaters(t *testing.T) {
	store := booking.NewStore()
	cfg := config.Config{
		SeederEnabled:             true,
		SeederMovies:              2,
		SeederTheaters:            1,
		SeederAssignmentsPerMovie: 5,
	}

	require.NoError(t, Populate(store, cfg))

	movieIDs := store.SortedMovieIDs()
	for _, movieID := range movieIDs {
		rendered, err := store.ListTheatersForMovie(movieID)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(rendered, "\r\n"))
	}
}
