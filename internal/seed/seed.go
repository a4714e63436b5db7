// Package seed populates a booking.Store with demo movies, theaters and
// assignments at startup. It is not part of the booking core itself; it
// exists only so a freshly started server has something to list and book,
// the way original_source/initbookingdata.cpp seeded the C++ service this
// spec was distilled from. That file's content never made it into spec.md,
// since spec.md specifies operations, not startup data — this package
// recovers it.
package seed

import (
	"fmt"
	"log"

	"github.com/opencinema/booking-service/internal/booking"
	"github.com/opencinema/booking-service/internal/config"
)

// Populate adds cfg.SeederMovies movies and cfg.SeederTheaters theaters to
// store, then assigns cfg.SeederAssignmentsPerMovie theaters to each movie
// (fewer if there are not enough theaters). It logs a one-line summary on
// completion, matching the original seeder's startup messages.
func Populate(store *booking.Store, cfg config.Config) error {
	if !cfg.SeederEnabled {
		return nil
	}

	movieNames := make([]string, 0, cfg.SeederMovies)
	for i := 0; i < cfg.SeederMovies; i++ {
		movieNames = append(movieNames, fmt.Sprintf("Demo Movie %d", i))
	}
	movieIDs, err := store.AddMovies(movieNames)
	if err != nil {
		return fmt.Errorf("seed: add movies: %w", err)
	}

	theaterNames := make([]string, 0, cfg.SeederTheaters)
	for i := 0; i < cfg.SeederTheaters; i++ {
		theaterNames = append(theaterNames, fmt.Sprintf("Demo Theater %d", i))
	}
	theaterIDs, err := store.AddTheaters(theaterNames)
	if err != nil {
		return fmt.Errorf("seed: add theaters: %w", err)
	}

	perMovie := cfg.SeederAssignmentsPerMovie
	if perMovie > len(theaterIDs) {
		perMovie = len(theaterIDs)
	}

	for i, movieID := range movieIDs {
		assigned := make([]uint64, 0, perMovie)
		for j := 0; j < perMovie; j++ {
			// Round-robin offset so different movies get different,
			// overlapping theater sets rather than always the same prefix.
			assigned = append(assigned, theaterIDs[(i+j)%len(theaterIDs)])
		}
		if err := store.AssignTheatersToMovie(movieID, assigned); err != nil {
			return fmt.Errorf("seed: assign theaters to movie %d: %w", movieID, err)
		}
	}

	log.Printf("seed: populated %d movies, %d theaters, %d assignments/movie",
		len(movieIDs), len(theaterIDs), perMovie)
	return nil
}
