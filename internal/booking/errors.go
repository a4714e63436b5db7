// Package booking implements the in-memory cinema seat booking store: a
// catalog of movies and theaters, the many-to-many assignment of theaters
// to movies, and the per-room booked/free seat bitmap. Store and Room are
// safe for concurrent use; NameTable is not, and relies on its owner's lock.
package booking

import "errors"

// ErrDuplicateName is returned by NameTable.Add when a name in the batch is
// already present. The table is left unmodified.
var ErrDuplicateName = errors.New("booking: name already exists")

// ErrUnknownID is returned by NameTable.GetName when the id is absent.
var ErrUnknownID = errors.New("booking: unknown id")

// ErrUnknownMovie is returned when a movie id does not exist.
var ErrUnknownMovie = errors.New("booking: unknown movie")

// ErrUnknownTheater is returned when a theater id does not exist.
var ErrUnknownTheater = errors.New("booking: unknown theater")

// ErrUnknownRoom is returned when a (movie, theater) pair has no room.
var ErrUnknownRoom = errors.New("booking: unknown room for movie/theater")

// ErrAlreadyAssigned is returned when a theater is already assigned to the
// movie in question.
var ErrAlreadyAssigned = errors.New("booking: theater already assigned to movie")
