package booking

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Store is the aggregate booking store: two NameTables (movies, theaters),
// a two-level map movie -> theater -> Room, and a per-movie cached
// rendering of theater listings, all guarded by a single store-wide
// reader/writer lock.
//
// Readers (list/sorted operations and Book) take the read side of the
// store-wide lock, so they never block each other. Structural mutations
// (AddMovies, AddTheaters, AssignTheatersToMovie, Clear) take the write
// side, which excludes all readers including in-flight bookings. Book
// additionally takes the target Room's own write lock, which serializes
// bookings against the same room without blocking bookings against other
// rooms or blocking readers.
//
// This corresponds to the original_source/bookingdata.hpp singleton
// BookingData, reshaped into an explicitly-constructed type rather than a
// Meyers singleton, per idiomatic Go and the teacher's own dependency
// injection style (every *Repo is constructed explicitly and handed to
// handlers).
type Store struct {
	mu                    sync.RWMutex
	movies                *NameTable
	theaters              *NameTable
	rooms                 map[uint64]map[uint64]*Room
	theatersPerMovieCache map[uint64]string
}

// NewStore returns an empty, ready-to-use Store.
func NewStore() *Store {
	return &Store{
		movies:                NewNameTable(),
		theaters:              NewNameTable(),
		rooms:                 make(map[uint64]map[uint64]*Room),
		theatersPerMovieCache: make(map[uint64]string),
	}
}

// AddMovies adds the given movie names, atomically. For every newly issued
// movie id it creates an empty room sub-map and an empty theater-listing
// cache entry. Fails with ErrDuplicateName if any name already exists, in
// which case the store is left completely unchanged.
func (s *Store) AddMovies(names []string) ([]uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.movies.Add(names)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		s.rooms[id] = make(map[uint64]*Room)
		s.rebuildTheatersCacheForMovie(id)
	}
	return ids, nil
}

// AddTheaters adds the given theater names, atomically. Fails with
// ErrDuplicateName if any name already exists.
func (s *Store) AddTheaters(names []string) ([]uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.theaters.Add(names)
}

// AssignTheatersToMovie assigns the given theaters to movieID, each getting
// a fresh fully-available Room. Validates every precondition before
// mutating anything:
//   - movieID must be a known movie (ErrUnknownMovie).
//   - every theaterID must be a known theater (ErrUnknownTheater).
//   - no theaterID may already be assigned to movieID (ErrAlreadyAssigned).
//
// Unknown theater ids are rejected here even though the original C++
// source never checked them; spec.md calls this out as the more robust,
// deliberately-diverging behaviour. See DESIGN.md.
func (s *Store) AssignTheatersToMovie(movieID uint64, theaterIDs []uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	roomsForMovie, ok := s.rooms[movieID]
	if !ok {
		return ErrUnknownMovie
	}
	for _, tid := range theaterIDs {
		if !s.theaters.HasID(tid) {
			return ErrUnknownTheater
		}
		if _, already := roomsForMovie[tid]; already {
			return ErrAlreadyAssigned
		}
	}
	for _, tid := range theaterIDs {
		roomsForMovie[tid] = NewRoom()
	}
	s.rebuildTheatersCacheForMovie(movieID)
	return nil
}

// ListMovies returns the movies NameTable's cached listing.
func (s *Store) ListMovies() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movies.Rendered()
}

// ListTheatersForMovie returns the cached theater listing for movieID, or
// ErrUnknownMovie if movieID does not exist.
func (s *Store) ListTheatersForMovie(movieID uint64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rendered, ok := s.theatersPerMovieCache[movieID]
	if !ok {
		return "", ErrUnknownMovie
	}
	return rendered, nil
}

// ListAvailableSeats returns the availability listing of the room for
// (movieID, theaterID), or ErrUnknownRoom if no such room exists.
func (s *Store) ListAvailableSeats(movieID, theaterID uint64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, err := s.lookupRoom(movieID, theaterID)
	if err != nil {
		return "", err
	}
	return room.Available(), nil
}

// Book attempts to book seats in the room for (movieID, theaterID). It
// takes the store-wide read lock, not the write lock: this is the crux of
// the concurrency model, allowing bookings against different rooms (and
// all reads) to proceed in parallel while still being safe against
// concurrent structural mutation, since the write lock excludes readers
// entirely while it runs. The target Room's own write lock serializes
// bookings against that one room.
func (s *Store) Book(movieID, theaterID uint64, seats map[int]struct{}) (Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, err := s.lookupRoom(movieID, theaterID)
	if err != nil {
		return Invalid, err
	}
	return room.Book(seats), nil
}

// MovieName returns the name of movieID, or ErrUnknownID if it does not
// exist.
func (s *Store) MovieName(movieID uint64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movies.GetName(movieID)
}

// TheaterName returns the name of theaterID, or ErrUnknownID if it does not
// exist.
func (s *Store) TheaterName(theaterID uint64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theaters.GetName(theaterID)
}

// SortedMovieIDs returns every movie id in ascending order.
func (s *Store) SortedMovieIDs() []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movies.SortedIDs()
}

// SortedTheaterIDs returns every theater id in ascending order.
func (s *Store) SortedTheaterIDs() []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theaters.SortedIDs()
}

// Clear empties both NameTables, the rooms map and the per-movie cache.
// The id counters of the underlying NameTables are not reset.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.movies.Clear()
	s.theaters.Clear()
	s.rooms = make(map[uint64]map[uint64]*Room)
	s.theatersPerMovieCache = make(map[uint64]string)
}

// lookupRoom must be called with at least the read lock held.
func (s *Store) lookupRoom(movieID, theaterID uint64) (*Room, error) {
	roomsForMovie, ok := s.rooms[movieID]
	if !ok {
		return nil, ErrUnknownRoom
	}
	room, ok := roomsForMovie[theaterID]
	if !ok {
		return nil, ErrUnknownRoom
	}
	return room, nil
}

// rebuildTheatersCacheForMovie must be called with the write lock held. It
// emits "<theater_id>,<theater_name>\r\n" for every theater currently
// assigned to movieID, in ascending theater-id order.
func (s *Store) rebuildTheatersCacheForMovie(movieID uint64) {
	roomsForMovie := s.rooms[movieID]
	ids := make([]uint64, 0, len(roomsForMovie))
	for tid := range roomsForMovie {
		ids = append(ids, tid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	for _, tid := range ids {
		name, err := s.theaters.GetName(tid)
		if err != nil {
			// Invariant violation: every room's theater id must exist in
			// the theaters NameTable. This cannot happen through the
			// public API.
			continue
		}
		b.WriteString(strconv.FormatUint(tid, 10))
		b.WriteByte(',')
		b.WriteString(name)
		b.WriteString(eol)
	}
	s.theatersPerMovieCache[movieID] = b.String()
}
