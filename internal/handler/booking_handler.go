// Package handler exposes HTTP handlers for both the booking read/write
// surface and the administrative catalog endpoints. This file covers the
// core operation surface of spec.md §6: list_movies, list_theaters_for_movie,
// list_available_seats and book.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/opencinema/booking-service/internal/booking"
	"github.com/opencinema/booking-service/internal/events"
)

const plainText = "text/plain; charset=utf-8"

// bookingEventPublisher is the subset of events.Publisher that handlers
// depend on, so tests can substitute a stub.
type bookingEventPublisher interface {
	Publish(ctx context.Context, event events.BookingConfirmedEvent) error
}

// BookingHandler serves the read/write surface backed by a booking.Store.
// It never logs; every error is translated into an HTTP status and a JSON
// body, matching spec.md §7's "no error is ever logged by the core" carried
// through to the serving layer, and the teacher's own handler convention of
// echo.Map{"error": ...} bodies.
type BookingHandler struct {
	Store     *booking.Store
	Publisher bookingEventPublisher
}

// NewBookingHandler constructs a BookingHandler. publisher may be nil, in
// which case booking events are not published.
func NewBookingHandler(store *booking.Store, publisher bookingEventPublisher) *BookingHandler {
	if store == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{Store: store, Publisher: publisher}
}

// ListMovies handles GET /v1/movies. The OK payload is the movies cache
// verbatim, bit-exact per spec.md §6.
func (h *BookingHandler) ListMovies(c echo.Context) error {
	return c.Blob(http.StatusOK, plainText, []byte(h.Store.ListMovies()))
}

// ListTheaters handles GET /v1/movies/:movie_id/theaters.
func (h *BookingHandler) ListTheaters(c echo.Context) error {
	movieID, err := parseID(c, "movie_id")
	if err != nil {
		return invalidRequest(c, "invalid movie id")
	}
	rendered, err := h.Store.ListTheatersForMovie(movieID)
	if err != nil {
		if errors.Is(err, booking.ErrUnknownMovie) {
			return invalidRequest(c, "unknown movie id")
		}
		return invalidRequest(c, "invalid request")
	}
	return c.Blob(http.StatusOK, plainText, []byte(rendered))
}

// ListSeats handles GET /v1/movies/:movie_id/theaters/:theater_id/seats.
func (h *BookingHandler) ListSeats(c echo.Context) error {
	movieID, err := parseID(c, "movie_id")
	if err != nil {
		return invalidRequest(c, "invalid movie id")
	}
	theaterID, err := parseID(c, "theater_id")
	if err != nil {
		return invalidRequest(c, "invalid theater id")
	}
	rendered, err := h.Store.ListAvailableSeats(movieID, theaterID)
	if err != nil {
		if errors.Is(err, booking.ErrUnknownRoom) {
			return invalidRequest(c, "unknown combination of movie id and theater id")
		}
		return invalidRequest(c, "invalid request")
	}
	return c.Blob(http.StatusOK, plainText, []byte(rendered))
}

// bookRequest is the JSON body accepted by Book: a list of seat indices.
type bookRequest struct {
	Seats []int `json:"seats"`
}

// Book handles POST /v1/movies/:movie_id/theaters/:theater_id/book. The
// tri-state booking.Result maps onto HTTP exactly as spec.md §6 specifies:
// ACCEPTED -> 200, NOT_AVAILABLE -> 403, INVALID -> 400; an unknown room is
// also reported as 400 (INVALID_REQ), same as the original's
// commandexecution.cpp wrapping book_seats in a catch-all invalid-request
// response.
func (h *BookingHandler) Book(c echo.Context) error {
	movieID, err := parseID(c, "movie_id")
	if err != nil {
		return invalidRequest(c, "invalid movie id")
	}
	theaterID, err := parseID(c, "theater_id")
	if err != nil {
		return invalidRequest(c, "invalid theater id")
	}

	var body bookRequest
	if err := c.Bind(&body); err != nil {
		return invalidRequest(c, "invalid request body")
	}

	seats := make(map[int]struct{}, len(body.Seats))
	for _, s := range body.Seats {
		seats[s] = struct{}{}
	}

	result, err := h.Store.Book(movieID, theaterID, seats)
	if err != nil {
		if errors.Is(err, booking.ErrUnknownRoom) {
			return invalidRequest(c, "unknown combination of movie id and theater id")
		}
		return invalidRequest(c, "invalid request")
	}

	switch result {
	case booking.Accepted:
		h.publishConfirmed(c, movieID, theaterID, body.Seats)
		return c.Blob(http.StatusOK, plainText, []byte("Booking OK\r\n"))
	case booking.NotAvailable:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "seats not available"})
	default: // booking.Invalid
		return invalidRequest(c, "invalid movie id, theater id or seat numbers")
	}
}

// publishConfirmed fires a booking event; failures are not surfaced to the
// caller, matching the teacher's "log and return, don't fail the request"
// publishing policy.
func (h *BookingHandler) publishConfirmed(c echo.Context, movieID, theaterID uint64, seats []int) {
	if h.Publisher == nil {
		return
	}
	movieTitle, _ := h.Store.MovieName(movieID)
	theaterName, _ := h.Store.TheaterName(theaterID)
	event := events.BookingConfirmedEvent{
		MovieID:     movieID,
		MovieTitle:  movieTitle,
		TheaterID:   theaterID,
		TheaterName: theaterName,
		Seats:       seats,
		ConfirmedAt: time.Now().UTC(),
	}
	_ = h.Publisher.Publish(c.Request().Context(), event)
}

func invalidRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": message})
}

func parseID(c echo.Context, param string) (uint64, error) {
	return strconv.ParseUint(c.Param(param), 10, 64)
}
