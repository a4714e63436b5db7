package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opencinema/booking-service/internal/booking"
)

// AdminHandler serves the catalog-management surface: adding movies and
// theaters, assigning theaters to movies, and resetting the store. These
// endpoints have no equivalent request in spec.md's line protocol (which
// assumes the catalog already exists); they are the HTTP-native way of
// driving the same booking.Store mutators, following the teacher's own
// separation between public and administrative handlers.
type AdminHandler struct {
	Store *booking.Store
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(store *booking.Store) *AdminHandler {
	if store == nil {
		panic("nil store passed to NewAdminHandler")
	}
	return &AdminHandler{Store: store}
}

type namesRequest struct {
	Names []string `json:"names"`
}

type idsResponse struct {
	IDs []uint64 `json:"ids"`
}

// AddMovies handles POST /v1/admin/movies.
func (h *AdminHandler) AddMovies(c echo.Context) error {
	var body namesRequest
	if err := c.Bind(&body); err != nil || len(body.Names) == 0 {
		return invalidRequest(c, "names must be a non-empty array")
	}
	ids, err := h.Store.AddMovies(body.Names)
	if err != nil {
		return conflictOrBadRequest(c, err)
	}
	return c.JSON(http.StatusCreated, idsResponse{IDs: ids})
}

// AddTheaters handles POST /v1/admin/theaters.
func (h *AdminHandler) AddTheaters(c echo.Context) error {
	var body namesRequest
	if err := c.Bind(&body); err != nil || len(body.Names) == 0 {
		return invalidRequest(c, "names must be a non-empty array")
	}
	ids, err := h.Store.AddTheaters(body.Names)
	if err != nil {
		return conflictOrBadRequest(c, err)
	}
	return c.JSON(http.StatusCreated, idsResponse{IDs: ids})
}

type assignTheatersRequest struct {
	TheaterIDs []uint64 `json:"theater_ids"`
}

// AssignTheaters handles POST /v1/admin/movies/:movie_id/theaters.
func (h *AdminHandler) AssignTheaters(c echo.Context) error {
	movieID, err := parseID(c, "movie_id")
	if err != nil {
		return invalidRequest(c, "invalid movie id")
	}

	var body assignTheatersRequest
	if err := c.Bind(&body); err != nil || len(body.TheaterIDs) == 0 {
		return invalidRequest(c, "theater_ids must be a non-empty array")
	}

	if err := h.Store.AssignTheatersToMovie(movieID, body.TheaterIDs); err != nil {
		return conflictOrBadRequest(c, err)
	}
	return c.NoContent(http.StatusOK)
}

// Reset handles POST /v1/admin/reset, wiping the entire catalog. Intended
// for demos and test harnesses, not production traffic.
func (h *AdminHandler) Reset(c echo.Context) error {
	h.Store.Clear()
	return c.NoContent(http.StatusOK)
}

// conflictOrBadRequest maps a booking.Store mutation error to an HTTP
// status: unknown-reference errors are 404, name/assignment collisions are
// 409, anything else falls back to 400.
func conflictOrBadRequest(c echo.Context, err error) error {
	switch {
	case errors.Is(err, booking.ErrUnknownMovie), errors.Is(err, booking.ErrUnknownTheater), errors.Is(err, booking.ErrUnknownID):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrDuplicateName), errors.Is(err, booking.ErrAlreadyAssigned):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		return invalidRequest(c, err.Error())
	}
}
