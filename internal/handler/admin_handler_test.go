package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencinema/booking-service/internal/booking"
)

func TestAddMoviesCreatesAndReturnsIDs(t *testing.T) {
	store := booking.NewStore()
	h := NewAdminHandler(store)
	e := newTestEcho()
	body := bytes.NewBufferString(`{"names":["Alpha","Beta"]}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/movies", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.AddMovies(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"ids":[1,2]}`, rec.Body.String())
}

func TestAddMoviesDuplicateNameIsConflict(t *testing.T) {
	store := booking.NewStore()
	_, err := store.AddMovies([]string{"Alpha"})
	require.NoError(t, err)

	h := NewAdminHandler(store)
	e := newTestEcho()
	body := bytes.NewBufferString(`{"names":["Alpha"]}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/movies", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.AddMovies(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAssignTheatersUnknownTheaterIsNotFound(t *testing.T) {
	store := booking.NewStore()
	movieIDs, err := store.AddMovies([]string{"Alpha"})
	require.NoError(t, err)

	h := NewAdminHandler(store)
	e := newTestEcho()
	body := bytes.NewBufferString(`{"theater_ids":[99]}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/movies/1/theaters", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("movie_id")
	c.SetParamValues("1")
	_ = movieIDs

	require.NoError(t, h.AssignTheaters(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResetClearsStore(t *testing.T) {
	store := booking.NewStore()
	_, err := store.AddMovies([]string{"Alpha"})
	require.NoError(t, err)

	h := NewAdminHandler(store)
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/reset", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Reset(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", store.ListMovies())
}
