package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cartlab/internal/config"
	"cartlab/internal/handler"
	"cartlab/internal/platform/logger"
	"cartlab/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestServer() *echo.Echo {
	cart := usecase.NewCartAggregator(nil)
	todoH := handler.NewTodoHandler(usecase.NewTodoUsecase(nil, nil))
	return New(config.Config{FEURL: "*"}, logger.NewNop(), todoH, handler.NewCartHandler(cart))
}

func TestNew_SetsRequestID(t *testing.T) {
	e := newTestServer()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestNew_CORSPreflight(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/api/todos", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5500")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestNew_UnknownRoute(t *testing.T) {
	e := newTestServer()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
