package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cartlab/internal/domain/model"
	"cartlab/internal/handler"
	infraRepo "cartlab/internal/infra/repository"
	"cartlab/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTodoEcho(t *testing.T) *echo.Echo {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	gormDB, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.Todo{}))
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	uc := usecase.NewTodoUsecase(infraRepo.NewTodoGormRepository(gormDB), nil)
	e := echo.New()
	handler.NewTodoHandler(uc).RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeTodos(t *testing.T, rec *httptest.ResponseRecorder) []model.Todo {
	t.Helper()
	var v []model.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body=%s", rec.Body.String())
	return v
}

func TestTodoHandler_CRUD(t *testing.T) {
	e := newTodoEcho(t)

	rec := doJSON(e, http.MethodGet, "/api/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeTodos(t, rec))

	rec = doJSON(e, http.MethodPost, "/api/todos", `{"title":"buy milk"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var created model.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "buy milk", created.Title)
	assert.Greater(t, created.ID, int64(0))

	rec = doJSON(e, http.MethodPut, "/api/todos/"+itoa(created.ID), `{"title":"buy oat milk"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/todos", "")
	todos := decodeTodos(t, rec)
	require.Len(t, todos, 1)
	assert.Equal(t, "buy oat milk", todos[0].Title)

	rec = doJSON(e, http.MethodDelete, "/api/todos/"+itoa(created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/api/todos", "")
	assert.Empty(t, decodeTodos(t, rec))
}

func TestTodoHandler_PutMissingCreates(t *testing.T) {
	e := newTodoEcho(t)

	rec := doJSON(e, http.MethodPut, "/api/todos/40", `{"title":"late"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	todos := decodeTodos(t, doJSON(e, http.MethodGet, "/api/todos", ""))
	require.Len(t, todos, 1)
	assert.Equal(t, int64(40), todos[0].ID)
}

func TestTodoHandler_DeleteMissingIsOK(t *testing.T) {
	e := newTodoEcho(t)

	rec := doJSON(e, http.MethodDelete, "/api/todos/777", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTodoHandler_BadRequests(t *testing.T) {
	e := newTodoEcho(t)

	cases := []struct {
		method, path, body, msg string
	}{
		{http.MethodPost, "/api/todos", `{"title":""}`, "invalid title"},
		{http.MethodPost, "/api/todos", `{"title":`, "invalid body"},
		{http.MethodPut, "/api/todos/abc", `{"title":"x"}`, "invalid id"},
		{http.MethodPut, "/api/todos/0", `{"title":"x"}`, "invalid id"},
		{http.MethodDelete, "/api/todos/abc", "", "invalid id"},
	}
	for _, c := range cases {
		rec := doJSON(e, c.method, c.path, c.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "%s %s", c.method, c.path)

		var er handler.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &er))
		assert.Equal(t, c.msg, er.Error)
	}
}
