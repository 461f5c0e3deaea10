package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luachapp/luach-api/internal/config"
	"github.com/luachapp/luach-api/internal/domain/siddur"
	"github.com/luachapp/luach-api/internal/service/luach"
)

func testApplication() *application {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := &siddur.Catalog{
		Categories: []siddur.Category{{Entry: siddur.Entry{
			ID: "tefillah", Title: "Daily Prayer", Order: 1,
			Importance: siddur.ImportanceCore,
			Nusachim:   []siddur.Nusach{siddur.NusachAshkenaz},
		}}},
	}
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
			Zmanim: config.ZmanimConfig{CandleLightingMinutes: 18},
		},
		logger:  log,
		catalog: cat,
		builder: luach.NewContextBuilder(nil, luach.DefaultKeywordTable(), log),
	}
}

func TestRouterHealth(t *testing.T) {
	router := testApplication().setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouterRoutes(t *testing.T) {
	router := testApplication().setupRouter()

	for _, path := range []string{
		"/api/calendar/hebrew-date?date=2024-04-23",
		"/api/calendar/parasha?date=2024-04-23",
		"/api/zmanim?date=2024-04-23&lat=31.778&lon=35.235&tz=Asia/Jerusalem",
		"/api/siddur/context?date=2024-04-23",
		"/api/siddur/navigation?date=2024-04-23",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s", path)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := testApplication().setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterZmanimMissingLocation(t *testing.T) {
	router := testApplication().setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/zmanim", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
