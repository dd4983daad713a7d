package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/yt-research-assistant/internal/adapter/repository"
	"github.com/johnquangdev/yt-research-assistant/internal/domain/entities"
	"github.com/johnquangdev/yt-research-assistant/pkg/config"
)

func TestHealthCheck_ReportsSessionCount(t *testing.T) {
	sessions := repository.NewMemorySessionStore(10)
	sessions.Put(entities.NewSession("7", []string{"chunk"}, entities.LanguageEnglish))

	h := NewMessageHandler(&stubService{}, sessions, zap.NewNop())
	rt := NewRouter(&config.Config{}, h, sessions)

	e := newTestEcho()
	rt.Setup(e)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","sessions":1}`, rec.Body.String())
}
