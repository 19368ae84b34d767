package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/service"
	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequestTimeout_SetsDeadline(t *testing.T) {
	h := &Handler{requestTimeout: time.Minute, logger: logger.Nop()}

	var deadline time.Time
	var hasDeadline bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, hasDeadline = r.Context().Deadline()
	})

	serve(h.withRequestTimeout(next), httptest.NewRequest(http.MethodGet, "/users", nil))

	require.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestWithRequestTimeout_ZeroDisablesDeadline(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var hasDeadline bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	})

	serve(h.withRequestTimeout(next), httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.False(t, hasDeadline)
}

func TestWithRequestTimeout_ExpiredRequestAnswersWith400(t *testing.T) {
	users := &mockUserService{
		listFn: func(ctx context.Context) ([]models.User, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	h := NewHandler(newServices(service.Services{UserService: users}), configWithTimeout(20*time.Millisecond), logger.Nop())

	rr := doRequest(t, h.Init(), http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Error", decodeErrorBody(t, rr))
}
