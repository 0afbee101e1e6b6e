package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

// fakeSyncService is a scriptable stand-in for the sync layer shared by the
// auth and itinerary handler tests.
type fakeSyncService struct {
	session      *model.Session
	authErr      error
	itinerary    *model.Itinerary
	itineraries  []model.Itinerary
	destinations []model.Destination
	opErr        error
}

func (f *fakeSyncService) SignIn(_ context.Context, email, _ string) (*model.Session, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	f.session = &model.Session{UID: "uid-1", Email: email, IDToken: "token"}
	return f.session, nil
}

func (f *fakeSyncService) SignUp(ctx context.Context, email, password string) (*model.Session, error) {
	return f.SignIn(ctx, email, password)
}

func (f *fakeSyncService) SignOut() { f.session = nil }

func (f *fakeSyncService) CurrentSession() *model.Session { return f.session }

func (f *fakeSyncService) IsAuthenticated() bool { return f.session != nil }

func (f *fakeSyncService) EnsureItinerary(_ context.Context) (*model.Itinerary, error) {
	if f.opErr != nil {
		return nil, f.opErr
	}
	return f.itinerary, nil
}

func (f *fakeSyncService) AddDestination(_ context.Context, itineraryID string, destination *model.Destination) (*model.Destination, error) {
	if f.opErr != nil {
		return nil, f.opErr
	}
	destination.ID = "dest-1"
	destination.ItineraryID = itineraryID
	destination.UserID = "uid-1"
	f.destinations = append(f.destinations, *destination)
	return destination, nil
}

func (f *fakeSyncService) GetItineraries(_ context.Context) ([]model.Itinerary, error) {
	if f.opErr != nil {
		return nil, f.opErr
	}
	return f.itineraries, nil
}

func (f *fakeSyncService) GetDestinations(_ context.Context, _ string) ([]model.Destination, error) {
	if f.opErr != nil {
		return nil, f.opErr
	}
	return f.destinations, nil
}

func newAuthRouter(svc *fakeSyncService) *gin.Engine {
	h := NewAuthHandler(svc)
	router := gin.New()
	auth := router.Group("/api/auth")
	{
		auth.POST("/signin", h.SignIn)
		auth.POST("/signup", h.SignUp)
		auth.POST("/signout", h.SignOut)
		auth.GET("/session", h.Session)
	}
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_SignIn(t *testing.T) {
	svc := &fakeSyncService{}
	router := newAuthRouter(svc)

	w := postJSON(router, "/api/auth/signin", `{"email": "claire@example.com", "password": "secret123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "claire@example.com")
	assert.NotContains(t, w.Body.String(), "token", "the ID token must never be serialized")
	assert.True(t, svc.IsAuthenticated())
}

func TestAuthHandler_SignInValidation(t *testing.T) {
	router := newAuthRouter(&fakeSyncService{})

	cases := map[string]string{
		"missing email":      `{"password": "secret123"}`,
		"malformed email":    `{"email": "not-an-email", "password": "secret123"}`,
		"password too short": `{"email": "claire@example.com", "password": "abc"}`,
		"broken JSON":        `{"email": `,
	}
	for name, body := range cases {
		w := postJSON(router, "/api/auth/signin", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestAuthHandler_SignInFailure(t *testing.T) {
	svc := &fakeSyncService{authErr: errors.New("sign-in failed: authentication failed: INVALID_PASSWORD")}
	router := newAuthRouter(svc)

	w := postJSON(router, "/api/auth/signin", `{"email": "claire@example.com", "password": "wrong1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_PASSWORD")
	assert.False(t, svc.IsAuthenticated())
}

func TestAuthHandler_SignUpCreated(t *testing.T) {
	router := newAuthRouter(&fakeSyncService{})

	w := postJSON(router, "/api/auth/signup", `{"email": "new@example.com", "password": "secret123"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAuthHandler_SessionLifecycle(t *testing.T) {
	svc := &fakeSyncService{}
	router := newAuthRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/auth/session", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated": false}`, w.Body.String())

	postJSON(router, "/api/auth/signin", `{"email": "claire@example.com", "password": "secret123"}`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/auth/session", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)

	w = postJSON(router, "/api/auth/signout", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, svc.IsAuthenticated())
}
