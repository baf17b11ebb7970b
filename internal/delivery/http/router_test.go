package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	delivery "github.com/astrodate/astrodate-backend/internal/delivery/http"
	"github.com/astrodate/astrodate-backend/internal/delivery/http/handler"
	"github.com/astrodate/astrodate-backend/internal/delivery/http/middleware"
	"github.com/astrodate/astrodate-backend/internal/logger"
	"github.com/astrodate/astrodate-backend/internal/repository/memory"
	"github.com/astrodate/astrodate-backend/internal/usecase/auth"
	"github.com/astrodate/astrodate-backend/internal/usecase/discover"
	"github.com/astrodate/astrodate-backend/internal/usecase/swipe"
	"github.com/astrodate/astrodate-backend/internal/zodiac"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pickFirst struct{}

func (pickFirst) Intn(int) int { return 0 }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := memory.NewUserRepository()
	swipeRepo := memory.NewSwipeRepository()
	idx := zodiac.NewIndex(zodiac.ReferenceSigns(), zodiac.ReferenceCompatibilities())

	authUseCase := auth.NewAuthUseCase(userRepo, idx, "router-test-secret-router-test-secret", 30)
	discoverUseCase := discover.NewDiscoverUseCase(userRepo, swipeRepo, idx, pickFirst{})
	swipeUseCase := swipe.NewSwipeUseCase(swipeRepo, userRepo, idx, nil, nil)

	router := delivery.NewRouter(
		handler.NewAuthHandler(authUseCase),
		handler.NewUserHandler(discoverUseCase, swipeUseCase, userRepo),
		middleware.NewAuthMiddleware(authUseCase),
		logger.L(),
		"",
	)
	return router.Setup()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine, email, password, birthDate string) {
	t.Helper()
	body := `{"email":"` + email + `","password":"` + password + `","birth_date":"` + birthDate + `"}`
	w := doJSON(t, router, http.MethodPost, "/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func loginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	form := "username=" + email + "&password=" + password
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var token auth.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &token))
	require.Equal(t, "bearer", token.TokenType)
	return token.AccessToken
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = doJSON(t, router, http.MethodHead, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"missing email", `{"password":"pw","birth_date":"1990-01-01"}`},
		{"bad email", `{"email":"nope","password":"pw","birth_date":"1990-01-01"}`},
		{"bad birth date", `{"email":"a@example.com","password":"pw","birth_date":"01.01.1990"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/auth/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegisterHidesPasswordHash(t *testing.T) {
	router := newTestRouter(t)

	body := `{"email":"a@example.com","password":"pw","birth_date":"1995-04-10"}`
	w := doJSON(t, router, http.MethodPost, "/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a@example.com", resp["email"])
	assert.EqualValues(t, zodiac.Aries, resp["zodiac_sign_id"])
	assert.NotContains(t, resp, "hashed_password")
	assert.NotContains(t, w.Body.String(), "pw")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "a@example.com", "pw", "1995-04-10")

	form := "username=a@example.com&password=wrong"
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/auth/me", "/users/all", "/users/discover", "/users/likes"} {
		w := doJSON(t, router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := doJSON(t, router, http.MethodGet, "/users/discover", "", "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMatchFlow(t *testing.T) {
	router := newTestRouter(t)

	// Aries and Leo are compatible, so each shows up in the other's
	// discovery feed.
	registerUser(t, router, "a@a.a", "a", "1995-04-10")
	registerUser(t, router, "b@b.b", "b", "1993-08-05")
	tokenA := loginUser(t, router, "a@a.a", "a")
	tokenB := loginUser(t, router, "b@b.b", "b")

	w := doJSON(t, router, http.MethodGet, "/auth/me", "", tokenA)
	require.Equal(t, http.StatusOK, w.Code)
	var me map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "a@a.a", me["email"])

	w = doJSON(t, router, http.MethodGet, "/users/discover", "", tokenA)
	require.Equal(t, http.StatusOK, w.Code)
	var candidate map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &candidate))
	assert.Equal(t, "b@b.b", candidate["email"])

	w = doJSON(t, router, http.MethodPost, "/users/swipe/2/true", "", tokenA)
	require.Equal(t, http.StatusOK, w.Code)
	var swiped map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &swiped))
	assert.Equal(t, false, swiped["is_mutual"])

	// The like shows up on B's side before B swipes back.
	w = doJSON(t, router, http.MethodGet, "/users/likes", "", tokenB)
	require.Equal(t, http.StatusOK, w.Code)
	var likes []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &likes))
	require.Len(t, likes, 1)
	assert.Equal(t, "a@a.a", likes[0]["email"])

	w = doJSON(t, router, http.MethodGet, "/users/likes/count", "", tokenB)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1}`, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/users/swipe/1/true", "", tokenB)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &swiped))
	assert.Equal(t, true, swiped["is_mutual"])
	assert.Equal(t, "It's a match!", swiped["message"])

	// Both pools are now exhausted.
	w = doJSON(t, router, http.MethodGet, "/users/discover", "", tokenA)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, router, http.MethodGet, "/users/discover", "", tokenB)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSwipePathValidation(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "a@a.a", "a", "1995-04-10")
	token := loginUser(t, router, "a@a.a", "a")

	w := doJSON(t, router, http.MethodPost, "/users/swipe/abc/true", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/users/swipe/2/maybe", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Swiping yourself is rejected, swiping a ghost is a 404.
	w = doJSON(t, router, http.MethodPost, "/users/swipe/1/true", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/users/swipe/99/true", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUsersAll(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "a@a.a", "a", "1995-04-10")
	registerUser(t, router, "b@b.b", "b", "1993-08-05")
	token := loginUser(t, router, "a@a.a", "a")

	w := doJSON(t, router, http.MethodGet, "/users/all", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)

	w = doJSON(t, router, http.MethodGet, "/users/all?skip=1&limit=1", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "b@b.b", users[0]["email"])
}

func TestLogout(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/auth/logout", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logout successful")
}
