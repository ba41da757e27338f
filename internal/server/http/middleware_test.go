package httpserver

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/LivingPOTATO0/task-manager-backend/internal/token"
)

func Test_bearerToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"", "", false},
		{"Basic Zm9v", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"bearer abc", "", false},
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
	}
	for _, tc := range cases {
		got, ok := bearerToken(tc.header)
		require.Equal(t, tc.ok, ok, "header %q", tc.header)
		require.Equal(t, tc.want, got, "header %q", tc.header)
	}
}

func TestAuthRequired_Rejections(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	// No header: short-circuits with 401.
	w, resp := s.do(t, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Missing or invalid authorization header", resp.Message)

	// Wrong scheme.
	w, _ = s.do(t, http.MethodGet, "/api/tasks", nil, func(r *http.Request) {
		r.Header.Set("Authorization", "Basic Zm9v")
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Bearer with garbage.
	w, resp = s.do(t, http.MethodGet, "/api/tasks", nil, withBearer("garbage"))
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "Invalid or expired token", resp.Message)

	// Token signed under a foreign secret.
	foreign := token.NewManager([]byte("other-a"), []byte("other-r"), 15*time.Minute, 7*24*time.Hour)
	pair, err := foreign.IssuePair(uuid.Must(uuid.NewV4()))
	require.NoError(t, err)
	w, _ = s.do(t, http.MethodGet, "/api/tasks", nil, withBearer(pair.AccessToken))
	require.Equal(t, http.StatusForbidden, w.Code)

	// Refresh token presented as access token.
	pair, err = s.tokens.IssuePair(uuid.Must(uuid.NewV4()))
	require.NoError(t, err)
	w, _ = s.do(t, http.MethodGet, "/api/tasks", nil, withBearer(pair.RefreshToken))
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthRequired_AttachesPrincipal(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	access, _ := s.register(t, "a@x.com", "p1", "A")

	// A task created through the gate lands under the registered user.
	w, _ := s.do(t, http.MethodPost, "/api/tasks", map[string]string{"inputText": "x"}, withBearer(access))
	require.Equal(t, http.StatusCreated, w.Code)

	var owner uuid.UUID
	for _, u := range s.users.byEmail {
		owner = u.ID
	}
	require.Len(t, s.tasks.byID, 1)
	for _, task := range s.tasks.byID {
		require.Equal(t, owner, task.UserID)
	}
}

func TestUserIDCtx_RoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())
	ctx := WithUserID(context.Background(), id)

	got, ok := UserIDFromCtx(ctx)
	require.True(t, ok)
	require.Equal(t, id, got)

	_, ok = UserIDFromCtx(context.Background())
	require.False(t, ok)
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodGet, "/api/health", nil, func(r *http.Request) {
		r.Header.Set("Origin", "https://app.example")
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	// Preflight short-circuits.
	w, _ = s.do(t, http.MethodOptions, "/api/tasks", nil, func(r *http.Request) {
		r.Header.Set("Origin", "https://app.example")
	})
	require.Equal(t, http.StatusNoContent, w.Code)
}
