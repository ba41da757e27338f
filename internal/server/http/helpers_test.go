package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/LivingPOTATO0/task-manager-backend/internal/errs"
	"github.com/LivingPOTATO0/task-manager-backend/internal/model"
	"github.com/LivingPOTATO0/task-manager-backend/internal/service"
	"github.com/LivingPOTATO0/task-manager-backend/internal/token"
)

func init() { gin.SetMode(gin.TestMode) }

type memUsers struct {
	byEmail map[string]*model.User
}

func (f *memUsers) Create(_ context.Context, u *model.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return errs.ErrAlreadyExists
	}
	cpy := *u
	f.byEmail[u.Email] = &cpy
	return nil
}

func (f *memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (f *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

type memTasks struct {
	byID map[uuid.UUID]*model.Task
}

func (f *memTasks) Create(_ context.Context, t *model.Task) error {
	cpy := *t
	cpy.CreatedAt = time.Now()
	cpy.UpdatedAt = cpy.CreatedAt
	f.byID[t.ID] = &cpy
	return nil
}

func (f *memTasks) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Task, error) {
	out := []model.Task{}
	for _, t := range f.byID {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *memTasks) Get(_ context.Context, userID, taskID uuid.UUID) (*model.Task, error) {
	t, ok := f.byID[taskID]
	if !ok || t.UserID != userID {
		return nil, errs.ErrNotFound
	}
	c := *t
	return &c, nil
}

func (f *memTasks) Update(_ context.Context, userID, taskID uuid.UUID, upd model.TaskUpdate) error {
	t, ok := f.byID[taskID]
	if !ok || t.UserID != userID {
		return errs.ErrNotFound
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	if upd.Result != nil {
		t.Result = upd.Result
	}
	t.UpdatedAt = time.Now()
	return nil
}

func (f *memTasks) Delete(_ context.Context, userID, taskID uuid.UUID) error {
	t, ok := f.byID[taskID]
	if !ok || t.UserID != userID {
		return errs.ErrNotFound
	}
	delete(f.byID, taskID)
	return nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type testServer struct {
	router *gin.Engine
	tokens *token.Manager
	users  *memUsers
	tasks  *memTasks
	ping   *fakePinger
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	users := &memUsers{byEmail: map[string]*model.User{}}
	tasks := &memTasks{byID: map[uuid.UUID]*model.Task{}}
	ping := &fakePinger{}

	tokens := token.NewManager([]byte("test-access"), []byte("test-refresh"), 15*time.Minute, 7*24*time.Hour)
	authSvc := service.NewAuthService(users, tokens, bcrypt.MinCost)
	taskSvc := service.NewTaskService(tasks)

	cookies := CookiePolicy{MaxAge: 7 * 24 * time.Hour, Production: false}
	h := NewHandlers(authSvc, taskSvc, ping, cookies, false)
	router := NewRouter(h, tokens, zap.NewNop(), []string{"*"}, false)

	return &testServer{router: router, tokens: tokens, users: users, tasks: tasks, ping: ping}
}

func (s *testServer) do(t *testing.T, method, path string, body any, mod ...func(*http.Request)) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, m := range mod {
		m(req)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func withBearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func withCookie(value string) func(*http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: value})
	}
}

// refreshCookie extracts the refresh cookie from a recorded response.
func refreshCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == RefreshCookieName {
			return ck
		}
	}
	return nil
}

// register is a shorthand for a successful registration.
func (s *testServer) register(t *testing.T, email, password, name string) (accessToken, refreshToken string) {
	t.Helper()
	w, resp := s.do(t, http.MethodPost, "/api/auth/register",
		gin.H{"email": email, "password": password, "name": name})
	require.Equal(t, http.StatusCreated, w.Code)
	ck := refreshCookie(t, w)
	require.NotNil(t, ck)
	return resp.AccessToken, ck.Value
}
