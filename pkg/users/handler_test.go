package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) CreateUser(ctx context.Context, username, password string) (User, error) {
	args := m.Called(ctx, username, password)
	user, _ := args.Get(0).(User)
	return user, args.Error(1)
}

func (m *mockUserService) GetUserByID(ctx context.Context, id int64) (User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(User)
	return user, args.Error(1)
}

func (m *mockUserService) GetUserByUsername(ctx context.Context, username string) (User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(User)
	return user, args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupUserRouter(service UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUserHandler(service)
	h.RegisterRoutes(r)
	return r
}

func TestUserHandler_CreateUser_Success(t *testing.T) {
	svc := new(mockUserService)
	r := setupUserRouter(svc)

	svc.On("CreateUser", mock.Anything, "alice", "secret").Return(User{ID: 1, Username: "alice"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"username":"alice","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var u User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	require.Equal(t, "alice", u.Username)
	require.NotContains(t, w.Body.String(), "secret")
	svc.AssertExpectations(t)
}

func TestUserHandler_CreateUser_MissingFields(t *testing.T) {
	svc := new(mockUserService)
	r := setupUserRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_CreateUser_DuplicateUsername(t *testing.T) {
	svc := new(mockUserService)
	r := setupUserRouter(svc)

	svc.On("CreateUser", mock.Anything, "alice", "secret").Return(User{}, ErrUsernameTaken)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"username":"alice","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestUserHandler_GetUserByID_NotFound(t *testing.T) {
	svc := new(mockUserService)
	r := setupUserRouter(svc)

	svc.On("GetUserByID", mock.Anything, int64(42)).Return(User{}, ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/users/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
