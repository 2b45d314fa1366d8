package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/anonbbs-dev/anonbbs/internal/domain"
	"github.com/anonbbs-dev/anonbbs/internal/markdown"
	"github.com/anonbbs-dev/anonbbs/internal/middleware"
)

type MockIdentityService struct {
	MockMint           func(clientAddr string) (domain.User, error)
	MockResolve        func(token, clientAddr string) (domain.User, error)
	MockUpdateNickname func(userId domain.UserId, nickname string) error
}

func (m *MockIdentityService) Mint(ctx context.Context, clientAddr string) (domain.User, error) {
	if m.MockMint != nil {
		return m.MockMint(clientAddr)
	}
	return domain.User{}, nil
}

func (m *MockIdentityService) Resolve(ctx context.Context, token, clientAddr string) (domain.User, error) {
	if m.MockResolve != nil {
		return m.MockResolve(token, clientAddr)
	}
	return domain.User{}, nil
}

func (m *MockIdentityService) UpdateNickname(ctx context.Context, userId domain.UserId, nickname string) error {
	if m.MockUpdateNickname != nil {
		return m.MockUpdateNickname(userId, nickname)
	}
	return nil
}

type MockBoardService struct {
	MockCreate func(name, introduction string) (domain.BoardId, error)
	MockGet    func(id domain.BoardId) (domain.Board, error)
	MockGetAll func() ([]domain.Board, error)
	MockUpdate func(id domain.BoardId, update domain.BoardUpdate) error
}

func (m *MockBoardService) Create(ctx context.Context, name, introduction string) (domain.BoardId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(name, introduction)
	}
	return 1, nil
}

func (m *MockBoardService) Get(ctx context.Context, id domain.BoardId) (domain.Board, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.Board{}, nil
}

func (m *MockBoardService) GetAll(ctx context.Context) ([]domain.Board, error) {
	if m.MockGetAll != nil {
		return m.MockGetAll()
	}
	return nil, nil
}

func (m *MockBoardService) Update(ctx context.Context, id domain.BoardId, update domain.BoardUpdate) error {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, update)
	}
	return nil
}

type MockThreadService struct {
	MockCreate      func(creationData domain.ThreadCreationData) (domain.ThreadId, error)
	MockReply       func(creationData domain.ReplyCreationData) (domain.PostId, error)
	MockListByBoard func(boardId domain.BoardId) ([]domain.ThreadSummary, error)
	MockPosts       func(threadId domain.ThreadId) ([]domain.PostView, error)
	MockBoard       func(threadId domain.ThreadId) (domain.Board, error)
	MockUserHistory func(userId domain.UserId) ([]domain.UserPostRecord, error)
}

func (m *MockThreadService) Create(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(creationData)
	}
	return 1, nil
}

func (m *MockThreadService) Reply(ctx context.Context, creationData domain.ReplyCreationData) (domain.PostId, error) {
	if m.MockReply != nil {
		return m.MockReply(creationData)
	}
	return 1, nil
}

func (m *MockThreadService) ListByBoard(ctx context.Context, boardId domain.BoardId) ([]domain.ThreadSummary, error) {
	if m.MockListByBoard != nil {
		return m.MockListByBoard(boardId)
	}
	return nil, nil
}

func (m *MockThreadService) Posts(ctx context.Context, threadId domain.ThreadId) ([]domain.PostView, error) {
	if m.MockPosts != nil {
		return m.MockPosts(threadId)
	}
	return nil, nil
}

func (m *MockThreadService) Board(ctx context.Context, threadId domain.ThreadId) (domain.Board, error) {
	if m.MockBoard != nil {
		return m.MockBoard(threadId)
	}
	return domain.Board{}, nil
}

func (m *MockThreadService) UserHistory(ctx context.Context, userId domain.UserId) ([]domain.UserPostRecord, error) {
	if m.MockUserHistory != nil {
		return m.MockUserHistory(userId)
	}
	return nil, nil
}

func newTestHandler() *Handler {
	return &Handler{renderer: markdown.New()}
}

func createRequest(t *testing.T, method, url string, body []byte, user *domain.User) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	if user != nil {
		req = req.WithContext(middleware.ContextWithUser(req.Context(), user))
	}
	return req
}

func testUser() *domain.User {
	return &domain.User{Id: 123, ShowId: "a1b2c3d4", Session: "secret", LastSeen: time.Now()}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, map[string]string{"message": "hello"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "{\"message\":\"hello\"}\n", rr.Body.String())
}

func TestParseIntParam(t *testing.T) {
	id, err := parseIntParam("42", "board")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseIntParam("abc", "board")
	assert.Error(t, err)
}

// newRouter mounts the handler the way the real router does, so URL
// parameters resolve in tests.
func newRouter(pattern, method string, handlerFunc http.HandlerFunc) *chi.Mux {
	router := chi.NewRouter()
	router.Method(method, pattern, handlerFunc)
	return router
}
