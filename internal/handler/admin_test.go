package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonbbs-dev/anonbbs/internal/api"
	"github.com/anonbbs-dev/anonbbs/internal/domain"
	internal_errors "github.com/anonbbs-dev/anonbbs/internal/errors"
)

func TestCreateBoardHandler(t *testing.T) {
	h := newTestHandler()
	router := newRouter("/v1/admin/boards", http.MethodPost, h.CreateBoard)
	route := "/v1/admin/boards"

	t.Run("successful", func(t *testing.T) {
		h.board = &MockBoardService{
			MockCreate: func(name, introduction string) (domain.BoardId, error) {
				assert.Equal(t, "general", name)
				assert.Equal(t, "anything goes", introduction)
				return 5, nil
			},
		}

		rr := httptest.NewRecorder()
		body := []byte(`{"name": "general", "introduction": "anything goes"}`)
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, route, body, nil))

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp api.CreatedResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, int64(5), resp.Id)
	})

	t.Run("missing name", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, route, []byte(`{"introduction": "x"}`), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, route, []byte(`{invalid`), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate name", func(t *testing.T) {
		h.board = &MockBoardService{
			MockCreate: func(name, introduction string) (domain.BoardId, error) {
				return -1, internal_errors.Conflict("Board name already taken")
			},
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, route, []byte(`{"name": "general"}`), nil))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestUpdateBoardHandler(t *testing.T) {
	h := newTestHandler()
	router := newRouter("/v1/admin/boards/{board}", http.MethodPatch, h.UpdateBoard)

	t.Run("partial update", func(t *testing.T) {
		h.board = &MockBoardService{
			MockUpdate: func(id domain.BoardId, update domain.BoardUpdate) error {
				assert.Equal(t, domain.BoardId(5), id)
				require.NotNil(t, update.Introduction)
				assert.Equal(t, "updated", *update.Introduction)
				assert.Nil(t, update.Name)
				return nil
			},
		}

		rr := httptest.NewRecorder()
		body := []byte(`{"introduction": "updated"}`)
		router.ServeHTTP(rr, createRequest(t, http.MethodPatch, "/v1/admin/boards/5", body, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("non-numeric board id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPatch, "/v1/admin/boards/general", []byte(`{}`), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown board", func(t *testing.T) {
		h.board = &MockBoardService{
			MockUpdate: func(id domain.BoardId, update domain.BoardUpdate) error {
				return internal_errors.NotFound("Board not found")
			},
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPatch, "/v1/admin/boards/999", []byte(`{"name": "x"}`), nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
