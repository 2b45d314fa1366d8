package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminOnly(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	gate := AdminOnly("admin", string(hash))(next)

	testCases := []struct {
		name           string
		user           string
		pass           string
		omitAuth       bool
		expectedStatus int
	}{
		{name: "Valid Credentials", user: "admin", pass: "hunter2", expectedStatus: http.StatusOK},
		{name: "Wrong Password", user: "admin", pass: "letmein", expectedStatus: http.StatusUnauthorized},
		{name: "Wrong Username", user: "root", pass: "hunter2", expectedStatus: http.StatusUnauthorized},
		{name: "Missing Header", omitAuth: true, expectedStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if !tc.omitAuth {
				req.SetBasicAuth(tc.user, tc.pass)
			}

			gate.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Basic realm=")
			}
		})
	}
}
