package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"emailrep/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithCORS(t *testing.T) {
	cases := []struct {
		name       string
		method     string
		wantStatus int
		wantNext   bool
	}{
		{name: "preflight stops", method: http.MethodOptions, wantStatus: http.StatusNoContent},
		{name: "check passes through", method: http.MethodPost, wantStatus: http.StatusAccepted, wantNext: true},
		{name: "lookup passes through", method: http.MethodGet, wantStatus: http.StatusAccepted, wantNext: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusAccepted)
			})

			rec := httptest.NewRecorder()
			controller.WithCORS(next).ServeHTTP(rec, httptest.NewRequest(tc.method, "/v1/check", nil))

			require.Equal(t, tc.wantNext, called)
			res := rec.Result()
			require.Equal(t, tc.wantStatus, res.StatusCode)
			require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
			require.Equal(t, "GET, POST, OPTIONS", res.Header.Get("Access-Control-Allow-Methods"))
			require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
			require.Equal(t, "X-Request-Id, Retry-After", res.Header.Get("Access-Control-Expose-Headers"))
			require.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"))
		})
	}
}
