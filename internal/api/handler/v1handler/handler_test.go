package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"emailrep/internal/api/handler/v1handler"
	"emailrep/pkg/logger"
	"emailrep/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Setup(logger.DevelopmentEnvironment, ""); err != nil {
		panic(err)
	}

	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrBadRequest, "Invalid email address"))
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "Invalid email address", res.Response.Message)
}

func TestNewError_WrappedKeepsMessageNotCause(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := fmt.Errorf("could not evaluate: %w",
		serrors.Wrap(serrors.ErrTimeout, errors.New("context deadline exceeded"), "evaluation did not finish"))
	res := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusGatewayTimeout, res.StatusCode)
	require.Equal(t, serrors.ErrTimeout.Error(), res.Response.Code)
	require.Equal(t, "evaluation did not finish", res.Response.Message)
}

func TestNewError_StatusByKind(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	cases := map[serrors.Kind]int{
		serrors.ErrBadRequest:   http.StatusBadRequest,
		serrors.ErrUnauthorized: http.StatusUnauthorized,
		serrors.ErrNotFound:     http.StatusNotFound,
		serrors.ErrRateLimited:  http.StatusTooManyRequests,
		serrors.ErrTimeout:      http.StatusGatewayTimeout,
		serrors.ErrUnavailable:  http.StatusServiceUnavailable,
		serrors.ErrInternal:     http.StatusInternalServerError,
	}
	for kind, status := range cases {
		res := h.NewError(context.Background(), serrors.KindOnly(kind))
		require.Equal(t, status, res.StatusCode, kind.Error())
	}
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrInternal, "db password is hunter2"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, "internal error", res.Response.Message)
}
