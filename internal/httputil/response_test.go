package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/sharelink/internal/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedCode    string
		expectedMessage string
	}{
		{
			name:            "not found",
			err:             apperrors.Wrap(apperrors.ErrNotFound, "share link not found"),
			expectedStatus:  http.StatusNotFound,
			expectedCode:    "not_found",
			expectedMessage: "share link not found",
		},
		{
			name:            "gone",
			err:             apperrors.Wrap(apperrors.ErrGone, "share link has expired"),
			expectedStatus:  http.StatusGone,
			expectedCode:    "gone",
			expectedMessage: "share link has expired",
		},
		{
			name:            "quota exceeded",
			err:             apperrors.Wrap(apperrors.ErrQuotaExceeded, "share link access limit reached"),
			expectedStatus:  http.StatusTooManyRequests,
			expectedCode:    "quota_exceeded",
			expectedMessage: "share link access limit reached",
		},
		{
			name:            "invalid input",
			err:             apperrors.Wrap(apperrors.ErrInvalidInput, "max_access must be greater than 0"),
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    "invalid_input",
			expectedMessage: "max_access must be greater than 0",
		},
		{
			name:            "forbidden",
			err:             apperrors.Wrap(apperrors.ErrForbidden, "only the creator can deactivate a share link"),
			expectedStatus:  http.StatusForbidden,
			expectedCode:    "forbidden",
			expectedMessage: "only the creator can deactivate a share link",
		},
		{
			name:            "unauthorized",
			err:             apperrors.ErrUnauthorized,
			expectedStatus:  http.StatusUnauthorized,
			expectedCode:    "unauthorized",
			expectedMessage: "Authentication is required",
		},
		{
			name:            "conflict",
			err:             apperrors.ErrConflict,
			expectedStatus:  http.StatusConflict,
			expectedCode:    "conflict",
			expectedMessage: "A conflict occurred with existing data",
		},
		{
			name:            "internal error hides details",
			err:             errors.New("pq: relation \"share_links\" does not exist"),
			expectedStatus:  http.StatusInternalServerError,
			expectedCode:    "internal_error",
			expectedMessage: "An internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()

			HandleErrorGin(c, tt.err, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.expectedCode, response.Error)
			assert.Equal(t, tt.expectedMessage, response.Message)
		})
	}
}

func TestHandleErrorGin_NilError(t *testing.T) {
	c, w := newTestContext()

	HandleErrorGin(c, nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext()

	HandleBadRequestGin(c, errors.New("invalid character '}'"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"bad_request","message":"invalid character '}'"}`, w.Body.String())
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext()

	err := apperrors.Wrap(apperrors.ErrInvalidInput, "customer_id: cannot be blank.")
	HandleValidationErrorGin(c, err, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(
		t,
		`{"success":false,"error":"validation_error","message":"customer_id: cannot be blank."}`,
		w.Body.String(),
	)
}
