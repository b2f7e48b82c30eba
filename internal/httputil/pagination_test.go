package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/allisson/sharelink/internal/httputil"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		query      string
		wantOffset int
		wantLimit  int
		wantErr    string
	}{
		{name: "defaults", query: "", wantOffset: 0, wantLimit: httputil.DefaultPageLimit},
		{name: "custom window", query: "?offset=20&limit=10", wantOffset: 20, wantLimit: 10},
		{name: "max limit", query: "?limit=100", wantLimit: httputil.MaxPageLimit},
		{name: "limit above max", query: "?limit=101", wantErr: "limit"},
		{name: "zero limit", query: "?limit=0", wantErr: "limit"},
		{name: "negative offset", query: "?offset=-5", wantErr: "offset"},
		{name: "non numeric", query: "?offset=first", wantErr: "must be integers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/v1/customers/x/share-links"+tt.query, nil)

			offset, limit, err := httputil.ParsePagination(c)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
