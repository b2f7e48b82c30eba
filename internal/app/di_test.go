package app

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/sharelink/internal/config"
)

func newTestConfig() *config.Config {
	return &config.Config{
		ServerHost:          "127.0.0.1",
		ServerPort:          0,
		DBDriver:            "postgres",
		LogLevel:            "error",
		AuthTokenExpiration: time.Hour,
		MetricsNamespace:    "sharelink_test",
		MetricsPort:         0,
		BlobBucketURL:       "mem://",
		BlobSignConcurrency: 2,
		SignedURLTTLPolicy:  "floor",
		SignedURLMinTTL:     5 * time.Minute,
	}
}

// injectDB marks the database as initialized so the container never dials a real server.
func injectDB(c *Container, db *sql.DB) {
	c.dbInit.Do(func() {
		c.db = db
	})
}

func TestNewContainer(t *testing.T) {
	cfg := newTestConfig()
	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainer_Logger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "invalid"} {
		t.Run(level, func(t *testing.T) {
			container := NewContainer(&config.Config{LogLevel: level})

			logger := container.Logger()
			require.NotNil(t, logger)
			assert.Same(t, logger, container.Logger())
		})
	}
}

func TestContainer_DBErrorIsRemembered(t *testing.T) {
	cfg := newTestConfig()
	cfg.DBDriver = "invalid_driver"
	container := NewContainer(cfg)

	db, err := container.DB()
	assert.Error(t, err)
	assert.Nil(t, db)

	_, err = container.DB()
	assert.Error(t, err)

	_, err = container.ShareLinkUseCase()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database")
}

func TestContainer_UnsupportedDriverForRepositories(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	cfg := newTestConfig()
	cfg.DBDriver = "sqlite"
	container := NewContainer(cfg)
	injectDB(container, db)

	_, err = container.LinkRepository()
	assert.ErrorContains(t, err, "unsupported database driver")

	_, err = container.OperatorRepository()
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestContainer_TTLPolicy(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		container := NewContainer(newTestConfig())

		policy, err := container.TTLPolicy()
		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, policy.TTL(time.Minute))
	})

	t.Run("Invalid", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.SignedURLTTLPolicy = "forever"
		container := NewContainer(cfg)

		policy, err := container.TTLPolicy()
		assert.Error(t, err)
		assert.Nil(t, policy)
	})
}

func TestContainer_MetricsDisabled(t *testing.T) {
	container := NewContainer(newTestConfig())

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	assert.Nil(t, provider)

	businessMetrics, err := container.BusinessMetrics()
	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)

	server, err := container.MetricsServer()
	require.NoError(t, err)
	assert.Nil(t, server)
}

func TestContainer_HTTPServerWiring(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql"} {
		t.Run(driver, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)

			cfg := newTestConfig()
			cfg.DBDriver = driver
			cfg.MetricsEnabled = true
			container := NewContainer(cfg)
			injectDB(container, db)

			server, err := container.HTTPServer()
			require.NoError(t, err)
			require.NotNil(t, server)

			w := httptest.NewRecorder()
			server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, http.StatusOK, w.Code)

			w = httptest.NewRecorder()
			server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/share-links", nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			metricsServer, err := container.MetricsServer()
			require.NoError(t, err)
			require.NotNil(t, metricsServer)

			mock.ExpectClose()
			require.NoError(t, container.Shutdown(context.Background()))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestContainer_ShutdownWithoutInitialization(t *testing.T) {
	container := NewContainer(newTestConfig())
	assert.NoError(t, container.Shutdown(context.Background()))
}
