package health

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/hellofresh/health-go/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthChecks(t *testing.T) {
	t.Run("Success - All Dependencies Up", func(t *testing.T) {
		// Arrange
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		redisClient, redisMock := redismock.NewClientMock()

		dbMock.ExpectPing()
		dbMock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
		redisMock.ExpectPing().SetVal("PONG")

		h, err := NewHealthHandler(&Endpoints{DB: db, RedisClient: redisClient})
		require.NoError(t, err)

		// Act
		check := h.Measure(context.Background())

		// Assert
		assert.Equal(t, health.StatusOK, check.Status)
		assert.Empty(t, check.Failures)
		assert.Equal(t, componentName, check.Component.Name)
		assert.NoError(t, dbMock.ExpectationsWereMet())
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("Failure - Database Down", func(t *testing.T) {
		// Arrange
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		redisClient, redisMock := redismock.NewClientMock()

		dbMock.ExpectPing().WillReturnError(errors.New("connection refused"))
		redisMock.ExpectPing().SetVal("PONG")

		h, err := NewHealthHandler(&Endpoints{DB: db, RedisClient: redisClient})
		require.NoError(t, err)

		// Act
		check := h.Measure(context.Background())

		// Assert
		assert.Equal(t, health.StatusUnavailable, check.Status)
		assert.Contains(t, check.Failures["database"], "connection refused")
	})

	t.Run("Success - Redis Down Degrades", func(t *testing.T) {
		// Arrange
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		redisClient, redisMock := redismock.NewClientMock()

		dbMock.ExpectPing()
		dbMock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
		redisMock.ExpectPing().SetErr(errors.New("dial tcp: timeout"))

		h, err := NewHealthHandler(&Endpoints{DB: db, RedisClient: redisClient})
		require.NoError(t, err)

		// Act
		check := h.Measure(context.Background())

		// Assert
		assert.Equal(t, health.StatusPartiallyAvailable, check.Status)
		assert.Contains(t, check.Failures, "redis")
	})
}
