package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserByID(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepo(db)
	ctx := t.Context()

	expectedSQL := regexp.QuoteMeta(`SELECT id, username, email, admin FROM users WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(expectedSQL).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "admin"}).AddRow(int64(7), "jane", "jane@example.com", true))

		user, err := repo.GetUserByID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "jane", user.Username)
		assert.True(t, user.Admin)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mock.ExpectQuery(expectedSQL).WithArgs(int64(8)).WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByID(ctx, 8)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		mock.ExpectQuery(expectedSQL).WithArgs(int64(7)).WillReturnError(dbErr)

		_, err := repo.GetUserByID(ctx, 7)

		assert.ErrorIs(t, err, dbErr)
		assert.ErrorContains(t, err, "querying database")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
