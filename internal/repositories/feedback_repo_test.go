package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"prodfeedback/internal/models/db_models"
	"prodfeedback/internal/repositories"
)

func newFeedback(productID, name, email, comment string) *db_models.Feedback {
	return &db_models.Feedback{
		ProductID: productID,
		Name:      name,
		Email:     email,
		Comment:   comment,
	}
}

func newMockRepo(t *testing.T) (*repositories.FeedbackRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return repositories.NewFeedbackRepository(gdb), mock
}

func TestCountByProduct(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "feedbacks" WHERE product_id = \$1`).
		WithArgs("123").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByProduct(context.Background(), "123")
	require.NoError(t, err)
	require.Equal(t, int64(7), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByProductOrdersNewestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "product_id", "name", "email", "comment", "created_at"}).
		AddRow(int64(3), "123", "C", "c@example.com", "third", now).
		AddRow(int64(2), "123", "B", "b@example.com", "second", now.Add(-time.Minute))

	mock.ExpectQuery(`SELECT \* FROM "feedbacks" WHERE product_id = .+ ORDER BY created_at DESC, id DESC`).
		WillReturnRows(rows)

	feedbacks, err := repo.ListByProduct(context.Background(), "123", 0, 3)
	require.NoError(t, err)
	require.Len(t, feedbacks, 2)
	require.Equal(t, int64(3), feedbacks[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssignsID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "feedbacks"`).
		WithArgs("123", "A", "a@b.com", "hi", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectCommit()

	feedback := newFeedback("123", "A", "a@b.com", "hi")
	require.NoError(t, repo.Create(context.Background(), feedback))
	require.Equal(t, int64(42), feedback.ID)
	require.False(t, feedback.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMutableFieldsOnly(t *testing.T) {
	repo, mock := newMockRepo(t)

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "feedbacks" WHERE "feedbacks"\."id" = .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "name", "email", "comment", "created_at"}).
			AddRow(int64(5), "123", "Old", "old@example.com", "old text", createdAt))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "feedbacks" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := repo.Update(context.Background(), 5, "New", "new@example.com", "new text")
	require.NoError(t, err)
	require.Equal(t, int64(5), updated.ID)
	require.Equal(t, "New", updated.Name)
	require.Equal(t, "new@example.com", updated.Email)
	require.Equal(t, "new text", updated.Comment)
	require.Equal(t, createdAt, updated.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "feedbacks" WHERE "feedbacks"\."id" = .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "name", "email", "comment", "created_at"}))

	_, err := repo.Update(context.Background(), 404, "A", "a@b.com", "hi")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "feedbacks" WHERE "feedbacks"\."id" = .+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "feedbacks" WHERE "feedbacks"\."id" = .+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 404)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
