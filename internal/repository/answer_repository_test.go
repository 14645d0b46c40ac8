package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockRepo wires a sqlmock connection through GORM so the exact SQL
// issued by the repository can be asserted.
func setupMockRepo(t *testing.T) (AnswerRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewAnswerRepository(db), mock
}

// TestUpvote_SingleAtomicUpdate verifies the counter is bumped with one
// UPDATE expression rather than a read-modify-write, so concurrent upvotes
// cannot lose increments.
func TestUpvote_SingleAtomicUpdate(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec("UPDATE `answers` SET `upvotes`=upvotes \\+ \\?").
		WithArgs(1, "answer-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.NewRows([]string{
		"id", "content", "question_id", "author_id", "parent_id",
		"is_anonymous", "upvotes", "created_at",
	}).AddRow("answer-1", "useful answer", "question-1", nil, nil, false, 5, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM `answers`").WillReturnRows(rows)

	answer, err := repo.Upvote("answer-1")
	require.NoError(t, err)
	require.Equal(t, "answer-1", answer.ID)
	require.Equal(t, 5, answer.Upvotes)

	require.NoError(t, mock.ExpectationsWereMet())
}

// TestUpvote_MissingAnswer verifies a zero-row UPDATE surfaces as
// gorm.ErrRecordNotFound without any follow-up query.
func TestUpvote_MissingAnswer(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec("UPDATE `answers` SET `upvotes`=upvotes \\+ \\?").
		WithArgs(1, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Upvote("missing")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
