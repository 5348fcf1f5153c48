package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/degreepath/internal/app/models"
	"github.com/yigit/degreepath/internal/pkg/apperrors"
)

// recordingQuerier captures the last statement and answers QueryRow with
// rowErr. Query returns rows of codes when set. Every statement is logged.
type recordingQuerier struct {
	sql    string
	args   []any
	rowErr error
	codes  []string
	log    []string
	tx     *recordingTx
}

func (q *recordingQuerier) record(sql string, args []any) {
	q.sql, q.args = sql, args
	q.log = append(q.log, sql)
}

func (q *recordingQuerier) Begin(context.Context) (pgx.Tx, error) {
	q.tx = &recordingTx{q: q}
	return q.tx, nil
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.record(sql, args)
	return pgconn.CommandTag{}, nil
}

func (q *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.record(sql, args)
	if q.codes == nil {
		return nil, errors.New("not supported")
	}
	return &codeRows{codes: q.codes, i: -1}, nil
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.record(sql, args)
	return errRow{q.rowErr}
}

// recordingTx routes statements back to its querier and tracks the outcome.
// Methods it does not override panic through the nil embedded pgx.Tx.
type recordingTx struct {
	pgx.Tx
	q          *recordingQuerier
	committed  bool
	rolledBack bool
}

func (tx *recordingTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return tx.q.Exec(ctx, sql, args...)
}

func (tx *recordingTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return tx.q.Query(ctx, sql, args...)
}

func (tx *recordingTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return tx.q.QueryRow(ctx, sql, args...)
}

func (tx *recordingTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *recordingTx) Rollback(context.Context) error {
	if tx.committed {
		return pgx.ErrTxClosed
	}
	tx.rolledBack = true
	return nil
}

// codeRows yields one string column per row.
type codeRows struct {
	pgx.Rows
	codes []string
	i     int
}

func (r *codeRows) Next() bool {
	r.i++
	return r.i < len(r.codes)
}

func (r *codeRows) Scan(dest ...any) error {
	*dest[0].(*string) = r.codes[r.i]
	return nil
}

func (r *codeRows) Err() error { return nil }

func (r *codeRows) Close() {}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func TestCourseRepository_UpsertStatement(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewCourseRepository(q)

	err := repo.Upsert(context.Background(), &models.Course{Code: "CSE017", Name: "Programming", Credits: 3})
	require.NoError(t, err)

	assert.Contains(t, q.sql, "INSERT INTO courses")
	assert.Contains(t, q.sql, "ON CONFLICT (code) DO UPDATE")
	assert.Contains(t, q.sql, "$9")
	require.Len(t, q.args, 9)
	assert.Equal(t, []string{}, q.args[6], "nil prerequisites are stored as an empty array")
}

func TestEnrollmentRepository_RecordErrors(t *testing.T) {
	tests := []struct {
		name   string
		rowErr error
		target error
	}{
		{"duplicate term row", &pgconn.PgError{Code: "23505", ConstraintName: userCoursesTermKey}, apperrors.ErrConflict},
		{"unknown course", &pgconn.PgError{Code: "23503"}, apperrors.ErrResourceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &recordingQuerier{rowErr: tt.rowErr}
			err := NewEnrollmentRepository(q).Record(context.Background(), &models.UserCourse{
				StudentID:  uuid.New(),
				CourseCode: "CSE017",
			})
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestEnrollmentRepository_RecordAssignsID(t *testing.T) {
	q := &recordingQuerier{}
	season := models.SeasonFall
	uc := &models.UserCourse{StudentID: uuid.New(), CourseCode: "CSE017", Completed: true, Season: &season}

	require.NoError(t, NewEnrollmentRepository(q).Record(context.Background(), uc))
	assert.NotEqual(t, uuid.Nil, uc.ID)
	assert.Contains(t, q.sql, "$7::season")
}

func TestEnrollmentRepository_TermOfferingsActiveOnly(t *testing.T) {
	q := &recordingQuerier{}
	studentID := uuid.New()

	_, err := NewEnrollmentRepository(q).TermOfferings(context.Background(), studentID, models.Term{Year: 2025, Season: models.SeasonFall})
	require.Error(t, err)

	// squirrel.Eq orders its keys
	assert.Contains(t, q.sql, "o.semester_season = $1 AND o.semester_year = $2 AND uc.completed = $3 AND uc.student_id = $4")
	assert.Equal(t, []any{"Fall", 2025, false, studentID}, q.args)
}

func TestEnrollmentRepository_RecordCompletion(t *testing.T) {
	q := &recordingQuerier{codes: []string{"CSE007", "MATH021"}}
	uc := &models.UserCourse{StudentID: uuid.New(), CourseCode: "CSE017", Completed: true}

	before, err := NewEnrollmentRepository(q).RecordCompletion(context.Background(), uc)
	require.NoError(t, err)

	assert.Equal(t, []string{"CSE007", "MATH021"}, before)
	require.NotNil(t, q.tx)
	assert.True(t, q.tx.committed)
	assert.False(t, q.tx.rolledBack)

	require.Len(t, q.log, 3)
	assert.Contains(t, q.log[0], "pg_advisory_xact_lock")
	assert.Contains(t, q.log[1], "SELECT DISTINCT course_code FROM user_courses")
	assert.Contains(t, q.log[2], "INSERT INTO user_courses")
}

func TestEnrollmentRepository_RecordCompletionRollsBack(t *testing.T) {
	tests := []struct {
		name   string
		q      *recordingQuerier
		target error
		stmts  int
	}{
		{"read fails", &recordingQuerier{}, nil, 2},
		{"insert conflicts", &recordingQuerier{
			codes:  []string{},
			rowErr: &pgconn.PgError{Code: "23505", ConstraintName: userCoursesTermKey},
		}, apperrors.ErrConflict, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &models.UserCourse{StudentID: uuid.New(), CourseCode: "CSE017", Completed: true}
			_, err := NewEnrollmentRepository(tt.q).RecordCompletion(context.Background(), uc)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}

			require.NotNil(t, tt.q.tx)
			assert.False(t, tt.q.tx.committed)
			assert.True(t, tt.q.tx.rolledBack)
			assert.Len(t, tt.q.log, tt.stmts)
		})
	}
}

func TestEnrollmentRepository_QueryErrorsPropagate(t *testing.T) {
	repo := NewEnrollmentRepository(&recordingQuerier{})

	_, err := repo.CompletedCourseCodes(context.Background(), uuid.New())
	assert.Error(t, err)

	_, err = repo.TermOfferings(context.Background(), uuid.New(), models.Term{Year: 2025, Season: models.SeasonFall})
	assert.Error(t, err)
}
