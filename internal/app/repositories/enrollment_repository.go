package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/degreepath/internal/app/models"
	"github.com/yigit/degreepath/internal/pkg/apperrors"
	"github.com/yigit/degreepath/internal/pkg/dberrors"
	"github.com/yigit/degreepath/internal/pkg/logger"
)

const userCoursesTermKey = "user_courses_student_course_term_key"

// EnrollmentRepository reads and writes user_courses rows and the offerings
// they point at.
type EnrollmentRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db Querier) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a repository bound to tx.
func (r *EnrollmentRepository) WithTx(tx pgx.Tx) *EnrollmentRepository {
	return &EnrollmentRepository{db: tx, sb: r.sb}
}

// CompletedCourseCodes returns the distinct codes the student has completed.
func (r *EnrollmentRepository) CompletedCourseCodes(ctx context.Context, studentID uuid.UUID) ([]string, error) {
	sql, args, err := r.sb.Select("DISTINCT course_code").
		From("user_courses").
		Where(squirrel.Eq{"student_id": studentID, "completed": true}).
		OrderBy("course_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build completed courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID.String()).Msg("Error querying completed courses")
		return nil, fmt.Errorf("error querying completed courses: %w", err)
	}

	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("error scanning completed courses: %w", err)
	}
	return codes, nil
}

// TermOfferings returns the offerings the student is actively enrolled in for
// a term, with the course name attached. Completed rows are left out.
func (r *EnrollmentRepository) TermOfferings(ctx context.Context, studentID uuid.UUID, term models.Term) ([]*models.CourseOffering, error) {
	sql, args, err := r.sb.Select(
		"o.id", "o.course_code", "o.crn", "o.section", "o.semester_year", "o.semester_season::text",
		"o.meeting_days", "o.start_time", "o.end_time", "o.instructor_name", "o.location", "c.name",
	).
		From("user_courses uc").
		Join("course_offerings o ON o.id = uc.offering_id").
		Join("courses c ON c.code = o.course_code").
		Where(squirrel.Eq{
			"uc.student_id":     studentID,
			"uc.completed":      false,
			"o.semester_year":   term.Year,
			"o.semester_season": string(term.Season),
		}).
		OrderBy("o.course_code", "o.section").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build term offerings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID.String()).Str("term", term.String()).Msg("Error querying term offerings")
		return nil, fmt.Errorf("error querying term offerings: %w", err)
	}
	defer rows.Close()

	offerings := []*models.CourseOffering{}
	for rows.Next() {
		o := &models.CourseOffering{Course: &models.Course{}}
		var season string
		if err := rows.Scan(
			&o.ID,
			&o.CourseCode,
			&o.CRN,
			&o.Section,
			&o.Year,
			&season,
			&o.MeetingDays,
			&o.StartTime,
			&o.EndTime,
			&o.InstructorName,
			&o.Location,
			&o.Course.Name,
		); err != nil {
			return nil, fmt.Errorf("error scanning offering row: %w", err)
		}
		o.Season = models.Season(season)
		o.Course.Code = o.CourseCode
		offerings = append(offerings, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offering rows: %w", err)
	}
	return offerings, nil
}

// Record inserts an enrollment row. A second row for the same course and
// term returns apperrors.ErrConflict; an unknown course or
// offering returns apperrors.ErrResourceNotFound.
func (r *EnrollmentRepository) Record(ctx context.Context, uc *models.UserCourse) error {
	if uc.ID == uuid.Nil {
		uc.ID = uuid.New()
	}

	var season *string
	if uc.Season != nil {
		s := string(*uc.Season)
		season = &s
	}

	sql, args, err := r.sb.Insert("user_courses").
		Columns("id", "student_id", "course_code", "offering_id", "completed",
			"semester_year", "semester_season", "grade").
		Values(uc.ID, uc.StudentID, uc.CourseCode, uc.OfferingID, uc.Completed,
			uc.Year, squirrel.Expr("?::season", season), uc.Grade).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build record enrollment query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&uc.CreatedAt); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, userCoursesTermKey):
			return apperrors.NewConflictError(fmt.Sprintf("%s is already recorded for this term", uc.CourseCode))
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("unknown course or offering for %s", uc.CourseCode))
		}
		logger.Error().Err(err).Str("studentID", uc.StudentID.String()).Msg("Error recording enrollment")
		return fmt.Errorf("error recording enrollment: %w", err)
	}
	return nil
}

// RecordCompletion inserts uc and returns the student's completed codes as
// they stood just before the insert. Both run in one transaction holding a
// per-student advisory lock, so concurrent recordings for the same student
// see each other's rows.
func (r *EnrollmentRepository) RecordCompletion(ctx context.Context, uc *models.UserCourse) ([]string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	// no-op once committed
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", uc.StudentID.String()); err != nil {
		logger.Error().Err(err).Str("studentID", uc.StudentID.String()).Msg("Error locking student record")
		return nil, fmt.Errorf("error locking student record: %w", err)
	}

	txRepo := r.WithTx(tx)
	before, err := txRepo.CompletedCourseCodes(ctx, uc.StudentID)
	if err != nil {
		return nil, err
	}
	if err := txRepo.Record(ctx, uc); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return before, nil
}

// ListByStudent returns every enrollment row of a student, newest term first.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.UserCourse, error) {
	sql, args, err := r.sb.Select("id", "student_id", "course_code", "offering_id", "completed",
		"semester_year", "semester_season::text", "grade", "created_at").
		From("user_courses").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("semester_year DESC NULLS LAST", "course_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	list := []*models.UserCourse{}
	for rows.Next() {
		uc := &models.UserCourse{}
		var season *string
		if err := rows.Scan(&uc.ID, &uc.StudentID, &uc.CourseCode, &uc.OfferingID, &uc.Completed,
			&uc.Year, &season, &uc.Grade, &uc.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		if season != nil {
			s := models.Season(*season)
			uc.Season = &s
		}
		list = append(list, uc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}
	return list, nil
}
