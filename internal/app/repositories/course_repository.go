package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/degreepath/internal/app/models"
	"github.com/yigit/degreepath/internal/pkg/logger"
)

var courseColumns = []string{
	"code", "name", "credits", "department", "category", "description",
	"prerequisites", "difficulty", "workload_hours", "updated_at",
}

// CourseRepository handles catalog course rows
type CourseRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db Querier) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a repository bound to tx.
func (r *CourseRepository) WithTx(tx pgx.Tx) *CourseRepository {
	return &CourseRepository{db: tx, sb: r.sb}
}

// Upsert inserts a course or refreshes every column of an existing one.
func (r *CourseRepository) Upsert(ctx context.Context, course *models.Course) error {
	prereqs := course.Prerequisites
	if prereqs == nil {
		prereqs = []string{}
	}

	sql, args, err := r.sb.Insert("courses").
		Columns("code", "name", "credits", "department", "category", "description",
			"prerequisites", "difficulty", "workload_hours").
		Values(course.Code, course.Name, course.Credits, course.Department, course.Category,
			course.Description, prereqs, course.Difficulty, course.WorkloadHours).
		Suffix(`ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			credits = EXCLUDED.credits,
			department = EXCLUDED.department,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			prerequisites = EXCLUDED.prerequisites,
			difficulty = EXCLUDED.difficulty,
			workload_hours = EXCLUDED.workload_hours,
			updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.UpdatedAt); err != nil {
		logger.Error().Err(err).Str("code", course.Code).Msg("Error upserting course")
		return fmt.Errorf("error upserting course %s: %w", course.Code, err)
	}
	return nil
}

// GetAll returns every course ordered by code.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(
		&c.Code,
		&c.Name,
		&c.Credits,
		&c.Department,
		&c.Category,
		&c.Description,
		&c.Prerequisites,
		&c.Difficulty,
		&c.WorkloadHours,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
