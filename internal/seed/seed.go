package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/degreepath/internal/app/models"
	appRepos "github.com/yigit/degreepath/internal/app/repositories"
	"github.com/yigit/degreepath/internal/catalog"
	"github.com/yigit/degreepath/internal/db"
)

// SyncCatalog upserts every catalog course in one transaction, then warns
// about rows in the courses table that the catalog no longer lists.
func SyncCatalog(ctx context.Context, database *db.PostgresDB, program *catalog.Program, lgr zerolog.Logger) error {
	courses := program.Graph.Courses()
	lgr.Info().Str("program", program.ID).Int("courses", len(courses)).Msg("Syncing catalog courses...")

	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repo := appRepos.NewCourseRepository(database.Pool).WithTx(tx)
		for _, c := range courses {
			if err := repo.Upsert(ctx, appModels.CourseFromCurriculum(c)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to sync catalog courses: %w", err)
	}

	stored, err := appRepos.NewCourseRepository(database.Pool).GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list stored courses: %w", err)
	}
	if stale := StaleCourses(program, stored); len(stale) > 0 {
		lgr.Warn().Strs("codes", stale).Msg("Stored courses missing from the catalog")
	}

	lgr.Info().Int("stored", len(stored)).Msg("Catalog courses synced")
	return nil
}

// StaleCourses lists stored course codes the program does not define.
func StaleCourses(program *catalog.Program, stored []*appModels.Course) []string {
	var stale []string
	for _, row := range stored {
		if _, err := program.Graph.Course(row.Code); err != nil {
			stale = append(stale, row.Code)
		}
	}
	return stale
}
