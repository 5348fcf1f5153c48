package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/degreepath/internal/app/models/dto"
	"github.com/yigit/degreepath/internal/domain/planning"
)

func TestPlanService_Check(t *testing.T) {
	store := &fakeEnrollmentStore{completed: []string{"MATH021", "CSE007"}}
	svc := NewPlanService(testProgram(t), store, zerolog.Nop())

	resp, err := svc.Check(context.Background(), uuid.New(), dto.PlanCheckRequest{Semesters: []dto.SemesterRequest{
		{Label: "Y1", Courses: []string{"MATH022", "CSE017"}},
		{Label: "Y2", Courses: []string{"CSE340"}},
	}})
	require.NoError(t, err)

	assert.False(t, resp.Valid)
	assert.InDelta(t, 7, resp.Semesters[0].Credits, 1e-9)
	assert.False(t, resp.Semesters[0].Overloaded)
	assert.Equal(t, []planning.Violation{{Course: "CSE340", Missing: []string{"CSE140"}}}, resp.Semesters[1].Violations)
	assert.InDelta(t, 13, resp.RemainingCredits, 1e-9)
	assert.Equal(t, planning.OverloadInfo{Needed: true, Semesters: 1, CreditsPerSemester: 7}, resp.Estimate)
}

func TestPlanService_CheckStoreError(t *testing.T) {
	store := &fakeEnrollmentStore{err: context.DeadlineExceeded}
	svc := NewPlanService(testProgram(t), store, zerolog.Nop())

	_, err := svc.Check(context.Background(), uuid.New(), dto.PlanCheckRequest{Semesters: []dto.SemesterRequest{{Label: "Y1"}}})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCatalogService(t *testing.T) {
	svc := NewCatalogService(testProgram(t))

	courses := svc.Courses()
	require.Len(t, courses, 6)
	assert.Equal(t, "MATH021", courses[0].Code)
	assert.Equal(t, []string{"MATH022", "CSE140"}, courses[0].Dependents)
	assert.Equal(t, []string{}, courses[5].Dependents)

	tracks := svc.Tracks()
	require.Len(t, tracks, 2)
	assert.InDelta(t, 8, tracks[0].TotalCredits, 1e-9)
	assert.InDelta(t, 10, tracks[1].TotalCredits, 1e-9)

	prog := svc.Program()
	assert.Equal(t, 6, prog.CourseCount)
	assert.Equal(t, []string{"Math", "CS"}, prog.Categories)

	_, err := svc.Course("NOPE")
	assert.Error(t, err)

	report := svc.Template()
	assert.True(t, report.Valid)
	assert.Empty(t, report.Semesters)
}
