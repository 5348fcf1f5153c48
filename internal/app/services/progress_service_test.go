package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/degreepath/internal/app/models"
	"github.com/yigit/degreepath/internal/app/models/dto"
	"github.com/yigit/degreepath/internal/domain/curriculum"
	"github.com/yigit/degreepath/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestProgressService_StudentProgress(t *testing.T) {
	store := &fakeEnrollmentStore{
		completed: []string{"MATH021", "CSE007", "OLD101"},
		list: []*models.UserCourse{
			{CourseCode: "MATH021", Completed: true},
			{CourseCode: "CSE017"},
			{CourseCode: "CSE017"},
		},
	}
	svc := NewProgressService(testProgram(t), store, zerolog.Nop())
	id := uuid.New()

	resp, err := svc.StudentProgress(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id.String(), resp.StudentID)
	assert.Equal(t, map[string]curriculum.CourseState{
		"MATH021": curriculum.StateCompleted,
		"MATH022": curriculum.StateAvailable,
		"CSE007":  curriculum.StateCompleted,
		"CSE017":  curriculum.StateAvailable,
		"CSE140":  curriculum.StateAvailable,
		"CSE340":  curriculum.StateLocked,
	}, resp.States)
	assert.Equal(t, 2, resp.Summary.Completed)
	assert.Equal(t, 33, resp.Summary.Percent)
	assert.InDelta(t, 13, resp.RemainingCredits, 1e-9)
	assert.Equal(t, []string{"CSE017"}, resp.InProgress)
	assert.Equal(t, []string{"MATH022", "CSE017", "CSE140"}, resp.Available)

	require.Len(t, resp.Tracks, 2)
	assert.Equal(t, dto.GroupProgressResponse{
		ID: "math", Name: "Mathematics", CompletedCount: 1, TotalCount: 2,
		CompletedCredits: 4, TotalCredits: 8, Percent: 50,
	}, resp.Tracks[0])

	require.Len(t, resp.Categories, 2)
	assert.Equal(t, "Math", resp.Categories[0].ID)
	// CS needs any two of its four courses
	assert.Equal(t, dto.GroupProgressResponse{
		ID: "CS", Name: "CS", CompletedCount: 1, TotalCount: 4,
		CompletedCredits: 1, TotalCredits: 10, RequiredCount: 2, Percent: 50,
	}, resp.Categories[1])
}

func TestProgressService_CategoryTargetSatisfied(t *testing.T) {
	store := &fakeEnrollmentStore{completed: []string{"CSE007", "CSE017"}}
	svc := NewProgressService(testProgram(t), store, zerolog.Nop())

	resp, err := svc.StudentProgress(context.Background(), uuid.New())
	require.NoError(t, err)

	cs := resp.Categories[1]
	assert.Equal(t, 2, cs.CompletedCount)
	assert.Equal(t, 100, cs.Percent)
	assert.True(t, cs.Satisfied)
	assert.False(t, resp.Categories[0].Satisfied)
}

func TestProgressService_StudentProgressStoreError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewProgressService(testProgram(t), &fakeEnrollmentStore{err: boom}, zerolog.Nop())

	_, err := svc.StudentProgress(context.Background(), uuid.New())
	assert.ErrorIs(t, err, boom)
}

func TestProgressService_CourseState(t *testing.T) {
	store := &fakeEnrollmentStore{completed: []string{"MATH021", "CSE007", "CSE140"}}
	svc := NewProgressService(testProgram(t), store, zerolog.Nop())

	got, err := svc.CourseState(context.Background(), uuid.New(), "CSE017")
	require.NoError(t, err)
	assert.Equal(t, &dto.CourseStateResponse{
		Code:                 "CSE017",
		State:                curriculum.StateAvailable,
		MissingPrerequisites: []string{},
		Unlocks:              []string{"CSE340"},
	}, got)

	got, err = svc.CourseState(context.Background(), uuid.New(), "CSE340")
	require.NoError(t, err)
	assert.Equal(t, curriculum.StateLocked, got.State)
	assert.Equal(t, []string{"CSE017"}, got.MissingPrerequisites)
	assert.Equal(t, []string{}, got.Unlocks)

	_, err = svc.CourseState(context.Background(), uuid.New(), "NOPE")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestProgressService_Preview(t *testing.T) {
	svc := NewProgressService(testProgram(t), &fakeEnrollmentStore{}, zerolog.Nop())

	resp, err := svc.Preview(dto.ProgressPreviewRequest{Completed: []string{"MATH021"}, CourseCode: "CSE140"})
	require.NoError(t, err)
	assert.Equal(t, curriculum.StateAvailable, resp.States["CSE140"])
	assert.Equal(t, 1, resp.Summary.Completed)
	require.NotNil(t, resp.Course)
	assert.Equal(t, []string{}, resp.Course.Unlocks)

	resp, err = svc.Preview(dto.ProgressPreviewRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp.Course)
	assert.Equal(t, 0, resp.Summary.Completed)

	_, err = svc.Preview(dto.ProgressPreviewRequest{CourseCode: "NOPE"})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestProgressService_RecordEnrollment(t *testing.T) {
	store := &fakeEnrollmentStore{completed: []string{"MATH021", "CSE007", "CSE140"}}
	svc := NewProgressService(testProgram(t), store, zerolog.Nop())
	id := uuid.New()
	year := 2025

	resp, err := svc.RecordEnrollment(context.Background(), id, dto.RecordEnrollmentRequest{
		CourseCode: "CSE017",
		Completed:  true,
		Year:       &year,
		Season:     strPtr("fall"),
		Grade:      strPtr("A"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"CSE340"}, resp.Unlocks)
	// the prior completions come from the same transaction as the insert
	assert.Equal(t, 1, store.atomicRecords)
	assert.Zero(t, store.completedReads)
	require.Len(t, store.recorded, 1)
	assert.Equal(t, id, store.recorded[0].StudentID)
	require.NotNil(t, store.recorded[0].Season)
	assert.Equal(t, models.SeasonFall, *store.recorded[0].Season)
}

func TestProgressService_RecordEnrollmentRejects(t *testing.T) {
	tests := []struct {
		name   string
		req    dto.RecordEnrollmentRequest
		target error
	}{
		{"unknown course", dto.RecordEnrollmentRequest{CourseCode: "NOPE"}, apperrors.ErrCourseNotFound},
		{"bad season", dto.RecordEnrollmentRequest{CourseCode: "CSE007", Season: strPtr("Winter")}, apperrors.ErrInvalidSeason},
		{"bad offering id", dto.RecordEnrollmentRequest{CourseCode: "CSE007", OfferingID: strPtr("x")}, apperrors.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeEnrollmentStore{}
			svc := NewProgressService(testProgram(t), store, zerolog.Nop())

			_, err := svc.RecordEnrollment(context.Background(), uuid.New(), tt.req)
			assert.ErrorIs(t, err, tt.target)
			assert.Empty(t, store.recorded)
		})
	}
}

func TestProgressService_RecordEnrollmentDuplicate(t *testing.T) {
	for _, completed := range []bool{false, true} {
		store := &fakeEnrollmentStore{recordErr: apperrors.ErrResourceAlreadyExists}
		svc := NewProgressService(testProgram(t), store, zerolog.Nop())

		_, err := svc.RecordEnrollment(context.Background(), uuid.New(), dto.RecordEnrollmentRequest{CourseCode: "CSE007", Completed: completed})
		assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists, "completed=%v", completed)
	}
}

func TestProgressService_RecordEnrollmentInProgressSkipsCompletionRead(t *testing.T) {
	store := &fakeEnrollmentStore{completed: []string{"MATH021"}}
	svc := NewProgressService(testProgram(t), store, zerolog.Nop())

	resp, err := svc.RecordEnrollment(context.Background(), uuid.New(), dto.RecordEnrollmentRequest{CourseCode: "CSE140"})
	require.NoError(t, err)

	assert.Empty(t, resp.Unlocks)
	assert.Zero(t, store.atomicRecords)
	assert.Zero(t, store.completedReads)
	require.Len(t, store.recorded, 1)
}

func TestProgressService_Enrollments(t *testing.T) {
	list := make([]*models.UserCourse, 12)
	for i := range list {
		list[i] = &models.UserCourse{ID: uuid.New(), CourseCode: "CSE007"}
	}
	svc := NewProgressService(testProgram(t), &fakeEnrollmentStore{list: list}, zerolog.Nop())

	resp, err := svc.Enrollments(context.Background(), uuid.New(), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, list[5:10], resp.Enrollments)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.EqualValues(t, 12, resp.Pagination.TotalItems)

	resp, err = svc.Enrollments(context.Background(), uuid.New(), 9, 5)
	require.NoError(t, err)
	assert.Empty(t, resp.Enrollments)

	assert.NotPanics(t, func() {
		resp, err = svc.Enrollments(context.Background(), uuid.New(), 1_000_000_000_000_000_000, 10)
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Enrollments)

	empty := NewProgressService(testProgram(t), &fakeEnrollmentStore{}, zerolog.Nop())
	resp, err = empty.Enrollments(context.Background(), uuid.New(), 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, resp.Enrollments)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}
