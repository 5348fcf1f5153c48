package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yigit/degreepath/internal/app/models"
	"github.com/yigit/degreepath/internal/catalog"
)

const testProgramYAML = `
program: {id: t, name: Test Program, total_credits: 18, max_credits_per_term: 7, standard_credits_per_term: 6}
categories: [Math, CS]
courses:
  - {code: MATH021, name: Calculus I, credits: 4, department: MATH, category: Math}
  - {code: MATH022, name: Calculus II, credits: 4, department: MATH, category: Math, prerequisites: [MATH021]}
  - {code: CSE007, name: Intro, credits: 1, department: CSE, category: CS}
  - {code: CSE017, name: Programming, credits: 3, department: CSE, category: CS, prerequisites: [CSE007]}
  - {code: CSE140, name: Discrete, credits: 3, department: CSE, category: CS, prerequisites: [MATH021]}
  - {code: CSE340, name: Algorithms, credits: 3, department: CSE, category: CS, prerequisites: [CSE140, CSE017]}
tracks:
  - {id: math, name: Mathematics, courses: [MATH021, MATH022]}
  - {id: cs, name: Computer Science, courses: [CSE007, CSE017, CSE140, CSE340]}
category_requirements:
  - {category: CS, required_count: 2}
`

func testProgram(t *testing.T) *catalog.Program {
	t.Helper()
	p, err := catalog.Parse([]byte(testProgramYAML))
	require.NoError(t, err)
	return p
}

// fakeEnrollmentStore is an in-memory EnrollmentStore.
type fakeEnrollmentStore struct {
	completed []string
	list      []*models.UserCourse
	offerings []*models.CourseOffering
	err       error
	recorded  []*models.UserCourse
	recordErr error

	completedReads int
	atomicRecords  int
}

func (f *fakeEnrollmentStore) CompletedCourseCodes(context.Context, uuid.UUID) ([]string, error) {
	f.completedReads++
	return f.completed, f.err
}

func (f *fakeEnrollmentStore) TermOfferings(context.Context, uuid.UUID, models.Term) ([]*models.CourseOffering, error) {
	return f.offerings, f.err
}

func (f *fakeEnrollmentStore) ListByStudent(context.Context, uuid.UUID) ([]*models.UserCourse, error) {
	return f.list, f.err
}

func (f *fakeEnrollmentStore) Record(_ context.Context, uc *models.UserCourse) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, uc)
	return nil
}

func (f *fakeEnrollmentStore) RecordCompletion(_ context.Context, uc *models.UserCourse) ([]string, error) {
	f.atomicRecords++
	if f.recordErr != nil {
		return nil, f.recordErr
	}
	before := f.completed
	f.recorded = append(f.recorded, uc)
	f.completed = append(append([]string{}, before...), uc.CourseCode)
	return before, nil
}
