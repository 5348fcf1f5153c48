package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/degreepath/internal/domain/curriculum"
)

func TestParseSeason(t *testing.T) {
	for in, want := range map[string]Season{"fall": SeasonFall, " Spring ": SeasonSpring, "SUMMER": SeasonSummer} {
		got, err := ParseSeason(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseSeason("Winter")
	assert.Error(t, err)

	assert.Equal(t, "Fall 2025", Term{Year: 2025, Season: SeasonFall}.String())
}

func TestCourse_RoundTripsThroughCurriculum(t *testing.T) {
	diff := 3
	c := curriculum.Course{
		Code: "CSE017", Name: "Programming", Credits: 3, Department: "CSE", Category: "Major",
		Description: "Java", Prerequisites: []string{"CSE007"}, Difficulty: &diff,
	}

	row := CourseFromCurriculum(c)
	require.NotNil(t, row.Description)
	assert.Equal(t, c, row.ToCurriculum())

	c.Description = ""
	assert.Nil(t, CourseFromCurriculum(c).Description)
}

func TestCourseOffering_ToScheduleOffering(t *testing.T) {
	id := uuid.New()
	start, section := "09:00", "010"
	o := &CourseOffering{
		ID:          id,
		CourseCode:  "CSE017",
		Section:     &section,
		MeetingDays: []string{"M", "W"},
		StartTime:   &start,
		Course:      &Course{Name: "Programming"},
	}

	got := o.ToScheduleOffering()
	assert.Equal(t, id.String(), got.ID)
	assert.Equal(t, "Programming", got.CourseName)
	assert.Equal(t, "010", got.Section)
	assert.Equal(t, "09:00", got.StartTime)
	assert.Empty(t, got.EndTime)
	assert.Equal(t, []string{"M", "W"}, got.MeetingDays)
}
