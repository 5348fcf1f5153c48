package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/degreepath/internal/pkg/apperrors"
)

func TestClassify_CalculusChain(t *testing.T) {
	g, err := New([]Course{
		course("MATH021", 4),
		course("MATH022", 4, "MATH021"),
	})
	require.NoError(t, err)

	empty := NewCompletionSet()
	state, err := g.Classify("MATH021", empty)
	require.NoError(t, err)
	assert.Equal(t, StateAvailable, state)
	state, err = g.Classify("MATH022", empty)
	require.NoError(t, err)
	assert.Equal(t, StateLocked, state)

	done := NewCompletionSet("MATH021")
	state, _ = g.Classify("MATH021", done)
	assert.Equal(t, StateCompleted, state)
	state, _ = g.Classify("MATH022", done)
	assert.Equal(t, StateAvailable, state)
}

func TestClassify_UnknownCode(t *testing.T) {
	g := buildTestGraph(t)

	_, err := g.Classify("CSE999", NewCompletionSet())
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestClassify_NilCompletionSet(t *testing.T) {
	g := buildTestGraph(t)

	state, err := g.Classify("MATH021", nil)
	require.NoError(t, err)
	assert.Equal(t, StateAvailable, state)
}

func TestClassify_GatesOnCompletionNotAvailability(t *testing.T) {
	g := buildTestGraph(t)

	// MATH022 is Available here but not completed, so MATH205 stays Locked.
	states := g.ClassifyAll(NewCompletionSet("MATH021"))
	assert.Equal(t, StateAvailable, states["MATH022"])
	assert.Equal(t, StateLocked, states["MATH205"])
}

func TestClassify_MultiplePrerequisites(t *testing.T) {
	g := buildTestGraph(t)

	tests := []struct {
		name      string
		completed CompletionSet
		want      CourseState
	}{
		{"none", NewCompletionSet(), StateLocked},
		{"one of two", NewCompletionSet("MATH021", "CSE140"), StateLocked},
		{"both", NewCompletionSet("CSE140", "CSE017"), StateAvailable},
		{"itself", NewCompletionSet("CSE340"), StateCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := g.Classify("CSE340", tt.completed)
			require.NoError(t, err)
			assert.Equal(t, tt.want, state)
		})
	}
}

func TestClassify_UnknownCompletionsIgnored(t *testing.T) {
	g := buildTestGraph(t)

	states := g.ClassifyAll(NewCompletionSet("TRANSFER101"))
	assert.Len(t, states, g.Len())
	assert.NotContains(t, states, "TRANSFER101")
}

// allSubsets enumerates every completion set over codes.
func allSubsets(codes []string) []CompletionSet {
	out := make([]CompletionSet, 0, 1<<len(codes))
	for mask := 0; mask < 1<<len(codes); mask++ {
		set := NewCompletionSet()
		for i, code := range codes {
			if mask&(1<<i) != 0 {
				set[code] = struct{}{}
			}
		}
		out = append(out, set)
	}
	return out
}

func subset(a, b CompletionSet) bool {
	for code := range a {
		if !b.Has(code) {
			return false
		}
	}
	return true
}

func TestClassifyAll_Properties(t *testing.T) {
	g := buildTestGraph(t)
	codes := []string{"MATH021", "MATH022", "CSE007", "CSE017", "CSE140", "CSE340"}
	sets := allSubsets(codes)

	for _, c := range sets {
		states := g.ClassifyAll(c)
		require.Len(t, states, g.Len())

		for _, k := range g.Courses() {
			state := states[k.Code]

			// entry courses are never Locked
			if len(k.Prerequisites) == 0 {
				assert.NotEqual(t, StateLocked, state, "entry course %s locked", k.Code)
			}

			// Completed iff in the set
			assert.Equal(t, c.Has(k.Code), state == StateCompleted, "course %s", k.Code)

			// Available iff all prerequisites completed (when not completed)
			if !c.Has(k.Code) {
				all := true
				for _, p := range k.Prerequisites {
					all = all && c.Has(p)
				}
				assert.Equal(t, all, state == StateAvailable, "course %s", k.Code)
			}
		}

		// idempotent
		assert.Equal(t, states, g.ClassifyAll(c))
	}
}

func TestClassifyAll_Monotonic(t *testing.T) {
	g := buildTestGraph(t)
	sets := allSubsets([]string{"MATH021", "MATH022", "CSE007", "CSE017", "CSE140"})

	for _, small := range sets {
		before := g.ClassifyAll(small)
		for _, large := range sets {
			if !subset(small, large) {
				continue
			}
			after := g.ClassifyAll(large)
			for code, state := range before {
				switch state {
				case StateCompleted:
					assert.Equal(t, StateCompleted, after[code])
				case StateAvailable:
					assert.NotEqual(t, StateLocked, after[code], "course %s relocked", code)
				}
			}
		}
	}
}

func TestNewlyAvailable(t *testing.T) {
	g := buildTestGraph(t)

	before := NewCompletionSet("CSE007", "CSE017")
	after := before.With("MATH021")

	assert.Equal(t, []string{"MATH022", "CSE140"}, g.NewlyAvailable(before, after))
	assert.Empty(t, g.NewlyAvailable(after, after))
	assert.False(t, before.Has("MATH021"), "With must not modify the receiver")
}

func TestAvailable(t *testing.T) {
	g := buildTestGraph(t)

	all := g.Available(NewCompletionSet(), 0)
	var codes []string
	for _, c := range all {
		codes = append(codes, c.Code)
	}
	assert.Equal(t, []string{"MATH021", "CSE007", "BUS003"}, codes)

	assert.Len(t, g.Available(NewCompletionSet(), 2), 2)
}

func TestMissingPrerequisites(t *testing.T) {
	g := buildTestGraph(t)

	missing, err := g.MissingPrerequisites("CSE340", NewCompletionSet("CSE017"))
	require.NoError(t, err)
	assert.Equal(t, []string{"CSE140"}, missing)

	missing, err = g.MissingPrerequisites("MATH021", NewCompletionSet())
	require.NoError(t, err)
	assert.Empty(t, missing)

	_, err = g.MissingPrerequisites("NOPE", nil)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestSummary(t *testing.T) {
	g := buildTestGraph(t)

	s := g.Summary(NewCompletionSet("MATH021", "BUS003"))
	assert.Equal(t, 8, s.Total)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 3, s.Available) // MATH022, CSE007, CSE140
	assert.Equal(t, 3, s.Locked)
	assert.InDelta(t, 5.5, s.CompletedCredits, 1e-9)
	assert.InDelta(t, 24.5, s.TotalCredits, 1e-9)
	assert.Equal(t, 25, s.Percent)
}
