package curriculum

// Classify returns the state of one course. A course is Available only when
// every prerequisite is actually completed; an Available prerequisite does not count.
func (g *Graph) Classify(code string, completed CompletionSet) (CourseState, error) {
	c, ok := g.courses[code]
	if !ok {
		return "", &NotFoundError{Code: code}
	}
	return classify(c, completed), nil
}

func classify(c *Course, completed CompletionSet) CourseState {
	if completed.Has(c.Code) {
		return StateCompleted
	}
	for _, pre := range c.Prerequisites {
		if !completed.Has(pre) {
			return StateLocked
		}
	}
	return StateAvailable
}

// ClassifyAll returns the state of every course. Each classification reads only
// the completion set, so evaluation order does not matter.
func (g *Graph) ClassifyAll(completed CompletionSet) map[string]CourseState {
	states := make(map[string]CourseState, len(g.order))
	for _, code := range g.order {
		states[code] = classify(g.courses[code], completed)
	}
	return states
}

// Available returns up to limit Available courses in catalog order. A limit
// of zero or less returns all of them.
func (g *Graph) Available(completed CompletionSet, limit int) []Course {
	var out []Course
	for _, code := range g.order {
		c := g.courses[code]
		if classify(c, completed) != StateAvailable {
			continue
		}
		out = append(out, clone(c))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// NewlyAvailable returns, in catalog order, the courses that are Locked under
// before and Available under after.
func (g *Graph) NewlyAvailable(before, after CompletionSet) []string {
	var out []string
	for _, code := range g.order {
		c := g.courses[code]
		if classify(c, before) == StateLocked && classify(c, after) == StateAvailable {
			out = append(out, code)
		}
	}
	return out
}

// MissingPrerequisites lists the prerequisites of code that are not completed.
func (g *Graph) MissingPrerequisites(code string, completed CompletionSet) ([]string, error) {
	c, ok := g.courses[code]
	if !ok {
		return nil, &NotFoundError{Code: code}
	}
	missing := []string{}
	for _, pre := range c.Prerequisites {
		if !completed.Has(pre) {
			missing = append(missing, pre)
		}
	}
	return missing, nil
}

// Summary counts every course by state.
func (g *Graph) Summary(completed CompletionSet) Summary {
	var s Summary
	for _, code := range g.order {
		c := g.courses[code]
		s.Total++
		s.TotalCredits += c.Credits
		switch classify(c, completed) {
		case StateCompleted:
			s.Completed++
			s.CompletedCredits += c.Credits
		case StateAvailable:
			s.Available++
		default:
			s.Locked++
		}
	}
	s.Percent = percent(s.Completed, s.Total)
	return s
}
