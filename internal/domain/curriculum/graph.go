package curriculum

import (
	"fmt"

	"github.com/yigit/degreepath/internal/pkg/validation"
)

// Graph is an immutable, validated prerequisite graph. It is safe for
// concurrent use once New returns.
type Graph struct {
	courses    map[string]*Course
	order      []string            // catalog order
	dependents map[string][]string // course -> courses that list it as a prerequisite
	categories *CategoryRegistry
}

// Option configures New.
type Option func(*Graph)

// WithCategories sets the category registry courses are checked against.
func WithCategories(r *CategoryRegistry) Option {
	return func(g *Graph) {
		g.categories = r
	}
}

// New validates courses and builds the graph. Any referential, duplicate,
// category or cycle problem is returned as a *GraphValidationError.
func New(courses []Course, opts ...Option) (*Graph, error) {
	g := &Graph{
		courses:    make(map[string]*Course, len(courses)),
		order:      make([]string, 0, len(courses)),
		dependents: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.categories == nil {
		g.categories = MustCategoryRegistry(DefaultCategories...)
	}

	// Index courses
	for i := range courses {
		c := courses[i]
		if err := g.validateCourse(&c); err != nil {
			return nil, err
		}
		if _, dup := g.courses[c.Code]; dup {
			return nil, &GraphValidationError{Kind: KindDuplicate, Course: c.Code}
		}
		c.Prerequisites = dedupe(c.Prerequisites)
		g.courses[c.Code] = &c
		g.order = append(g.order, c.Code)
	}

	// Resolve prerequisite edges
	for _, code := range g.order {
		for _, pre := range g.courses[code].Prerequisites {
			if _, ok := g.courses[pre]; !ok {
				return nil, &GraphValidationError{Kind: KindDangling, Course: code, Ref: pre}
			}
			g.dependents[pre] = append(g.dependents[pre], code)
		}
	}

	if cycle := g.detectCycle(); cycle != nil {
		return nil, &GraphValidationError{Kind: KindCycle, Course: cycle[0], Cycle: cycle}
	}

	return g, nil
}

func (g *Graph) validateCourse(c *Course) error {
	if !validation.IsCourseCode(c.Code) {
		return &GraphValidationError{Kind: KindInvalid, Course: c.Code, Reason: "code must be non-empty and alphanumeric"}
	}
	if c.Credits <= 0 {
		return &GraphValidationError{Kind: KindInvalid, Course: c.Code, Reason: fmt.Sprintf("credits must be positive, got %v", c.Credits)}
	}
	if !g.categories.Contains(c.Category) {
		return &GraphValidationError{Kind: KindInvalid, Course: c.Code, Reason: fmt.Sprintf("unknown category %q", c.Category)}
	}
	return nil
}

// detectCycle returns a closed prerequisite path if one exists, or nil.
// DFS with coloring: white (unvisited), gray (on stack), black (done).
func (g *Graph) detectCycle() []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int, len(g.courses))
	parent := make(map[string]string)

	var dfs func(code string) []string
	dfs = func(code string) []string {
		color[code] = gray
		for _, next := range g.courses[code].Prerequisites {
			if color[next] == gray {
				cycle := []string{next, code}
				cur := code
				for cur != next {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return cycle
			}
			if color[next] == white {
				parent[next] = code
				if cycle := dfs(next); cycle != nil {
					return cycle
				}
			}
		}
		color[code] = black
		return nil
	}

	for _, code := range g.order {
		if color[code] == white {
			if cycle := dfs(code); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

// Len returns the number of courses.
func (g *Graph) Len() int {
	return len(g.order)
}

// Categories returns the registry the graph was validated against.
func (g *Graph) Categories() *CategoryRegistry {
	return g.categories
}

// Course returns a copy of the course with the given code.
func (g *Graph) Course(code string) (Course, error) {
	c, ok := g.courses[code]
	if !ok {
		return Course{}, &NotFoundError{Code: code}
	}
	return clone(c), nil
}

// Courses returns copies of every course in catalog order.
func (g *Graph) Courses() []Course {
	out := make([]Course, 0, len(g.order))
	for _, code := range g.order {
		out = append(out, clone(g.courses[code]))
	}
	return out
}

// Dependents returns the courses that list code as a direct prerequisite.
func (g *Graph) Dependents(code string) ([]string, error) {
	if _, ok := g.courses[code]; !ok {
		return nil, &NotFoundError{Code: code}
	}
	out := make([]string, len(g.dependents[code]))
	copy(out, g.dependents[code])
	return out, nil
}

// TopologicalOrder returns every course code with prerequisites before the
// courses that need them. Ties keep catalog order.
func (g *Graph) TopologicalOrder() []string {
	indegree := make(map[string]int, len(g.order))
	for _, code := range g.order {
		indegree[code] = len(g.courses[code].Prerequisites)
	}

	out := make([]string, 0, len(g.order))
	emitted := make(map[string]bool, len(g.order))
	for len(out) < len(g.order) {
		next := ""
		for _, code := range g.order {
			if !emitted[code] && indegree[code] == 0 {
				next = code
				break
			}
		}
		if next == "" {
			// unreachable for a validated graph
			break
		}
		emitted[next] = true
		out = append(out, next)
		for _, dep := range g.dependents[next] {
			indegree[dep]--
		}
	}
	return out
}

func clone(c *Course) Course {
	out := *c
	out.Prerequisites = append([]string(nil), c.Prerequisites...)
	if out.Prerequisites == nil {
		out.Prerequisites = []string{}
	}
	return out
}

func dedupe(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}
