package curriculum

// Progress sums completion over a grouping. Codes listed more than once are
// counted once; unknown codes are a caller bug and return *NotFoundError.
// The grouping's targets are carried onto the result.
func (g *Graph) Progress(grouping Grouping, completed CompletionSet) (Progress, error) {
	p := Progress{RequiredCount: grouping.RequiredCount, RequiredCredits: grouping.RequiredCredits}
	for _, code := range dedupe(grouping.Codes) {
		c, ok := g.courses[code]
		if !ok {
			return Progress{}, &NotFoundError{Code: code}
		}
		p.TotalCount++
		p.TotalCredits += c.Credits
		if completed.Has(code) {
			p.CompletedCount++
			p.CompletedCredits += c.Credits
		}
	}
	return p, nil
}

// CategoryGroupings returns one grouping per registered category, in registry
// order, holding the courses tagged with it in catalog order.
func (g *Graph) CategoryGroupings() []Grouping {
	byTag := make(map[string][]string)
	for _, code := range g.order {
		tag := g.courses[code].Category
		byTag[tag] = append(byTag[tag], code)
	}

	tags := g.categories.Tags()
	out := make([]Grouping, 0, len(tags))
	for _, tag := range tags {
		codes := byTag[tag]
		if codes == nil {
			codes = []string{}
		}
		out = append(out, Grouping{ID: tag, Name: tag, Codes: codes})
	}
	return out
}
