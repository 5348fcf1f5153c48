package models

import (
	"fmt"
	"strings"
)

// Season is an academic term season, stored as the `season` enum.
type Season string

const (
	SeasonFall   Season = "Fall"
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
)

// ParseSeason accepts a season name case-insensitively.
func ParseSeason(s string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fall":
		return SeasonFall, nil
	case "spring":
		return SeasonSpring, nil
	case "summer":
		return SeasonSummer, nil
	}
	return "", fmt.Errorf("unknown season %q", s)
}

// Term identifies a semester.
type Term struct {
	Year   int    `json:"year"`
	Season Season `json:"season"`
}

func (t Term) String() string {
	return fmt.Sprintf("%s %d", t.Season, t.Year)
}
