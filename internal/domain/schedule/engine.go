package schedule

import (
	"fmt"
	"sort"
	"strings"
)

// Build turns a term's offerings into a weekly timeline.
//
// Offerings without meeting days or times contribute nothing. Offerings whose
// times cannot be parsed, or whose start is not before their end, are left out
// and reported in Result.Dropped; the rest of the term is still built.
func Build(offerings []Offering) Result {
	var blocks []Block
	var dropped []*TimeParseError

	for _, o := range offerings {
		if !scheduled(o) {
			continue
		}

		start, end, perr := offeringMinutes(o)
		if perr != nil {
			dropped = append(dropped, perr)
			continue
		}

		seen := make(map[Day]bool, len(o.MeetingDays))
		for _, raw := range o.MeetingDays {
			day, ok := ParseDay(strings.TrimSpace(raw))
			if !ok || seen[day] {
				continue
			}
			seen[day] = true
			blocks = append(blocks, Block{
				OfferingID:   o.ID,
				CourseCode:   o.CourseCode,
				CourseName:   o.CourseName,
				Section:      o.Section,
				CRN:          o.CRN,
				Instructor:   o.Instructor,
				Location:     o.Location,
				Day:          day,
				StartTime:    FormatClock(start),
				EndTime:      FormatClock(end),
				StartMinutes: start,
				EndMinutes:   end,
			})
		}
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].StartMinutes < blocks[j].StartMinutes
	})
	if blocks == nil {
		blocks = []Block{}
	}

	return Result{
		Blocks:    blocks,
		ByDay:     partition(blocks),
		Conflicts: DetectConflicts(blocks),
		Dropped:   dropped,
	}
}

func scheduled(o Offering) bool {
	return len(o.MeetingDays) > 0 &&
		strings.TrimSpace(o.StartTime) != "" &&
		strings.TrimSpace(o.EndTime) != ""
}

func offeringMinutes(o Offering) (int, int, *TimeParseError) {
	start, err := ParseClock(o.StartTime)
	if err != nil {
		return 0, 0, &TimeParseError{OfferingID: o.ID, CourseCode: o.CourseCode, Field: "start", Value: o.StartTime, Err: err}
	}
	end, err := ParseClock(o.EndTime)
	if err != nil {
		return 0, 0, &TimeParseError{OfferingID: o.ID, CourseCode: o.CourseCode, Field: "end", Value: o.EndTime, Err: err}
	}
	if start >= end {
		return 0, 0, &TimeParseError{
			OfferingID: o.ID,
			CourseCode: o.CourseCode,
			Field:      "range",
			Value:      o.StartTime + "-" + o.EndTime,
			Err:        fmt.Errorf("start must be before end"),
		}
	}
	return start, end, nil
}

// DetectConflicts compares every same-day pair of blocks and records those
// overlapping by more than zero minutes. Back-to-back meetings do not conflict.
// Pairs are reported in the order the blocks are given.
func DetectConflicts(blocks []Block) []Conflict {
	conflicts := []Conflict{}
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			a, b := blocks[i], blocks[j]
			if a.Day != b.Day {
				continue
			}
			overlap := min(a.EndMinutes, b.EndMinutes) - max(a.StartMinutes, b.StartMinutes)
			if overlap > 0 {
				conflicts = append(conflicts, Conflict{A: a, B: b, OverlapMinutes: overlap})
			}
		}
	}
	return conflicts
}

func partition(blocks []Block) map[Day][]Block {
	byDay := make(map[Day][]Block, len(Weekdays))
	for _, d := range Weekdays {
		byDay[d] = []Block{}
	}
	for _, b := range blocks {
		byDay[b.Day] = append(byDay[b.Day], b)
	}
	return byDay
}
