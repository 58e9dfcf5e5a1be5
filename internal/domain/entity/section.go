package entity

import (
	"sort"
	"time"

	errs "github.com/guidy-app/joblight/internal/domain/error"
)

// SectionKind separates free-form sections from offered services
type SectionKind string

// Section kinds
const (
	SectionCustom  SectionKind = "custom"
	SectionService SectionKind = "service"
)

// IsValid reports whether k is a known kind
func (k SectionKind) IsValid() bool {
	return k == SectionCustom || k == SectionService
}

// Direction is a single-step move in a list
type Direction string

// Move directions
const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Section is an ordered content block on a portfolio page
type Section struct {
	ID              uint64
	UserID          uint64
	Kind            SectionKind
	Title           string
	Type            string
	Content         string
	OrderIndex      int
	IsActive        bool
	BackgroundColor string
	TextColor       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SortSections orders sections by OrderIndex, then by ID for stable ties
func SortSections(sections []*Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		if sections[i].OrderIndex != sections[j].OrderIndex {
			return sections[i].OrderIndex < sections[j].OrderIndex
		}
		return sections[i].ID < sections[j].ID
	})
}

// Renumber assigns the dense sequence 0..n-1 in slice order and reports which sections changed
func Renumber(sections []*Section) []*Section {
	var changed []*Section
	for i, s := range sections {
		if s.OrderIndex != i {
			s.OrderIndex = i
			changed = append(changed, s)
		}
	}
	return changed
}

// MoveSection swaps the section with its neighbour in the given direction.
// Moving the first item up or the last item down leaves the order unchanged.
// The result is sorted and densely numbered.
func MoveSection(sections []*Section, id uint64, dir Direction) ([]*Section, error) {
	if dir != DirectionUp && dir != DirectionDown {
		return nil, errs.NewValidationError("direction", "must be up or down")
	}

	ordered := make([]*Section, len(sections))
	copy(ordered, sections)
	SortSections(ordered)

	pos := -1
	for i, s := range ordered {
		if s.ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, errs.ErrSectionNotFound
	}

	target := pos - 1
	if dir == DirectionDown {
		target = pos + 1
	}
	if target >= 0 && target < len(ordered) {
		ordered[pos], ordered[target] = ordered[target], ordered[pos]
	}

	Renumber(ordered)
	return ordered, nil
}

// ReorderSections arranges sections in the order of ids.
// ids must name every section exactly once.
func ReorderSections(sections []*Section, ids []uint64) ([]*Section, error) {
	if len(ids) != len(sections) {
		return nil, errs.NewValidationError("ids", "must list every section exactly once")
	}

	byID := make(map[uint64]*Section, len(sections))
	for _, s := range sections {
		byID[s.ID] = s
	}

	ordered := make([]*Section, 0, len(ids))
	seen := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok || seen[id] {
			return nil, errs.NewValidationError("ids", "must list every section exactly once")
		}
		seen[id] = true
		ordered = append(ordered, s)
	}

	Renumber(ordered)
	return ordered, nil
}
