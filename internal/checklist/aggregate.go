// Package checklist holds the in-memory checklist aggregate: seeding from the
// default templates, progress computation and the toggle/reset transitions.
// It does no I/O; persistence is done by the service layer.
package checklist

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/cocoon/internal/error_values"
	"github.com/limbo/cocoon/pkg/entity"
)

// Stats counts checklist items. Percent is the rounded share of completed items, 0 when Total is 0.
type Stats struct {
	Total     int
	Completed int
	Percent   int
}

// ComputeProgress counts items across all sections. Percent is 0 for an empty checklist.
func ComputeProgress(sections []entity.ChecklistSection) Stats {
	var st Stats
	for _, s := range sections {
		for _, it := range s.Items {
			st.Total++
			if it.Checked {
				st.Completed++
			}
		}
	}
	if st.Total > 0 {
		st.Percent = int(math.Round(float64(st.Completed) / float64(st.Total) * 100))
	}
	return st
}

// Seed builds a new checklist for userID from the default template of typ.
// Section order and item position follow the template.
func Seed(userID uuid.UUID, typ entity.ChecklistType, now time.Time) (*entity.Checklist, error) {
	tpl, ok := TemplateFor(typ)
	if !ok {
		return nil, errorvalues.ErrUnknownChecklistType
	}
	cl := &entity.Checklist{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        typ,
		LastUpdated: now,
		Sections:    make([]entity.ChecklistSection, 0, len(tpl)),
	}
	for i, ts := range tpl {
		section := entity.ChecklistSection{
			ID:          uuid.New(),
			ChecklistID: cl.ID,
			Title:       ts.Title,
			Order:       i,
			Items:       make([]entity.ChecklistItem, 0, len(ts.Items)),
		}
		for j, ti := range ts.Items {
			item := entity.ChecklistItem{
				ID:        uuid.New(),
				SectionID: section.ID,
				Label:     ti.Label,
				Checked:   ti.Checked,
				Position:  j,
			}
			if ti.Description != "" {
				desc := ti.Description
				item.Description = &desc
			}
			section.Items = append(section.Items, item)
		}
		cl.Sections = append(cl.Sections, section)
	}
	cl.Progress = ComputeProgress(cl.Sections).Percent
	return cl, nil
}

// Recompute refreshes the cached progress and reports whether it was stale.
func Recompute(cl *entity.Checklist, now time.Time) bool {
	p := ComputeProgress(cl.Sections).Percent
	if p == cl.Progress {
		return false
	}
	cl.Progress = p
	cl.LastUpdated = now
	return true
}

// Toggle flips the checked state of itemID and returns the new state.
func Toggle(cl *entity.Checklist, itemID uuid.UUID, now time.Time) (bool, error) {
	for i := range cl.Sections {
		items := cl.Sections[i].Items
		for j := range items {
			if items[j].ID != itemID {
				continue
			}
			items[j].Checked = !items[j].Checked
			cl.Progress = ComputeProgress(cl.Sections).Percent
			cl.LastUpdated = now
			return items[j].Checked, nil
		}
	}
	return false, errorvalues.ErrNotFoundOrUnauthorized
}

// Reset unchecks every item. Structure is preserved.
func Reset(cl *entity.Checklist, now time.Time) {
	for i := range cl.Sections {
		for j := range cl.Sections[i].Items {
			cl.Sections[i].Items[j].Checked = false
		}
	}
	cl.Progress = ComputeProgress(cl.Sections).Percent
	cl.LastUpdated = now
}

// SortSections orders sections by Order and items by Position.
func SortSections(cl *entity.Checklist) {
	slices.SortStableFunc(cl.Sections, func(a, b entity.ChecklistSection) int {
		return a.Order - b.Order
	})
	for i := range cl.Sections {
		slices.SortStableFunc(cl.Sections[i].Items, func(a, b entity.ChecklistItem) int {
			return a.Position - b.Position
		})
	}
}
