package checklist

import "github.com/limbo/cocoon/pkg/entity"

type ItemPayload struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Description *string `json:"description,omitempty"`
	Completed   bool    `json:"completed"`
	Custom      bool    `json:"custom"`
}

type SectionPayload struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Items []ItemPayload `json:"items"`
}

// Payload is what callers get back from every checklist operation.
type Payload struct {
	ID       string               `json:"id"`
	Type     entity.ChecklistType `json:"type"`
	Progress int                  `json:"progress"`
	Sections []SectionPayload     `json:"sections"`
}

// ToPayload sorts the checklist in place and converts it.
func ToPayload(cl *entity.Checklist) *Payload {
	SortSections(cl)
	p := &Payload{
		ID:       cl.ID.String(),
		Type:     cl.Type,
		Progress: cl.Progress,
		Sections: make([]SectionPayload, 0, len(cl.Sections)),
	}
	for _, s := range cl.Sections {
		sp := SectionPayload{
			ID:    s.ID.String(),
			Title: s.Title,
			Items: make([]ItemPayload, 0, len(s.Items)),
		}
		for _, it := range s.Items {
			sp.Items = append(sp.Items, ItemPayload{
				ID:          it.ID.String(),
				Label:       it.Label,
				Description: it.Description,
				Completed:   it.Checked,
				Custom:      it.Custom,
			})
		}
		p.Sections = append(p.Sections, sp)
	}
	return p
}
