package models

import "time"

// PlantSummary is the public response shape for a plant. Internal storage
// names are renamed to external ones (ImageSrc -> imgSrc) and the watering
// association is flattened to the single most recent record. The imgSrc and
// latestWatering fields are omitted entirely when absent, not sent as null.
type PlantSummary struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	ImgSrc         *string   `json:"imgSrc,omitempty"`
	Color          string    `json:"color"`
	CreatedAt      time.Time `json:"createdAt"`
	LatestWatering *Watering `json:"latestWatering,omitempty"`
}

// NewPlantSummary maps a stored plant to its public shape. The mapping is
// pure and is the single one used by the create, edit and list paths, so
// clients see a stable shape regardless of which operation produced it. The
// plant's Waterings are expected to be ordered most-recent-first; only the
// first is surfaced.
func NewPlantSummary(p *Plant) *PlantSummary {
	s := &PlantSummary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		CreatedAt:   p.CreatedAt,
	}
	if p.ImageSrc != "" {
		src := p.ImageSrc
		s.ImgSrc = &src
	}
	if len(p.Waterings) > 0 {
		w := p.Waterings[0]
		s.LatestWatering = &w
	}
	return s
}
