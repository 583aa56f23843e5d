package models

import "time"

// AttachmentPurposePlantPicture tags an attachment as a plant's picture.
const AttachmentPurposePlantPicture = "plant_picture"

// Attachment links an uploaded blob's durable URL to the plant it
// illustrates. Rows are append-only: replacing a plant's image creates a
// new Attachment rather than mutating the old one.
type Attachment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PlantID   string    `gorm:"size:36;not null;index" json:"plant_id"`
	SourceURL string    `gorm:"not null" json:"source_url"`
	Purpose   string    `gorm:"size:64;not null" json:"purpose"`
	CreatedAt time.Time `json:"created_at"`
}
