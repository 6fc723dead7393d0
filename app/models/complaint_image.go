package models

import "time"

// ComplaintImage belongs to exactly one complaint. ImagePath is the generated
// stored filename inside the upload directory, never the client-supplied name.
type ComplaintImage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ComplaintID uint      `gorm:"index;not null" json:"complaint_id"`
	ImagePath   string    `gorm:"type:varchar(300);not null" json:"image_path"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
