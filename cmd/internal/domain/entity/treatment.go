package entity

// Treatment keeps the caller-supplied catalog fields. Anything the
// client sends beyond the named columns lands in Extra verbatim.
type Treatment struct {
	ID              int    `gorm:"primaryKey"`
	Name            string `gorm:"not null"`
	Description     *string
	Price           *float64
	DurationMinutes *int
	ImageURL        *string
	Extra           map[string]any `gorm:"serializer:json"`
	CreatedAt       int64          `gorm:"not null"`
	UpdatedAt       int64          `gorm:"not null"`
}
