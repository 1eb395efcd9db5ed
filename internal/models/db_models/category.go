package db_models

// Category is the canonical reference table for listing grouping. When it
// is empty the category service derives a display-only list from loaded
// listings instead; see services.CategoryService.
type Category struct {
	BaseModel
	Name        string  `gorm:"unique;not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex" json:"slug"`
	Icon        string  `json:"icon"`
	Description *string `json:"description,omitempty"`
}
