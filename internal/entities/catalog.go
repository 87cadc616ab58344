package entities

// Author is a writer known to the catalog. The name is the external key
// used in URLs; the numeric ID stays internal.
type Author struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Author string `gorm:"uniqueIndex;size:255;not null" json:"author"`
	Books  []Book `gorm:"constraint:OnDelete:CASCADE" json:"books,omitempty"`
}

// Genre is a book category with a unique name.
type Genre struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Genre string `gorm:"uniqueIndex;size:255;not null" json:"genre"`
	Books []Book `gorm:"constraint:OnDelete:CASCADE" json:"books,omitempty"`
}

// Book belongs to exactly one Author and one Genre. Titles are globally
// unique and act as the external key for the title-based routes.
type Book struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"uniqueIndex;size:255;not null" json:"title"`
	AuthorID uint   `gorm:"not null" json:"-"`
	GenreID  uint   `gorm:"not null" json:"-"`
	Author   Author `json:"-"`
	Genre    Genre  `json:"-"`
}
