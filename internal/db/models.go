package db

import "time"

type ItemKind string

const (
	KindURL     ItemKind = "url"
	KindContact ItemKind = "contact"
)

// Valid reports whether k is a known item kind.
func (k ItemKind) Valid() bool {
	return k == KindURL || k == KindContact
}

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleContributor Role = "contributor"
)

// User represents a registered contributor. The admin identity is not a row
// in this table; it is authenticated against a configured credential pair.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null;size:100" json:"username"`
	Password  string    `gorm:"not null;size:255" json:"-"` // bcrypt hash
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemFields is the shape shared by published items and pending submissions.
// Kind discriminates the two variants: url items carry URL, contact items
// carry Number.
type ItemFields struct {
	Kind           ItemKind `gorm:"index;not null;size:16" json:"kind"`
	Name           string   `gorm:"not null;size:255" json:"name"`
	URL            string   `gorm:"size:768" json:"url,omitempty"`
	Number         string   `gorm:"size:32" json:"number,omitempty"`
	Category       string   `gorm:"size:100" json:"category"`
	State          string   `gorm:"size:100" json:"state"`
	Description    string   `gorm:"size:1024" json:"description"`
	Icon           string   `gorm:"size:50" json:"icon"`
	ImageURL       string   `gorm:"size:768" json:"image_url"`
	SeoTitle       string   `gorm:"size:255" json:"seo_title"`
	SeoDescription string   `gorm:"size:512" json:"seo_description"`
	SeoKeywords    string   `gorm:"size:512" json:"seo_keywords"`
}

// Item is a published catalog entry. SubmittedBy is kept so a contributor's
// submissions view can show approved entries, but it is never part of the
// public catalog payload.
type Item struct {
	ID          uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemFields  `gorm:"embedded"`
	SubmittedBy string    `gorm:"index;size:100" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Submission is a pending catalog entry awaiting review. A row exists only
// while the submission is pending; approval moves it into items, rejection
// discards it.
type Submission struct {
	ID          uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemFields  `gorm:"embedded"`
	SubmittedBy string    `gorm:"index;not null;size:100" json:"submitted_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CustomCategory is an admin-added category. Default categories are
// compiled-in and never stored here.
type CustomCategory struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind      ItemKind  `gorm:"uniqueIndex:idx_custom_categories_kind_name;not null;size:16" json:"kind"`
	Name      string    `gorm:"uniqueIndex:idx_custom_categories_kind_name;not null;size:100" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SeoSettings is the site-wide metadata record. Exactly one row exists,
// created during migration.
type SeoSettings struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	Title         string    `gorm:"size:255" json:"title"`
	Description   string    `gorm:"size:1024" json:"description"`
	Keywords      string    `gorm:"size:1024" json:"keywords"`
	Author        string    `gorm:"size:255" json:"author"`
	OGImage       string    `gorm:"size:768" json:"og_image"`
	TwitterHandle string    `gorm:"size:100" json:"twitter_handle"`
	CanonicalURL  string    `gorm:"size:768" json:"canonical_url"`
	UpdatedAt     time.Time `json:"last_updated"`
}
