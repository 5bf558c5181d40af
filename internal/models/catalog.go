package models

// Category represents a top-level taxonomy entry
type Category struct {
	ID               string `json:"_id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Image            string `json:"image"`
	VideoCount       int    `json:"videoCount"`
	SubcategoryCount int    `json:"subcategoryCount"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// Subcategory represents a taxonomy entry nested under a category.
// Category is left raw because the backend returns either a populated
// object or a bare id string depending on the endpoint.
type Subcategory struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    interface{} `json:"category"`
	Image       string      `json:"image"`
	VideoCount  int         `json:"videoCount"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
}

// Video represents a long-form video record
type Video struct {
	ID                string       `json:"_id"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	FileName          string       `json:"fileName"`
	FilePath          string       `json:"filePath"`
	Platform          string       `json:"platform"`
	YoutubeURL        string       `json:"youtubeUrl,omitempty"`
	ThumbnailPath     string       `json:"thumbnailPath"`
	DurationFormatted string       `json:"durationFormatted"`
	Category          *Category    `json:"category"`
	Subcategory       *Subcategory `json:"subcategory"`
	Views             int          `json:"views"`
	IsPublished       bool         `json:"isPublished"`
	CreatedAt         string       `json:"createdAt"`
	UpdatedAt         string       `json:"updatedAt"`
}

// Short represents a short-form video record
type Short struct {
	ID                string `json:"_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	FileName          string `json:"fileName"`
	FilePath          string `json:"filePath"`
	Platform          string `json:"platform"`
	YoutubeURL        string `json:"youtubeUrl,omitempty"`
	ThumbnailPath     string `json:"thumbnailPath"`
	DurationFormatted string `json:"durationFormatted"`
	Views             int    `json:"views"`
	IsPublished       bool   `json:"isPublished"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

// Feedback represents a user review submitted from the player app
type Feedback struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// OverviewCounts holds aggregate record counts for the dashboard
type OverviewCounts struct {
	Categories    int `json:"categories"`
	Subcategories int `json:"subcategories"`
	Videos        int `json:"videos"`
	Shorts        int `json:"shorts"`
	Feedback      int `json:"feedback"`
}

// RecentItem is a recently added video or short surfaced on the dashboard
type RecentItem struct {
	ID            string `json:"_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Platform      string `json:"platform"`
	ThumbnailPath string `json:"thumbnailPath"`
	Type          string `json:"type"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// OverviewResponse is returned by GET /overview
type OverviewResponse struct {
	Counts      OverviewCounts `json:"counts"`
	RecentItems []RecentItem   `json:"recentItems"`
}
