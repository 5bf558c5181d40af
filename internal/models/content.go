package models

// ContentType enumerates the static pages the backend can store.
// At most one Content record exists per type.
type ContentType string

const (
	ContentAboutUs            ContentType = "about-us"
	ContentPrivacyPolicy      ContentType = "privacy-policy"
	ContentTermsAndConditions ContentType = "terms-and-conditions"
)

// ValidContentType reports whether t is one of the known page types
func ValidContentType(t ContentType) bool {
	switch t {
	case ContentAboutUs, ContentPrivacyPolicy, ContentTermsAndConditions:
		return true
	}
	return false
}

// Content represents a static content page record
type Content struct {
	ID        string      `json:"_id"`
	Type      ContentType `json:"type"`
	Content   string      `json:"content"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
}

// ContentRequest is the body for creating or updating a content page
type ContentRequest struct {
	Type    ContentType `json:"type"`
	Content string      `json:"content"`
}
