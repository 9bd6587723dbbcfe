package domain

import "strings"

// ContentType names a kind of generated marketing text.
type ContentType string

const (
	ContentProductDescription ContentType = "product_description"
	ContentSEO                ContentType = "seo"
	ContentMarketingEmail     ContentType = "marketing_email"
	ContentSocialMedia        ContentType = "social_media"
)

// ContentTypes lists the supported kinds in a stable order.
var ContentTypes = []ContentType{
	ContentProductDescription,
	ContentSEO,
	ContentMarketingEmail,
	ContentSocialMedia,
}

// NormalizeContentType maps a request tag to its canonical content type.
// The legacy "social_media_post" tag is accepted as an alias.
func NormalizeContentType(tag string) (ContentType, bool) {
	switch ContentType(strings.ToLower(strings.TrimSpace(tag))) {
	case ContentProductDescription:
		return ContentProductDescription, true
	case ContentSEO:
		return ContentSEO, true
	case ContentMarketingEmail:
		return ContentMarketingEmail, true
	case ContentSocialMedia, ContentType("social_media_post"):
		return ContentSocialMedia, true
	}
	return "", false
}

// SocialTargets maps a platform name to whether copy should be generated
// for it. Platforms mapped to false behave the same as absent ones.
type SocialTargets map[string]bool

// SocialPlatforms lists the supported platforms in prompt order.
var SocialPlatforms = []string{"instagram", "facebook", "twitter", "linkedin"}

// KnownPlatform reports whether name is a supported social platform.
func KnownPlatform(name string) bool {
	for _, p := range SocialPlatforms {
		if p == name {
			return true
		}
	}
	return false
}

// Enabled returns the enabled platforms in SocialPlatforms order.
func (t SocialTargets) Enabled() []string {
	var out []string
	for _, p := range SocialPlatforms {
		if t[p] {
			out = append(out, p)
		}
	}
	return out
}

// DescriptionContent is the payload for the product_description type.
type DescriptionContent struct {
	DetailedDescription string `json:"detailed_description"`
}

// SEOContent is the payload for the seo type.
type SEOContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// EmailContent is the payload for the marketing_email type.
type EmailContent struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ContentError marks a content type that failed inside an otherwise
// successful bundle.
type ContentError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// ContentBundle aggregates the generated content for one request, keyed by
// content type. Types that failed appear under Errors instead of as payloads;
// a failed type never aborts its siblings.
type ContentBundle struct {
	ProductDescription *DescriptionContent     `json:"product_description,omitempty"`
	SEO                *SEOContent             `json:"seo,omitempty"`
	MarketingEmail     *EmailContent           `json:"marketing_email,omitempty"`
	SocialMedia        map[string]string       `json:"social_media,omitempty"`
	Errors             map[string]ContentError `json:"errors,omitempty"`
}

// MarketingCopy groups the email and social payloads inside a completed
// product.
type MarketingCopy struct {
	Email       EmailContent      `json:"email"`
	SocialMedia map[string]string `json:"social_media"`
}

// CompletedProduct is a product with every inferable field filled plus the
// full marketing payload. Original non-empty fields are never overwritten.
type CompletedProduct struct {
	Product
	DetailedDescription string        `json:"detailed_description"`
	SEOTitle            string        `json:"seo_title"`
	SEODescription      string        `json:"seo_description"`
	MarketingCopy       MarketingCopy `json:"marketing_copy"`
}

// ImageResult carries a generated product image reference together with the
// exact prompt that produced it.
type ImageResult struct {
	ImageURL   string `json:"image_url"`
	PromptUsed string `json:"prompt_used"`
}
