package domain

import "strings"

// Product is a catalog entry. Partial products are valid input to the
// completion flow: only name, price, brand and basic_description are
// guaranteed, every other field may be absent or empty.
type Product struct {
	ID               string   `json:"id,omitempty"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	Brand            string   `json:"brand,omitempty"`
	BasicDescription string   `json:"basic_description,omitempty"`
	Category         string   `json:"category,omitempty"`
	Subcategory      string   `json:"subcategory,omitempty"`
	Features         []string `json:"features,omitempty"`
	Materials        []string `json:"materials,omitempty"`
	Colors           []string `json:"colors,omitempty"`
	Tags             []string `json:"tags,omitempty"`
}

// Field names a structured product field the completion flow can infer.
type Field string

const (
	FieldCategory    Field = "category"
	FieldSubcategory Field = "subcategory"
	FieldFeatures    Field = "features"
	FieldMaterials   Field = "materials"
	FieldColors      Field = "colors"
	FieldTags        Field = "tags"
)

// CompletableFields lists the inferable fields in the order they are rendered
// into the completion prompt.
var CompletableFields = []Field{
	FieldCategory,
	FieldSubcategory,
	FieldFeatures,
	FieldMaterials,
	FieldColors,
	FieldTags,
}

// MissingFields reports which completable fields are absent or empty on p.
func (p Product) MissingFields() []Field {
	var missing []Field
	for _, f := range CompletableFields {
		if p.FieldEmpty(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// FieldEmpty reports whether the named completable field is absent or empty.
func (p Product) FieldEmpty(f Field) bool {
	switch f {
	case FieldCategory:
		return strings.TrimSpace(p.Category) == ""
	case FieldSubcategory:
		return strings.TrimSpace(p.Subcategory) == ""
	case FieldFeatures:
		return len(p.Features) == 0
	case FieldMaterials:
		return len(p.Materials) == 0
	case FieldColors:
		return len(p.Colors) == 0
	case FieldTags:
		return len(p.Tags) == 0
	}
	return false
}

// StyleOptions carries the caller's tone, length, audience and keyword
// preferences. Every field is optional; absent fields fall back to the
// documented defaults.
type StyleOptions struct {
	Tone     string   `json:"tone,omitempty"`
	Length   string   `json:"length,omitempty"`
	Audience string   `json:"audience,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

const (
	DefaultTone     = "professional"
	DefaultLength   = "medium"
	DefaultAudience = "general consumers"
)

const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// ImageStyle carries the caller's background, lighting and angle preferences
// for product image generation. All fields optional.
type ImageStyle struct {
	Background string `json:"background,omitempty"`
	Lighting   string `json:"lighting,omitempty"`
	Angle      string `json:"angle,omitempty"`
}

const (
	DefaultBackground = "plain white"
	DefaultLighting   = "studio"
	DefaultAngle      = "front-facing"
)
