package domain

import (
	"reflect"
	"testing"
)

func TestMissingFields(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		product Product
		want    []Field
	}{
		{
			name:    "partial_product",
			product: Product{Name: "Earbuds", Price: 79.99, Brand: "AudioTech"},
			want:    []Field{FieldCategory, FieldSubcategory, FieldFeatures, FieldMaterials, FieldColors, FieldTags},
		},
		{
			name: "complete_product",
			product: Product{
				Name:        "Shoes",
				Category:    "Footwear",
				Subcategory: "Running",
				Features:    []string{"Cushioned sole"},
				Materials:   []string{"Mesh"},
				Colors:      []string{"Black"},
				Tags:        []string{"running"},
			},
			want: nil,
		},
		{
			name:    "whitespace_category_counts_as_missing",
			product: Product{Name: "Shoes", Category: "  ", Subcategory: "Running", Features: []string{"f"}, Materials: []string{"m"}, Colors: []string{"c"}, Tags: []string{"t"}},
			want:    []Field{FieldCategory},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.product.MissingFields()
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("MissingFields() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNormalizeContentType(t *testing.T) {
	t.Parallel()
	cases := []struct {
		input string
		want  ContentType
		ok    bool
	}{
		{"product_description", ContentProductDescription, true},
		{"seo", ContentSEO, true},
		{"marketing_email", ContentMarketingEmail, true},
		{"social_media", ContentSocialMedia, true},
		{"social_media_post", ContentSocialMedia, true},
		{" SEO ", ContentSEO, true},
		{"press_release", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeContentType(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("NormalizeContentType(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSocialTargetsEnabled(t *testing.T) {
	t.Parallel()
	targets := SocialTargets{"twitter": false, "facebook": true, "instagram": true}
	got := targets.Enabled()
	want := []string{"instagram", "facebook"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Enabled() = %v, want %v", got, want)
	}
}
