package content

import (
	"reflect"
	"testing"

	"prodgen/internal/domain"
)

func TestParseSEO(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		raw     string
		want    *domain.SEOContent
		wantErr bool
	}{
		{
			name: "clean",
			raw:  "Title: Premium Wireless Earbuds\nDescription: Wireless earbuds with ANC. Shop now.",
			want: &domain.SEOContent{Title: "Premium Wireless Earbuds", Description: "Wireless earbuds with ANC. Shop now."},
		},
		{
			name: "case_and_whitespace_drift",
			raw:  "  TITLE:  Premium Wireless Earbuds  \n\n  description:   Wireless earbuds with ANC.  ",
			want: &domain.SEOContent{Title: "Premium Wireless Earbuds", Description: "Wireless earbuds with ANC."},
		},
		{
			name:    "markers_absent",
			raw:     "Here is a great product headline you could use.",
			wantErr: true,
		},
		{
			name:    "only_title",
			raw:     "Title: Premium Wireless Earbuds",
			wantErr: true,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseSEO(tc.raw)
			if tc.wantErr {
				if domain.KindOf(err) != domain.KindParse {
					t.Fatalf("KindOf = %q, want parse", domain.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSEO returned error: %v", err)
			}
			if *got != *tc.want {
				t.Fatalf("parseSEO = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseEmail(t *testing.T) {
	t.Parallel()
	raw := "Subject Line: Don't miss these earbuds\n\nHear the difference today.\n\nOrder now and save."
	got, err := parseEmail(raw)
	if err != nil {
		t.Fatalf("parseEmail returned error: %v", err)
	}
	if got.Subject != "Don't miss these earbuds" {
		t.Fatalf("Subject = %q", got.Subject)
	}
	if got.Body != "Hear the difference today.\n\nOrder now and save." {
		t.Fatalf("Body = %q", got.Body)
	}

	if _, err := parseEmail("Just some copy without any subject marker."); domain.KindOf(err) != domain.KindParse {
		t.Fatalf("KindOf = %q, want parse", domain.KindOf(err))
	}
	if _, err := parseEmail("Subject: Great deal"); domain.KindOf(err) != domain.KindParse {
		t.Fatalf("missing body: KindOf = %q, want parse", domain.KindOf(err))
	}
}

func TestParseEmailShortSubjectMarker(t *testing.T) {
	t.Parallel()
	got, err := parseEmail("Subject: Big news\nBody text here.")
	if err != nil {
		t.Fatalf("parseEmail returned error: %v", err)
	}
	if got.Subject != "Big news" || got.Body != "Body text here." {
		t.Fatalf("parseEmail = %+v", got)
	}
}

func TestParseSocialGating(t *testing.T) {
	t.Parallel()
	raw := `INSTAGRAM:
Great sound on the go ✨ #earbuds

FACEBOOK:
What's your commute soundtrack? Shop AudioTech today.

TWITTER:
ANC earbuds for less.`

	got, err := parseSocial(raw, []string{"instagram", "facebook"})
	if err != nil {
		t.Fatalf("parseSocial returned error: %v", err)
	}
	want := map[string]string{
		"instagram": "Great sound on the go ✨ #earbuds",
		"facebook":  "What's your commute soundtrack? Shop AudioTech today.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseSocial = %#v, want %#v", got, want)
	}
}

func TestParseSocialTitleCaseHeadings(t *testing.T) {
	t.Parallel()
	raw := "Instagram:\nShiny caption here.\n\nFacebook:\nLonger post here."
	got, err := parseSocial(raw, []string{"instagram", "facebook"})
	if err != nil {
		t.Fatalf("parseSocial returned error: %v", err)
	}
	if got["instagram"] != "Shiny caption here." || got["facebook"] != "Longer post here." {
		t.Fatalf("parseSocial = %#v", got)
	}
}

func TestParseSocialBrandCasedHeadings(t *testing.T) {
	t.Parallel()
	raw := "LinkedIn:\nA professional look at everyday audio.\n\nInstagram:\nSound for every feed."
	got, err := parseSocial(raw, []string{"linkedin", "instagram"})
	if err != nil {
		t.Fatalf("parseSocial returned error: %v", err)
	}
	want := map[string]string{
		"linkedin":  "A professional look at everyday audio.",
		"instagram": "Sound for every feed.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseSocial = %#v, want %#v", got, want)
	}
}

func TestParseSocialMissingSection(t *testing.T) {
	t.Parallel()
	raw := "INSTAGRAM:\nCaption."
	_, err := parseSocial(raw, []string{"instagram", "twitter"})
	if domain.KindOf(err) != domain.KindParse {
		t.Fatalf("KindOf = %q, want parse", domain.KindOf(err))
	}

	_, err = parseSocial("no headings at all", []string{"instagram"})
	if domain.KindOf(err) != domain.KindParse {
		t.Fatalf("KindOf = %q, want parse", domain.KindOf(err))
	}
}

func TestParseInferredFields(t *testing.T) {
	t.Parallel()
	raw := "```json\n{\"category\":\"Electronics\",\"features\":[\" ANC \",\"24h battery\"],\"tags\":\"wireless, bluetooth , audio\"}\n```"
	got, err := parseInferredFields(raw)
	if err != nil {
		t.Fatalf("parseInferredFields returned error: %v", err)
	}
	if got.Category != "Electronics" {
		t.Fatalf("Category = %q", got.Category)
	}
	if !reflect.DeepEqual([]string(got.Features), []string{"ANC", "24h battery"}) {
		t.Fatalf("Features = %#v", got.Features)
	}
	if !reflect.DeepEqual([]string(got.Tags), []string{"wireless", "bluetooth", "audio"}) {
		t.Fatalf("Tags = %#v", got.Tags)
	}
}

func TestParseInferredFieldsSurroundingProse(t *testing.T) {
	t.Parallel()
	raw := "Sure! Here are the missing fields:\n{\"subcategory\": \"Audio\"}\nLet me know if you need more."
	got, err := parseInferredFields(raw)
	if err != nil {
		t.Fatalf("parseInferredFields returned error: %v", err)
	}
	if got.Subcategory != "Audio" {
		t.Fatalf("Subcategory = %q", got.Subcategory)
	}
}

func TestParseInferredFieldsNoJSON(t *testing.T) {
	t.Parallel()
	_, err := parseInferredFields("I could not determine any fields.")
	if domain.KindOf(err) != domain.KindParse {
		t.Fatalf("KindOf = %q, want parse", domain.KindOf(err))
	}
}

func TestParseDescription(t *testing.T) {
	t.Parallel()
	got, err := parseDescription("  A rich, detailed description.  \n")
	if err != nil {
		t.Fatalf("parseDescription returned error: %v", err)
	}
	if got.DetailedDescription != "A rich, detailed description." {
		t.Fatalf("DetailedDescription = %q", got.DetailedDescription)
	}
	if _, err := parseDescription("   "); domain.KindOf(err) != domain.KindParse {
		t.Fatalf("KindOf = %q, want parse", domain.KindOf(err))
	}
}
