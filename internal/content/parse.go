package content

import (
	"encoding/json"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"prodgen/internal/domain"
)

// Parsers map raw model output onto the typed per-content-type payloads.
// They tolerate whitespace and formatting drift but return a typed parse
// error when the expected structural markers are entirely absent; guessing
// is worse than failing loudly.

func parseDescription(raw string) (*domain.DescriptionContent, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, domain.Parsef("description response is empty")
	}
	return &domain.DescriptionContent{DetailedDescription: text}, nil
}

func parseSEO(raw string) (*domain.SEOContent, error) {
	var out domain.SEOContent
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "title:"):
			out.Title = strings.TrimSpace(line[len("title:"):])
		case strings.HasPrefix(lower, "description:"):
			out.Description = strings.TrimSpace(line[len("description:"):])
		}
	}
	if out.Title == "" || out.Description == "" {
		return nil, domain.Parsef("seo response is missing Title/Description markers")
	}
	return &out, nil
}

func parseEmail(raw string) (*domain.EmailContent, error) {
	lines := strings.Split(raw, "\n")
	subjectIdx := -1
	var subject string
	for i, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(lower, "subject line:"):
			subject = strings.TrimSpace(strings.TrimSpace(line)[len("subject line:"):])
			subjectIdx = i
		case strings.HasPrefix(lower, "subject:"):
			subject = strings.TrimSpace(strings.TrimSpace(line)[len("subject:"):])
			subjectIdx = i
		}
		if subjectIdx >= 0 {
			break
		}
	}
	if subjectIdx < 0 || subject == "" {
		return nil, domain.Parsef("email response is missing a subject line marker")
	}

	bodyStart := subjectIdx + 1
	for bodyStart < len(lines) && strings.TrimSpace(lines[bodyStart]) == "" {
		bodyStart++
	}
	body := strings.TrimSpace(strings.Join(lines[bodyStart:], "\n"))
	if body == "" {
		return nil, domain.Parsef("email response has no body")
	}
	return &domain.EmailContent{Subject: subject, Body: body}, nil
}

// brandHeadings lists platform headings whose natural casing is not plain
// title case and so cannot be derived with a caser.
var brandHeadings = map[string]string{
	"linkedin": "LinkedIn:",
}

// parseSocial extracts per-platform sections for exactly the requested
// platforms. Headings are matched in upper case, title case or the
// platform's own brand casing. Sections are delimited by any known platform
// heading, so stray sections the model added for other platforms still
// terminate the previous one; they are simply dropped from the result.
func parseSocial(raw string, platforms []string) (map[string]string, error) {
	titleCaser := cases.Title(language.English)

	type section struct {
		platform string
		start    int
		textFrom int
	}
	var sections []section
	for _, platform := range domain.SocialPlatforms {
		headings := []string{strings.ToUpper(platform) + ":", titleCaser.String(platform) + ":"}
		if brand, ok := brandHeadings[platform]; ok {
			headings = append(headings, brand)
		}
		for _, heading := range headings {
			if pos := strings.Index(raw, heading); pos != -1 {
				sections = append(sections, section{platform: platform, start: pos, textFrom: pos + len(heading)})
				break
			}
		}
	}
	if len(sections) == 0 {
		return nil, domain.Parsef("social media response has no platform headings")
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].start < sections[j].start })

	found := make(map[string]string, len(sections))
	for i, sec := range sections {
		end := len(raw)
		if i+1 < len(sections) {
			end = sections[i+1].start
		}
		found[sec.platform] = strings.TrimSpace(raw[sec.textFrom:end])
	}

	out := make(map[string]string, len(platforms))
	var missing []string
	for _, platform := range platforms {
		text, ok := found[platform]
		if !ok || text == "" {
			missing = append(missing, platform)
			continue
		}
		out[platform] = text
	}
	if len(missing) > 0 {
		return nil, domain.Parsef("social media response is missing sections for: %s", strings.Join(missing, ", "))
	}
	return out, nil
}

// inferredFields is the JSON shape of a field-inference response. List
// fields also accept a single comma-separated string, which some models
// emit despite the format instructions.
type inferredFields struct {
	Category    string       `json:"category"`
	Subcategory string       `json:"subcategory"`
	Features    flexibleList `json:"features"`
	Materials   flexibleList `json:"materials"`
	Colors      flexibleList `json:"colors"`
	Tags        flexibleList `json:"tags"`
}

type flexibleList []string

func (l *flexibleList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = trimEach(items)
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = trimEach(strings.Split(single, ","))
	return nil
}

func trimEach(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseInferredFields(raw string) (inferredFields, error) {
	var fields inferredFields
	fragment := extractJSONFragment(raw)
	if fragment == "" {
		return fields, domain.Parsef("field inference response contains no JSON object")
	}
	if err := json.Unmarshal([]byte(fragment), &fields); err != nil {
		return inferredFields{}, domain.Parsef("field inference response is not valid JSON: %v", err)
	}
	return fields, nil
}

// extractJSONFragment strips code fences and surrounding prose from a model
// response, leaving the outermost JSON value.
func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start < 0 || end < start {
		return ""
	}
	return strings.TrimSpace(text[start : end+1])
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
