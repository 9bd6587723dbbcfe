package content

import (
	"fmt"
	"strings"

	"prodgen/internal/domain"
)

// System role framings sent as the chat system message, one per content type.
const (
	descriptionSystemRole = "You are an expert eCommerce copywriter who creates compelling product descriptions."
	seoSystemRole         = "You are an SEO expert who creates optimized product titles and meta descriptions."
	emailSystemRole       = "You are an email marketing specialist who creates compelling product-focused emails."
	socialSystemRole      = "You are a social media manager who creates engaging product posts."
	completionSystemRole  = "You are a product data specialist who completes missing product information accurately."
)

// SystemRole returns the system message for a content type.
func SystemRole(ct domain.ContentType) string {
	switch ct {
	case domain.ContentProductDescription:
		return descriptionSystemRole
	case domain.ContentSEO:
		return seoSystemRole
	case domain.ContentMarketingEmail:
		return emailSystemRole
	case domain.ContentSocialMedia:
		return socialSystemRole
	}
	return ""
}

// BuildPrompt renders the generation prompt for one content type. It is a
// pure function: identical inputs always produce byte-identical output.
// targets is only consulted for the social_media type.
func BuildPrompt(p domain.Product, ct domain.ContentType, style domain.StyleOptions, targets domain.SocialTargets) (string, error) {
	switch ct {
	case domain.ContentProductDescription:
		return buildDescriptionPrompt(p, style), nil
	case domain.ContentSEO:
		return buildSEOPrompt(p), nil
	case domain.ContentMarketingEmail:
		return buildEmailPrompt(p, style), nil
	case domain.ContentSocialMedia:
		return buildSocialPrompt(p, style, targets), nil
	}
	return "", domain.Validationf("unknown content type %q", ct)
}

func buildDescriptionPrompt(p domain.Product, style domain.StyleOptions) string {
	sb := &strings.Builder{}
	sb.WriteString("Create a compelling product description for the following e-commerce product:\n\n")
	fmt.Fprintf(sb, "PRODUCT: %s\n", p.Name)
	if p.Brand != "" {
		fmt.Fprintf(sb, "BRAND: %s\n", p.Brand)
	}
	fmt.Fprintf(sb, "PRICE: $%.2f\n", p.Price)

	if p.Category != "" {
		fmt.Fprintf(sb, "CATEGORY: %s", p.Category)
		if p.Subcategory != "" {
			fmt.Fprintf(sb, " > %s", p.Subcategory)
		}
		sb.WriteString("\n")
	}
	if len(p.Features) > 0 {
		sb.WriteString("\nKEY FEATURES:\n")
		for _, f := range p.Features {
			fmt.Fprintf(sb, "• %s\n", f)
		}
	}
	if len(p.Materials) > 0 {
		sb.WriteString("\nMATERIALS:\n")
		for _, m := range p.Materials {
			fmt.Fprintf(sb, "• %s\n", m)
		}
	}
	if len(p.Colors) > 0 {
		fmt.Fprintf(sb, "\nAVAILABLE COLORS: %s\n", strings.Join(p.Colors, ", "))
	}
	if p.BasicDescription != "" {
		fmt.Fprintf(sb, "\nBASIC PRODUCT INFO: %s\n", p.BasicDescription)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(sb, "\nTARGET KEYWORDS: %s\n", strings.Join(p.Tags, ", "))
	}

	sb.WriteString("\n--- WRITING INSTRUCTIONS ---\n")
	fmt.Fprintf(sb, "TONE: %s\n", coalesce(style.Tone, domain.DefaultTone))
	switch style.Length {
	case domain.LengthShort:
		sb.WriteString("LENGTH: Concise, approximately 75-100 words\n")
	case domain.LengthLong:
		sb.WriteString("LENGTH: Detailed, approximately 200-250 words\n")
	default:
		sb.WriteString("LENGTH: Balanced, approximately 150-175 words\n")
	}
	fmt.Fprintf(sb, "TARGET AUDIENCE: %s\n", coalesce(style.Audience, domain.DefaultAudience))

	sb.WriteString("\nSTRUCTURE:\n")
	sb.WriteString("1. Start with an attention-grabbing opening that highlights a key benefit\n")
	sb.WriteString("2. Describe what the product is and its primary use cases\n")
	sb.WriteString("3. Highlight 3-4 key features and their benefits to the user\n")
	sb.WriteString("4. Include relevant details about quality, materials, or design\n")
	sb.WriteString("5. End with a concise call-to-action or value proposition\n")

	sb.WriteString("\nADDITIONAL GUIDELINES:\n")
	sb.WriteString("• Use active voice and present tense\n")
	sb.WriteString("• Focus on benefits, not just features\n")
	sb.WriteString("• Create vivid, sensory language where appropriate\n")
	sb.WriteString("• Avoid clichés and generic marketing language\n")

	if len(style.Keywords) > 0 {
		fmt.Fprintf(sb, "\nPlease naturally incorporate these keywords: %s\n", strings.Join(style.Keywords, ", "))
	}

	sb.WriteString("\nProvide the product description as a cohesive, ready-to-use text without headings or bullet points unless they enhance readability. Don't include any disclaimers or explanations about the content.")
	return sb.String()
}

func buildSEOPrompt(p domain.Product) string {
	sb := &strings.Builder{}
	sb.WriteString("Generate an SEO-optimized product title and a short meta description for the following product:\n\n")
	sb.WriteString("PRODUCT INFORMATION:\n")
	fmt.Fprintf(sb, "- Name: %s\n", p.Name)
	if p.Brand != "" {
		fmt.Fprintf(sb, "- Brand: %s\n", p.Brand)
	}
	if p.Category != "" {
		fmt.Fprintf(sb, "- Category: %s\n", p.Category)
	}
	if p.Subcategory != "" {
		fmt.Fprintf(sb, "- Subcategory: %s\n", p.Subcategory)
	}
	if p.BasicDescription != "" {
		fmt.Fprintf(sb, "- Basic Description: %s\n", p.BasicDescription)
	}
	if len(p.Features) > 0 {
		sb.WriteString("\nKey Features:\n")
		for _, f := range p.Features {
			fmt.Fprintf(sb, "• %s\n", f)
		}
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(sb, "\nTarget Keywords: %s\n", strings.Join(p.Tags, ", "))
	}

	sb.WriteString("\nINSTRUCTIONS:\n")
	sb.WriteString("1. Create a short SEO-optimized product title:\n")
	sb.WriteString("- Highlight a key benefit or feature\n")
	sb.WriteString("- Keep the title STRICTLY between 30-70 characters\n")
	sb.WriteString("\n2. Create a short meta description:\n")
	sb.WriteString("- Start with the main keyword\n")
	sb.WriteString("- Include a strong value prop and a clear call-to-action\n")
	sb.WriteString("- Use 1-2 secondary keywords naturally\n")
	sb.WriteString("- Keep the description STRICTLY under 150 and above 120 characters\n")

	sb.WriteString("\nRESPONSE FORMAT:\n")
	sb.WriteString("Title: [your SEO title here]\n")
	sb.WriteString("Description: [your meta description here]\n")
	sb.WriteString("\nRespond only with the fields above in plain text — no extra explanations or formatting.")
	return sb.String()
}

func buildEmailPrompt(p domain.Product, style domain.StyleOptions) string {
	sb := &strings.Builder{}
	sb.WriteString("Create a compelling, human-sounding marketing email for the following product:\n\n")
	fmt.Fprintf(sb, "PRODUCT: %s\n", p.Name)
	if p.Brand != "" {
		fmt.Fprintf(sb, "BRAND: %s\n", p.Brand)
	}
	fmt.Fprintf(sb, "PRICE: $%.2f\n", p.Price)
	if p.Category != "" {
		fmt.Fprintf(sb, "CATEGORY: %s\n", p.Category)
	}
	if p.BasicDescription != "" {
		fmt.Fprintf(sb, "\nPRODUCT DESCRIPTION:\n%s\n", p.BasicDescription)
	}
	if len(p.Features) > 0 {
		sb.WriteString("\nKEY FEATURES:\n")
		for _, f := range p.Features {
			fmt.Fprintf(sb, "• %s\n", f)
		}
	}
	fmt.Fprintf(sb, "\nTARGET AUDIENCE: %s\n", coalesce(style.Audience, domain.DefaultAudience))

	sb.WriteString("\nINSTRUCTIONS:\n")
	sb.WriteString("1. Create an attention-grabbing subject line (40-60 characters)\n")
	sb.WriteString("- Create urgency or curiosity\n")
	sb.WriteString("- Mention a key benefit or the product name\n")
	sb.WriteString("\n2. Write an email body (150-200 words) that includes:\n")
	sb.WriteString("- Engaging opening paragraph highlighting a key benefit\n")
	sb.WriteString("- 2-3 paragraphs highlighting features and their benefits\n")
	sb.WriteString("- A strong call-to-action\n")

	fmt.Fprintf(sb, "\nTONE: %s\n", coalesce(style.Tone, domain.DefaultTone))
	fmt.Fprintf(sb, "LENGTH: %s\n", coalesce(style.Length, domain.DefaultLength))

	sb.WriteString("\nRESPONSE FORMAT:\n")
	sb.WriteString("Subject Line: [your subject line]\n")
	sb.WriteString("\n[Email Body Content]\n")
	sb.WriteString("\nFormat the email body as it should appear, with paragraph breaks. Do not include any placeholders.")
	return sb.String()
}

// Fixed per-platform requirement blocks appended to the social prompt.
var platformBriefs = map[string]string{
	"instagram": `INSTAGRAM:
- Create an eye-catching caption that works with a product image
- Include 2-3 relevant emojis spaced throughout the text
- Keep the main message under 125 words
- End with a clear call-to-action
- Include 3-5 relevant hashtags at the end (format with # symbol)
- Tone should be visual, aspirational, and lifestyle-focused`,
	"facebook": `FACEBOOK:
- Write a more detailed post (75-100 words)
- Include one question to encourage engagement
- Create a clear value proposition
- End with a specific call-to-action
- Tone should be conversational and informative
- No hashtags needed`,
	"twitter": `TWITTER:
- Create a concise, attention-grabbing tweet (max 280 characters)
- Make it shareable and engaging
- Include 1-2 relevant hashtags integrated into the text
- Include a call-to-action when possible
- Make it conversational, clever or timely when appropriate`,
	"linkedin": `LINKEDIN:
- Create a professional post focused on product benefits (100-150 words)
- Highlight business value, efficiency, or professional benefits
- Use a more formal, business-appropriate tone
- End with a professional call-to-action
- No hashtags needed`,
}

func buildSocialPrompt(p domain.Product, style domain.StyleOptions, targets domain.SocialTargets) string {
	sb := &strings.Builder{}
	sb.WriteString("I need engaging social media posts to promote the following product:\n\n")
	fmt.Fprintf(sb, "Product Name: %s\n", p.Name)
	if p.Brand != "" {
		fmt.Fprintf(sb, "Brand: %s\n", p.Brand)
	}
	fmt.Fprintf(sb, "Price: $%.2f\n", p.Price)
	if p.BasicDescription != "" {
		fmt.Fprintf(sb, "Basic Description: %s\n", p.BasicDescription)
	}
	if len(p.Features) > 0 {
		sb.WriteString("\nKey Selling Points:\n")
		// social copy only needs the top selling points
		features := p.Features
		if len(features) > 3 {
			features = features[:3]
		}
		for _, f := range features {
			fmt.Fprintf(sb, "- %s\n", f)
		}
	}
	fmt.Fprintf(sb, "\nTarget Audience: %s\n", coalesce(style.Audience, domain.DefaultAudience))

	sb.WriteString("\nI need content for the following platforms:\n")
	for _, platform := range targets.Enabled() {
		sb.WriteString("\n")
		sb.WriteString(platformBriefs[platform])
		sb.WriteString("\n")
	}

	fmt.Fprintf(sb, "\nOverall tone should be: %s\n", coalesce(style.Tone, domain.DefaultTone))
	if p.Brand != "" {
		fmt.Fprintf(sb, "The content should reflect %s's brand identity.\n", p.Brand)
	}
	if len(p.Tags) > 0 {
		hashtags := make([]string, 0, len(p.Tags))
		for _, tag := range p.Tags {
			hashtags = append(hashtags, strings.ReplaceAll(tag, " ", ""))
		}
		fmt.Fprintf(sb, "\nRelevant hashtag keywords: %s\n", strings.Join(hashtags, ", "))
	}

	sb.WriteString("\nFormat your response with clear headings for each platform like this:\n")
	sb.WriteString("\nINSTAGRAM:\n[Instagram post content here with hashtags at the end]\n")
	sb.WriteString("\nFACEBOOK:\n[Facebook post content here]\n")
	sb.WriteString("\nAnd so on for each requested platform.\n")
	return sb.String()
}

// BuildImagePrompt renders a single descriptive sentence for text-to-image
// generation: product name, category, colors, materials, brand, then the
// requested background, lighting and angle, ending with fixed quality
// qualifiers. Pure and deterministic; empty fields are omitted entirely.
func BuildImagePrompt(p domain.Product, style domain.ImageStyle) string {
	background := coalesce(style.Background, domain.DefaultBackground)
	lighting := coalesce(style.Lighting, domain.DefaultLighting)
	angle := coalesce(style.Angle, domain.DefaultAngle)

	parts := []string{"Professional product photo of " + p.Name}
	if p.Category != "" {
		category := p.Category
		if p.Subcategory != "" {
			category += " > " + p.Subcategory
		}
		parts = append(parts, category)
	}
	if len(p.Colors) > 0 {
		parts = append(parts, "in "+strings.Join(p.Colors, ", "))
	}
	if len(p.Materials) > 0 {
		parts = append(parts, "made of "+strings.Join(p.Materials, " and "))
	}
	if p.Brand != "" {
		parts = append(parts, "by "+p.Brand)
	}
	parts = append(parts,
		"on a "+background+" background",
		lighting+" lighting",
		angle+" angle",
		"high resolution, professional product photography, detailed, "+lighting+" lighting",
	)
	return strings.Join(parts, ", ")
}

// BuildCompletionPrompt asks the model to propose values for exactly the
// missing fields, in a JSON-only response. Present field values are rendered
// for context; missing ones are marked NEEDED.
func BuildCompletionPrompt(p domain.Product, missing []domain.Field) string {
	needed := make(map[domain.Field]bool, len(missing))
	for _, f := range missing {
		needed[f] = true
	}

	sb := &strings.Builder{}
	sb.WriteString("Based on the following product information, generate the missing product fields marked as NEEDED:\n\n")
	fmt.Fprintf(sb, "PRODUCT NAME: %s\n", p.Name)
	if p.Brand != "" {
		fmt.Fprintf(sb, "BRAND: %s\n", p.Brand)
	}
	fmt.Fprintf(sb, "PRICE: $%.2f\n", p.Price)
	if p.BasicDescription != "" {
		fmt.Fprintf(sb, "BASIC DESCRIPTION: %s\n", p.BasicDescription)
	}
	sb.WriteString("\n")

	writeScalar := func(label string, f domain.Field, value string) {
		if needed[f] {
			fmt.Fprintf(sb, "%s: NEEDED\n", label)
		} else {
			fmt.Fprintf(sb, "%s: %s\n", label, value)
		}
	}
	writeList := func(label string, f domain.Field, values []string, hint string) {
		if needed[f] {
			fmt.Fprintf(sb, "%s: NEEDED%s\n", label, hint)
		} else {
			fmt.Fprintf(sb, "%s: %s\n", label, strings.Join(values, ", "))
		}
	}

	writeScalar("CATEGORY", domain.FieldCategory, p.Category)
	writeScalar("SUBCATEGORY", domain.FieldSubcategory, p.Subcategory)
	writeList("FEATURES", domain.FieldFeatures, p.Features, " (at least 4-5 key features)")
	writeList("MATERIALS", domain.FieldMaterials, p.Materials, "")
	writeList("COLORS", domain.FieldColors, p.Colors, "")
	writeList("TAGS/KEYWORDS", domain.FieldTags, p.Tags, " (at least 5-7 relevant keywords)")

	sb.WriteString("\nINSTRUCTIONS:\n")
	sb.WriteString("1. For each field marked as NEEDED, generate realistic and appropriate content.\n")
	sb.WriteString("2. Ensure all generated content is consistent with existing product information.\n")
	sb.WriteString("3. For FEATURES, focus on specific benefits and unique selling points.\n")
	sb.WriteString("4. For MATERIALS, be specific about composition and quality.\n")
	sb.WriteString("5. For TAGS/KEYWORDS, include a mix of broad and specific terms relevant to the product.\n")

	sb.WriteString("\nRESPONSE FORMAT:\n")
	sb.WriteString("Provide your response as a JSON object with only the missing fields. For example:\n\n")
	sb.WriteString(`{"category": "Example Category", "subcategory": "Example Subcategory", "features": ["Feature 1", "Feature 2"], "materials": ["Material 1"], "colors": ["Color 1"], "tags": ["tag1", "tag2"]}`)
	sb.WriteString("\n\nOnly include fields that were marked as NEEDED. Do not include explanations outside the JSON.")
	return sb.String()
}

func coalesce(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}
