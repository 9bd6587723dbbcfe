package content

import (
	"context"
	"fmt"

	"prodgen/internal/domain"
)

// Fixed style choices for the marketing payload produced during product
// completion.
var (
	completionDescriptionStyle = domain.StyleOptions{Tone: "professional", Length: "medium"}
	completionEmailStyle       = domain.StyleOptions{Tone: "enthusiastic", Length: "medium"}
	completionSocialStyle      = domain.StyleOptions{Tone: "casual", Length: "short"}
	completionSocialTargets    = domain.SocialTargets{"instagram": true, "facebook": true, "twitter": true}
)

// CompleteProduct infers the missing structured fields of a partial product,
// merges them under the original values, then generates the full marketing
// payload for the completed product. Unlike GenerateContent, any failure
// here is terminal: a half-completed product is worse than an error.
func (a *Assembler) CompleteProduct(ctx context.Context, p domain.Product) (domain.CompletedProduct, error) {
	merged := p
	if missing := p.MissingFields(); len(missing) > 0 {
		prompt := BuildCompletionPrompt(p, missing)
		raw, err := a.text.GenerateText(ctx, completionSystemRole, prompt)
		if err != nil {
			return domain.CompletedProduct{}, fmt.Errorf("infer missing fields: %w", err)
		}
		inferred, err := parseInferredFields(raw)
		if err != nil {
			return domain.CompletedProduct{}, err
		}
		merged = mergeInferred(p, inferred)
	}

	out := domain.CompletedProduct{Product: merged}

	description, err := a.describe(ctx, merged, completionDescriptionStyle)
	if err != nil {
		return domain.CompletedProduct{}, err
	}
	out.DetailedDescription = description.DetailedDescription

	seo, err := a.seo(ctx, merged)
	if err != nil {
		return domain.CompletedProduct{}, err
	}
	out.SEOTitle = seo.Title
	out.SEODescription = seo.Description

	email, err := a.email(ctx, merged, completionEmailStyle)
	if err != nil {
		return domain.CompletedProduct{}, err
	}
	out.MarketingCopy.Email = *email

	social, err := a.social(ctx, merged, completionSocialStyle, completionSocialTargets)
	if err != nil {
		return domain.CompletedProduct{}, err
	}
	out.MarketingCopy.SocialMedia = social

	return out, nil
}

// mergeInferred fills only genuinely missing fields; original non-empty
// values always win and are never overwritten.
func mergeInferred(p domain.Product, inferred inferredFields) domain.Product {
	merged := p
	if p.FieldEmpty(domain.FieldCategory) && inferred.Category != "" {
		merged.Category = inferred.Category
	}
	if p.FieldEmpty(domain.FieldSubcategory) && inferred.Subcategory != "" {
		merged.Subcategory = inferred.Subcategory
	}
	if p.FieldEmpty(domain.FieldFeatures) && len(inferred.Features) > 0 {
		merged.Features = inferred.Features
	}
	if p.FieldEmpty(domain.FieldMaterials) && len(inferred.Materials) > 0 {
		merged.Materials = inferred.Materials
	}
	if p.FieldEmpty(domain.FieldColors) && len(inferred.Colors) > 0 {
		merged.Colors = inferred.Colors
	}
	if p.FieldEmpty(domain.FieldTags) && len(inferred.Tags) > 0 {
		merged.Tags = inferred.Tags
	}
	return merged
}
