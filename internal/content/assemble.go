package content

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"prodgen/internal/domain"
)

// TextGenerator is the single text-completion call the assembler depends on.
type TextGenerator interface {
	GenerateText(ctx context.Context, system, prompt string) (string, error)
}

// ImageGenerator is the single image-generation call the assembler depends on.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Assembler orchestrates prompt building, generation and response shaping.
// It holds no per-request state and is safe for concurrent use.
type Assembler struct {
	text  TextGenerator
	image ImageGenerator
	log   zerolog.Logger
}

func NewAssembler(text TextGenerator, image ImageGenerator, log zerolog.Logger) *Assembler {
	return &Assembler{text: text, image: image, log: log}
}

// typeResult is one content type's outcome; exactly one payload field or err
// is set.
type typeResult struct {
	description *domain.DescriptionContent
	seo         *domain.SEOContent
	email       *domain.EmailContent
	social      map[string]string
	err         error
}

// GenerateContent produces the bundle for every requested content type.
// Types are generated concurrently; each goroutine writes only its own slot,
// and a failed type is recorded in Bundle.Errors without cancelling or
// aborting its siblings.
func (a *Assembler) GenerateContent(ctx context.Context, p domain.Product, types []domain.ContentType, style domain.StyleOptions, targets domain.SocialTargets) (domain.ContentBundle, error) {
	results := make([]typeResult, len(types))

	var eg errgroup.Group
	for i, ct := range types {
		i, ct := i, ct
		eg.Go(func() error {
			results[i] = a.generateOne(ctx, p, ct, style, targets)
			return nil
		})
	}
	// goroutines never return errors; failures live in their result slots
	_ = eg.Wait()

	var bundle domain.ContentBundle
	for i, ct := range types {
		res := results[i]
		if res.err != nil {
			a.log.Warn().Err(res.err).Str("content_type", string(ct)).Msg("content generation failed")
			if bundle.Errors == nil {
				bundle.Errors = make(map[string]domain.ContentError)
			}
			bundle.Errors[string(ct)] = domain.ContentError{
				Kind:    domain.KindOf(res.err),
				Message: errorMessage(res.err),
			}
			continue
		}
		switch ct {
		case domain.ContentProductDescription:
			bundle.ProductDescription = res.description
		case domain.ContentSEO:
			bundle.SEO = res.seo
		case domain.ContentMarketingEmail:
			bundle.MarketingEmail = res.email
		case domain.ContentSocialMedia:
			bundle.SocialMedia = res.social
		}
	}
	return bundle, nil
}

func (a *Assembler) generateOne(ctx context.Context, p domain.Product, ct domain.ContentType, style domain.StyleOptions, targets domain.SocialTargets) typeResult {
	switch ct {
	case domain.ContentProductDescription:
		payload, err := a.describe(ctx, p, style)
		return typeResult{description: payload, err: err}
	case domain.ContentSEO:
		payload, err := a.seo(ctx, p)
		return typeResult{seo: payload, err: err}
	case domain.ContentMarketingEmail:
		payload, err := a.email(ctx, p, style)
		return typeResult{email: payload, err: err}
	case domain.ContentSocialMedia:
		payload, err := a.social(ctx, p, style, targets)
		return typeResult{social: payload, err: err}
	}
	return typeResult{err: domain.Validationf("unknown content type %q", ct)}
}

func (a *Assembler) describe(ctx context.Context, p domain.Product, style domain.StyleOptions) (*domain.DescriptionContent, error) {
	prompt := buildDescriptionPrompt(p, style)
	raw, err := a.text.GenerateText(ctx, descriptionSystemRole, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate product description: %w", err)
	}
	return parseDescription(raw)
}

func (a *Assembler) seo(ctx context.Context, p domain.Product) (*domain.SEOContent, error) {
	prompt := buildSEOPrompt(p)
	raw, err := a.text.GenerateText(ctx, seoSystemRole, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate seo content: %w", err)
	}
	return parseSEO(raw)
}

func (a *Assembler) email(ctx context.Context, p domain.Product, style domain.StyleOptions) (*domain.EmailContent, error) {
	prompt := buildEmailPrompt(p, style)
	raw, err := a.text.GenerateText(ctx, emailSystemRole, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate marketing email: %w", err)
	}
	return parseEmail(raw)
}

func (a *Assembler) social(ctx context.Context, p domain.Product, style domain.StyleOptions, targets domain.SocialTargets) (map[string]string, error) {
	enabled := targets.Enabled()
	if len(enabled) == 0 {
		return nil, domain.Validationf("social media content requested but no platform is enabled")
	}
	prompt := buildSocialPrompt(p, style, targets)
	raw, err := a.text.GenerateText(ctx, socialSystemRole, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate social media content: %w", err)
	}
	return parseSocial(raw, enabled)
}

// GenerateProductImage builds the image prompt, invokes the image backend
// and returns the URL together with the exact prompt used.
func (a *Assembler) GenerateProductImage(ctx context.Context, p domain.Product, style domain.ImageStyle) (domain.ImageResult, error) {
	prompt := BuildImagePrompt(p, style)
	url, err := a.image.GenerateImage(ctx, prompt)
	if err != nil {
		return domain.ImageResult{}, fmt.Errorf("generate product image: %w", err)
	}
	return domain.ImageResult{ImageURL: url, PromptUsed: prompt}, nil
}

func errorMessage(err error) string {
	if e, ok := domain.AsError(err); ok {
		return e.Message
	}
	return err.Error()
}
