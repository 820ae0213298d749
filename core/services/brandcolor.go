// ABOUTME: Brand color extraction service suggesting a scheme from a logo image
// ABOUTME: Uses K-means clustering over the logo to pick primary colors

package services

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/EdlinOrg/prominentcolor"

	"magicmuse-api/core/domain"
	coreerrors "magicmuse-api/core/errors"
	"magicmuse-api/core/interfaces"
)

const (
	httpTimeout = 10 * time.Second
	userAgent   = "MagicMuse/1.0 (brand color extraction)"
)

// ColorScheme is the suggested design color set extracted from a brand logo.
type ColorScheme struct {
	Primary   domain.RGBColor `json:"primary"`
	Secondary domain.RGBColor `json:"secondary"`
	Accent    domain.RGBColor `json:"accent"`
}

// BrandColorService extracts prominent colors from brand logo images.
type BrandColorService struct {
	deps       interfaces.Dependencies
	httpClient *http.Client
}

// NewBrandColorService creates a brand color service.
func NewBrandColorService(deps interfaces.Dependencies) *BrandColorService {
	return &BrandColorService{
		deps: deps,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// ExtractScheme fetches the logo and clusters its pixels into a three-color
// scheme. Results are cached in durable storage keyed by URL.
func (s *BrandColorService) ExtractScheme(ctx context.Context, logoURL string) (*ColorScheme, error) {
	if logoURL == "" {
		return nil, &coreerrors.ValidationError{Field: "brandLogo", Message: "logo URL cannot be empty"}
	}
	parsed, err := url.Parse(logoURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &coreerrors.ValidationError{Field: "brandLogo", Message: "invalid logo URL"}
	}

	cacheKey := "brandColor:" + logoURL
	if s.deps.Storage != nil {
		if data, err := s.deps.Storage.Get(ctx, cacheKey); err == nil && len(data) > 0 {
			if scheme, err := decodeScheme(string(data)); err == nil {
				return scheme, nil
			}
		}
	}

	scheme, err := s.extractFromURL(ctx, logoURL)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Failed to extract brand colors", map[string]interface{}{
				"url":   logoURL,
				"error": err.Error(),
			})
		}
		return nil, err
	}

	if s.deps.Storage != nil {
		_ = s.deps.Storage.Set(ctx, cacheKey, []byte(encodeScheme(scheme)))
	}
	return scheme, nil
}

func (s *BrandColorService) extractFromURL(ctx context.Context, logoURL string) (*ColorScheme, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, logoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode,
			Message:    "fetching brand logo failed",
			API:        "logo host",
		}
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding logo image: %w", err)
	}

	colors, err := prominentcolor.Kmeans(img)
	if err != nil {
		return nil, fmt.Errorf("clustering logo colors: %w", err)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("no prominent colors found in logo")
	}

	scheme := &ColorScheme{}
	pick := func(i int) domain.RGBColor {
		if i >= len(colors) {
			i = len(colors) - 1
		}
		c := colors[i].Color
		return domain.RGBColor{R: c.R, G: c.G, B: c.B}
	}
	scheme.Primary = pick(0)
	scheme.Secondary = pick(1)
	scheme.Accent = pick(2)
	return scheme, nil
}

// encodeScheme serializes a scheme as "r,g,b;r,g,b;r,g,b" for caching.
func encodeScheme(s *ColorScheme) string {
	return fmt.Sprintf("%d,%d,%d;%d,%d,%d;%d,%d,%d",
		s.Primary.R, s.Primary.G, s.Primary.B,
		s.Secondary.R, s.Secondary.G, s.Secondary.B,
		s.Accent.R, s.Accent.G, s.Accent.B)
}

func decodeScheme(data string) (*ColorScheme, error) {
	parts := strings.Split(data, ";")
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed cached color scheme")
	}
	colors := make([]domain.RGBColor, 3)
	for i, part := range parts {
		var c domain.RGBColor
		if _, err := fmt.Sscanf(part, "%d,%d,%d", &c.R, &c.G, &c.B); err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return &ColorScheme{Primary: colors[0], Secondary: colors[1], Accent: colors[2]}, nil
}
