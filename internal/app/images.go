package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"tripvote/internal/domain"
)

type ImageService struct {
	pages domain.ListingPages
}

func NewImageService(p domain.ListingPages) *ImageService { return &ImageService{pages: p} }

// Extract returns an absolute preview-image URL for a listing page.
func (s *ImageService) Extract(ctx context.Context, rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", domain.Invalid("URL is required.")
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", domain.Invalid("Invalid URL format.")
	}

	img, err := s.pages.ImageMeta(ctx, u.String())
	if err != nil {
		var se *domain.StatusError
		if errors.As(err, &se) {
			return "", domain.Upstream(listingStatusMessage(se.Status))
		}
		log.Warn().Err(err).Str("url", u.String()).Msg("listing fetch failed")
		return "", domain.Upstream("Failed to extract image from listing.")
	}
	if img == "" {
		return "", domain.NotFound("No image found. This may be a search page rather than a specific listing. Try using an individual listing URL or manually enter an image URL.")
	}

	switch {
	case strings.HasPrefix(img, "//"):
		img = "https:" + img
	case strings.HasPrefix(img, "/"):
		img = u.Scheme + "://" + u.Host + img
	}
	return img, nil
}

func listingStatusMessage(status int) string {
	switch status {
	case http.StatusForbidden:
		return "Access blocked by the website (likely anti-bot protection). Try manually copying the image URL instead."
	case http.StatusNotFound:
		return "Page not found. Make sure you're using a specific listing URL, not a search results page."
	case http.StatusTooManyRequests:
		return "Rate limited by the website. VRBO/Airbnb block automated requests. Please manually copy the image URL from the listing page instead."
	}
	return fmt.Sprintf("Failed to fetch the listing page (HTTP %d). Try manually copying the image URL instead.", status)
}
