package app_test

import (
	"context"
	"errors"
	"testing"

	"tripvote/internal/app"
	"tripvote/internal/domain"
)

type fakePages struct {
	img string
	err error
	got string
}

func (f *fakePages) ImageMeta(ctx context.Context, u string) (string, error) {
	f.got = u
	return f.img, f.err
}

func TestExtract_ResolvesImageURL(t *testing.T) {
	cases := []struct {
		name, meta, want string
	}{
		{"absolute", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"protocol relative", "//cdn.example.com/b.jpg", "https://cdn.example.com/b.jpg"},
		{"root relative", "/img/c.jpg", "http://rentals.example.com/img/c.jpg"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pages := &fakePages{img: c.meta}
			got, err := app.NewImageService(pages).Extract(context.Background(), "http://rentals.example.com/listing/42")
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Fatalf("got %q want %q", got, c.want)
			}
		})
	}
}

func TestExtract_InvalidURL(t *testing.T) {
	svc := app.NewImageService(&fakePages{})
	for _, in := range []string{"", "not a url", "ftp://example.com/x", "https://"} {
		if _, err := svc.Extract(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestExtract_UpstreamMessages(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{403, "Access blocked by the website (likely anti-bot protection). Try manually copying the image URL instead."},
		{404, "Page not found. Make sure you're using a specific listing URL, not a search results page."},
		{429, "Rate limited by the website. VRBO/Airbnb block automated requests. Please manually copy the image URL from the listing page instead."},
		{500, "Failed to fetch the listing page (HTTP 500). Try manually copying the image URL instead."},
	}
	for _, c := range cases {
		pages := &fakePages{err: &domain.StatusError{Service: "listing", Status: c.status}}
		_, err := app.NewImageService(pages).Extract(context.Background(), "https://www.vrbo.com/123")
		if !errors.Is(err, domain.ErrUpstream) || domain.Message(err, "") != c.want {
			t.Errorf("status %d: got %v", c.status, err)
		}
	}
}

func TestExtract_NoImage(t *testing.T) {
	_, err := app.NewImageService(&fakePages{}).Extract(context.Background(), "https://www.airbnb.com/s/homes")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v", err)
	}
}
