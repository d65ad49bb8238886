// Package pagemeta fetches listing pages and reads their share-image tags.
package pagemeta

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"tripvote/internal/adapters/observability"
	"tripvote/internal/domain"
)

const (
	browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	maxPage   = 4 << 20
)

type Client struct{ hc *http.Client }

func New() *Client { return &Client{hc: &http.Client{Timeout: 15 * time.Second}} }

func (c *Client) ImageMeta(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", browserUA)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("listing", 0, time.Since(start))
		return "", err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("listing", resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.StatusError{Service: "listing", Status: resp.StatusCode}
	}
	return ExtractImage(io.LimitReader(resp.Body, maxPage)), nil
}

// ExtractImage returns the first og:image, else og:image:secure_url, else
// twitter:image content found in the document; "" when none is present.
func ExtractImage(r io.Reader) string {
	found := map[string]string{}
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return pick(found)
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "meta" || !hasAttr {
				continue
			}
			var key, content string
			for {
				k, v, more := z.TagAttr()
				switch strings.ToLower(string(k)) {
				case "property", "name":
					if key == "" {
						key = strings.ToLower(strings.TrimSpace(string(v)))
					}
				case "content":
					content = strings.TrimSpace(string(v))
				}
				if !more {
					break
				}
			}
			if content == "" {
				continue
			}
			if _, seen := found[key]; !seen {
				found[key] = content
			}
		}
	}
}

func pick(found map[string]string) string {
	for _, k := range []string{"og:image", "og:image:secure_url", "twitter:image"} {
		if v := found[k]; v != "" {
			return v
		}
	}
	return ""
}
