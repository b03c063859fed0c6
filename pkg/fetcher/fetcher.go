package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

type FetcherConfig struct {
	SearchURL   string  // Gutendex API base
	BookPageURL string  // Gutenberg ebook page base, for the scrape fallback
	RateLimit   float64 // requests per second
	Timeout     time.Duration
	MaxBooks    int // per author
	Retries     int
	OnProgress  func(title string)
}

// Fetcher downloads public-domain works from Project Gutenberg. It searches
// the Gutendex catalog per author and saves plain-text editions; when the
// catalog entry carries no usable text format, it scrapes the book's page
// for a .txt link instead.
type Fetcher struct {
	config  FetcherConfig
	client  *http.Client
	limiter *rate.Limiter
}

func NewWithConfig(config FetcherConfig) *Fetcher {
	if config.SearchURL == "" {
		config.SearchURL = "https://gutendex.com"
	}
	if config.BookPageURL == "" {
		config.BookPageURL = "https://www.gutenberg.org/ebooks"
	}
	if config.RateLimit == 0 {
		config.RateLimit = 2
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.MaxBooks == 0 {
		config.MaxBooks = 5
	}
	if config.Retries == 0 {
		config.Retries = 3
	}

	return &Fetcher{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(config.RateLimit), 1),
	}
}

type gutendexAuthor struct {
	Name string `json:"name"`
}

type gutendexBook struct {
	ID      int               `json:"id"`
	Title   string            `json:"title"`
	Authors []gutendexAuthor  `json:"authors"`
	Formats map[string]string `json:"formats"`
}

type gutendexResponse struct {
	Count   int            `json:"count"`
	Results []gutendexBook `json:"results"`
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)

// DownloadAuthor searches for an author's works and saves up to MaxBooks
// plain-text files into outputDir, skipping files that already exist.
// Returns the paths written.
func (f *Fetcher) DownloadAuthor(ctx context.Context, author, outputDir string) ([]string, error) {
	searchURL := fmt.Sprintf("%s/books?search=%s&sort=popular",
		f.config.SearchURL, url.QueryEscape(author))

	body, err := f.get(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to search for %s: %w", author, err)
	}

	var resp gutendexResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("invalid catalog response for %s: %w", author, err)
	}
	if resp.Count == 0 {
		return nil, nil
	}

	// The catalog search is broad; keep only books actually attributed to
	// the author, matched on surname.
	parts := strings.Fields(author)
	surname := strings.ToLower(parts[len(parts)-1])

	var relevant []gutendexBook
	for _, book := range resp.Results {
		for _, a := range book.Authors {
			if strings.Contains(strings.ToLower(a.Name), surname) {
				relevant = append(relevant, book)
				break
			}
		}
	}
	if len(relevant) > f.config.MaxBooks {
		relevant = relevant[:f.config.MaxBooks]
	}

	var written []string
	for _, book := range relevant {
		path, err := f.downloadBook(ctx, author, book, outputDir)
		if err != nil {
			log.Printf("warn: failed to download %q: %v", book.Title, err)
			continue
		}
		if path != "" {
			written = append(written, path)
			if f.config.OnProgress != nil {
				f.config.OnProgress(book.Title)
			}
		}
	}
	return written, nil
}

func (f *Fetcher) downloadBook(ctx context.Context, author string, book gutendexBook, outputDir string) (string, error) {
	safeTitle := sanitizeName(book.Title)
	if len(safeTitle) > 50 {
		safeTitle = safeTitle[:50]
	}
	filename := fmt.Sprintf("%s_%s_%d.txt", sanitizeName(author), safeTitle, book.ID)
	path := filepath.Join(outputDir, filename)

	if _, err := os.Stat(path); err == nil {
		return "", nil // already downloaded
	}

	textURL := textFormatURL(book.Formats)
	if textURL == "" {
		var err error
		textURL, err = f.scrapeTextLink(ctx, book.ID)
		if err != nil {
			return "", fmt.Errorf("no plain text format: %w", err)
		}
	}

	content, err := f.get(ctx, textURL)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func textFormatURL(formats map[string]string) string {
	for _, mime := range []string{
		"text/plain; charset=utf-8",
		"text/plain; charset=us-ascii",
		"text/plain",
	} {
		if u, ok := formats[mime]; ok {
			return u
		}
	}
	for _, u := range formats {
		if strings.HasSuffix(u, ".txt") {
			return u
		}
	}
	return ""
}

// scrapeTextLink pulls the book's catalog page and looks for a plain-text
// download link.
func (f *Fetcher) scrapeTextLink(ctx context.Context, bookID int) (string, error) {
	pageURL := fmt.Sprintf("%s/%d", f.config.BookPageURL, bookID)

	body, err := f.get(ctx, pageURL)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return "", err
	}

	var link string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if strings.Contains(href, ".txt") {
			link = href
			return false
		}
		return true
	})
	if link == "" {
		return "", fmt.Errorf("no .txt link on book page %d", bookID)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	resolved, err := base.Parse(link)
	if err != nil {
		return "", err
	}
	return resolved.String(), nil
}

// get performs a rate-limited GET, retrying 429 and 5xx responses.
func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < f.config.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
			}
		}

		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}

		resp, err := f.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		return body, nil
	}

	return nil, lastErr
}

func sanitizeName(s string) string {
	return strings.Trim(unsafeChars.ReplaceAllString(strings.ToLower(s), "_"), "_")
}
