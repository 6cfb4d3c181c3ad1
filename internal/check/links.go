// Package check contains the read-only catalog checks: external link
// validation and template leftover detection. Checks only report; they
// never modify the catalog.
package check

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"golang.org/x/time/rate"

	"github.com/osgames/curator/internal/catalog"
	"github.com/osgames/curator/internal/config"
	"github.com/osgames/curator/internal/fileutil"
)

// UserAgent is sent with every link fetch. Some hosts answer plain library
// user agents with 403.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; WOW64)"

// progressInterval controls how often the running link count is printed.
const progressInterval = 50

// Logger is the subset of logging the checks use.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
}

// LinkChecker fetches every external link in the catalog and reports those
// that do not answer with a success status. Fetches run on a bounded worker
// pool behind a global rate limiter; each unique URL is fetched once per
// run and failures are reported per referencing entry.
type LinkChecker struct {
	client  *http.Client
	limiter *rate.Limiter
	workers int
	log     Logger
}

// NewLinkChecker creates a LinkChecker from the link check configuration.
func NewLinkChecker(cfg config.LinkCheckConfig, log Logger) *LinkChecker {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	workers := cfg.MaxConcurrency
	if workers < 1 {
		workers = 1
	}
	return &LinkChecker{
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, workers),
		workers: workers,
		log:     log,
	}
}

// Run checks every external link referenced by the entries under gamesDir.
// Broken links are reported to out as "<file>: <url> - <reason>" lines and
// never abort the run; a progress line is printed every 50 checks. The
// returned error covers filesystem problems and context cancellation only.
func (c *LinkChecker) Run(ctx context.Context, gamesDir string, out io.Writer) error {
	categories, err := catalog.Categories(gamesDir)
	if err != nil {
		return err
	}

	// Collect the links first so the total is known before fetching
	// starts. refs remembers every referencing entry of a URL, including
	// repeats, so reporting stays per occurrence.
	refs := make(map[string][]string)
	var urls []string
	for _, category := range categories {
		fmt.Fprintf(out, "check links for %s\n", category.Name)
		files, err := category.EntryFiles()
		if err != nil {
			return err
		}
		for _, file := range files {
			content, err := fileutil.ReadText(file)
			if err != nil {
				return err
			}
			name := filepath.Base(file)
			for _, url := range ExtractURLs(content) {
				if len(refs[url]) == 0 {
					urls = append(urls, url)
				}
				refs[url] = append(refs[url], name)
			}
		}
	}

	c.log.LogInfo(fmt.Sprintf("checking %d unique links with %d workers", len(urls), c.workers))

	var (
		mu      sync.Mutex
		checked int
	)
	jobs := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for url := range jobs {
				if err := c.limiter.Wait(ctx); err != nil {
					return
				}
				reason := c.fetch(ctx, url)

				mu.Lock()
				if reason != "" {
					for _, name := range refs[url] {
						fmt.Fprintf(out, "%s: %s - %s\n", name, url, reason)
					}
				}
				checked++
				if checked%progressInterval == 0 {
					fmt.Fprintf(out, "%d links checked\n", checked)
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, url := range urls {
		select {
		case jobs <- url:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	fmt.Fprintf(out, "%d links checked\n", checked)
	return ctx.Err()
}

// fetch returns an empty string when the URL answers with a non-error
// status and a short description of the failure otherwise.
func (c *LinkChecker) fetch(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err.Error()
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.LogDebug(fmt.Sprintf("fetch %s: %v", url, err))
		return "disconnected without response"
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return strconv.Itoa(resp.StatusCode)
	}
	c.log.LogDebug(fmt.Sprintf("ok %s (%d)", url, resp.StatusCode))
	return ""
}

// markdown recognizes bare URLs in addition to explicit links, matching the
// three ways entries reference the outside world: <http://...> autolinks,
// [title](http://...) links and plain http://... text.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Linkify))

// ExtractURLs returns the http(s) URLs referenced by a markdown document in
// document order: link and image destinations, autolinks, and bare URLs.
// Repeated references are returned repeatedly.
func ExtractURLs(content string) []string {
	source := []byte(content)
	doc := markdown.Parser().Parse(text.NewReader(source))

	var urls []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		var dest string
		switch node := n.(type) {
		case *ast.Link:
			dest = string(node.Destination)
		case *ast.Image:
			dest = string(node.Destination)
		case *ast.AutoLink:
			dest = string(node.URL(source))
		default:
			return ast.WalkContinue, nil
		}
		if strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://") {
			urls = append(urls, dest)
		}
		return ast.WalkContinue, nil
	})
	return urls
}
