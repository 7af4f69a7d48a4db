package extract

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// Selectors for the docs-page regions we scrape. These track the rendered
// docblock markup and are intentionally kept in one place.
const (
	codeToggleSelector = ".docblock-code-toggle"
	codeBlockSelector  = ".docblock-source pre"
	argsTableSelector  = ".docblock-argstable"
)

// RodConfig holds browser configuration for the rod extractor.
type RodConfig struct {
	Headless            bool `yaml:"headless"`
	ViewportWidth       int  `yaml:"viewport_width"`
	ViewportHeight      int  `yaml:"viewport_height"`
	NavigationTimeoutMs int  `yaml:"navigation_timeout_ms"`
}

// DefaultRodConfig returns sensible defaults.
func DefaultRodConfig() RodConfig {
	return RodConfig{
		Headless:            true,
		ViewportWidth:       1920,
		ViewportHeight:      1080,
		NavigationTimeoutMs: 30000,
	}
}

// NavigationTimeout returns the per-story navigation timeout.
func (c RodConfig) NavigationTimeout() time.Duration {
	if c.NavigationTimeoutMs == 0 {
		return 30 * time.Second
	}
	return time.Duration(c.NavigationTimeoutMs) * time.Millisecond
}

// RodExtractor renders a story's docs page in headless Chromium and scrapes
// its code blocks and args tables. It owns one browser for its lifetime and
// opens one page per story.
type RodExtractor struct {
	cfg     RodConfig
	baseURL string
	logger  *zap.Logger

	mu      sync.Mutex
	browser *rod.Browser
}

// NewRodExtractor creates an extractor rooted at the Storybook base URL.
func NewRodExtractor(baseURL string, cfg RodConfig, logger *zap.Logger) *RodExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RodExtractor{
		cfg:     cfg,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// Start launches Chromium and connects to it. Calling Start on a running
// extractor is a no-op.
func (e *RodExtractor) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browser != nil {
		return nil
	}

	controlURL, err := launcher.New().Headless(e.cfg.Headless).Launch()
	if err != nil {
		return fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect to chrome: %w", err)
	}

	e.browser = browser
	return nil
}

// Close shuts the browser down.
func (e *RodExtractor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browser == nil {
		return nil
	}
	err := e.browser.Close()
	e.browser = nil
	return err
}

// StoryURL returns the iframe docs URL for a story id.
func (e *RodExtractor) StoryURL(storyID string) string {
	return fmt.Sprintf("%s/iframe.html?viewMode=docs&id=%s", e.baseURL, url.QueryEscape(storyID))
}

// Extract renders the story's docs page and returns its content. Errors are
// recoverable: the caller may skip the story and keep the run alive.
func (e *RodExtractor) Extract(ctx context.Context, storyID string) (*Content, error) {
	if err := e.Start(ctx); err != nil {
		return nil, err
	}

	e.mu.Lock()
	browser := e.browser
	e.mu.Unlock()
	if browser == nil {
		return nil, errors.New("browser not connected")
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: e.StoryURL(storyID)})
	if err != nil {
		return nil, fmt.Errorf("open story page %s: %w", storyID, err)
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(e.cfg.NavigationTimeout())

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             e.cfg.ViewportWidth,
		Height:            e.cfg.ViewportHeight,
		DeviceScaleFactor: 1.0,
		Mobile:            false,
	}).Call(page); err != nil {
		e.logger.Warn("set viewport failed", zap.String("story", storyID), zap.Error(err))
	}

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("load story page %s: %w", storyID, err)
	}

	e.revealHiddenCode(page, storyID)

	content := &Content{}
	e.scrapeCodeBlocks(page, storyID, content)
	e.scrapeTables(page, storyID, content)
	return content, nil
}

// revealHiddenCode clicks every "Show code" toggle so the source blocks are
// present in the DOM before scraping.
func (e *RodExtractor) revealHiddenCode(page *rod.Page, storyID string) {
	toggles, err := page.Elements(codeToggleSelector)
	if err != nil {
		return
	}
	for _, toggle := range toggles {
		if err := toggle.Click(proto.InputMouseButtonLeft, 1); err != nil {
			e.logger.Debug("code toggle click failed", zap.String("story", storyID), zap.Error(err))
		}
	}
	if len(toggles) > 0 {
		// Give the docs renderer a beat to mount the revealed source blocks.
		_ = page.WaitStable(300 * time.Millisecond)
	}
}

func (e *RodExtractor) scrapeCodeBlocks(page *rod.Page, storyID string, content *Content) {
	els, err := page.Elements(codeBlockSelector)
	if err != nil {
		e.logger.Debug("code block query failed", zap.String("story", storyID), zap.Error(err))
		return
	}
	for _, el := range els {
		text, err := el.Text()
		if err != nil {
			continue
		}
		code := NormalizeCode(text)
		if code == "" {
			continue
		}
		lang := languageFromClass(el)
		if lang == "" {
			lang = DetectLanguage(code)
		}
		content.CodeBlocks = append(content.CodeBlocks, CodeBlock{Language: lang, Code: code})
	}
}

func (e *RodExtractor) scrapeTables(page *rod.Page, storyID string, content *Content) {
	tables, err := page.Elements(argsTableSelector)
	if err != nil {
		e.logger.Debug("args table query failed", zap.String("story", storyID), zap.Error(err))
		return
	}
	for _, tbl := range tables {
		table := Table{}

		headerCells, err := tbl.Elements("thead th")
		if err == nil {
			for _, cell := range headerCells {
				text, err := cell.Text()
				if err != nil {
					text = ""
				}
				table.Headers = append(table.Headers, normalizeCell(text))
			}
		}

		rows, err := tbl.Elements("tbody tr")
		if err != nil {
			continue
		}
		for _, row := range rows {
			cells, err := row.Elements("th, td")
			if err != nil {
				continue
			}
			values := make([]string, 0, len(cells))
			for _, cell := range cells {
				text, err := cell.Text()
				if err != nil {
					text = ""
				}
				values = append(values, normalizeCell(text))
			}
			table.Rows = append(table.Rows, values)
		}

		content.Tables = append(content.Tables, table)
	}
}

// languageFromClass pulls a "language-xxx" class off the code element when
// the syntax highlighter left one behind.
func languageFromClass(el *rod.Element) string {
	class, err := el.Attribute("class")
	if err != nil || class == nil {
		return ""
	}
	for _, c := range strings.Fields(*class) {
		if lang, ok := strings.CutPrefix(c, "language-"); ok && lang != "" {
			return lang
		}
	}
	return ""
}

// normalizeCell collapses all interior whitespace (including newlines) into
// single spaces; emitted cells must be single-line text.
func normalizeCell(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
