// Package exporter drives a full export run: fetch the manifest, extract
// each story's docs page, and assemble the Markdown document in manifest
// order.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"os"

	"storydoc/internal/extract"
	"storydoc/internal/render"
	"storydoc/internal/story"
	"storydoc/internal/summarize"

	"go.uber.org/zap"
)

// StoryLister fetches the ordered story manifest.
type StoryLister interface {
	FetchStories(ctx context.Context) ([]story.Story, error)
}

// ContentCache persists extracted content between runs. Implemented by
// cache.Store; nil disables caching.
type ContentCache interface {
	Get(ctx context.Context, source, storyID string) (*extract.Content, bool, error)
	Put(ctx context.Context, source, storyID string, content *extract.Content) error
}

// Exporter wires the manifest client, the page extractor and the renderer
// together. Manifest and Extractor are required; Cache, Summarizer, Logger
// and Progress are optional.
type Exporter struct {
	Source     string
	Manifest   StoryLister
	Extractor  extract.PageExtractor
	Cache      ContentCache
	Summarizer summarize.Summarizer
	Logger     *zap.Logger
	Progress   func(format string, args ...any)
}

// Run generates the document text. Stories are processed strictly in
// manifest order with a single heading cursor; a story whose extraction
// fails still gets its headings, so the document reflects the full
// hierarchy, and the run never aborts for one bad story.
func (e *Exporter) Run(ctx context.Context) (string, error) {
	stories, err := e.Manifest.FetchStories(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch manifest: %w", err)
	}
	if len(stories) == 0 {
		return "", errors.New("manifest contains no stories")
	}

	builder := render.NewDocumentBuilder(e.Source)
	e.addOverview(ctx, builder, stories)

	var cursor render.Cursor
	for i := range stories {
		s := &stories[i]
		e.progressf("📖 [%d/%d] %s", i+1, len(stories), storyLabel(s))

		// The cursor advances once per story no matter how extraction
		// goes; skipped stories keep the hierarchy intact.
		builder.AddHeadings(cursor.Emit(s))

		content, err := e.contentFor(ctx, s)
		if err != nil {
			e.logger().Warn("story extraction failed, emitting heading only",
				zap.String("story", s.ID), zap.Error(err))
			continue
		}
		builder.AddContent(render.FormatContent(len(s.Path())+1, content))
	}

	return builder.String(), nil
}

// Export runs the pipeline and writes the document to outputPath.
func (e *Exporter) Export(ctx context.Context, outputPath string) error {
	doc, err := e.Run(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

func (e *Exporter) addOverview(ctx context.Context, builder *render.DocumentBuilder, stories []story.Story) {
	if e.Summarizer == nil {
		return
	}
	overview, err := e.Summarizer.Overview(ctx, stories)
	if err != nil {
		e.logger().Warn("overview generation failed", zap.Error(err))
		return
	}
	builder.AddOverview(overview)
}

func (e *Exporter) contentFor(ctx context.Context, s *story.Story) (*extract.Content, error) {
	if e.Cache != nil {
		content, ok, err := e.Cache.Get(ctx, e.Source, s.ID)
		if err != nil {
			e.logger().Warn("cache read failed", zap.String("story", s.ID), zap.Error(err))
		} else if ok {
			return content, nil
		}
	}

	content, err := e.Extractor.Extract(ctx, s.ID)
	if err != nil {
		return nil, err
	}

	if e.Cache != nil {
		if err := e.Cache.Put(ctx, e.Source, s.ID, content); err != nil {
			e.logger().Warn("cache write failed", zap.String("story", s.ID), zap.Error(err))
		}
	}
	return content, nil
}

func (e *Exporter) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

func (e *Exporter) progressf(format string, args ...any) {
	if e.Progress != nil {
		e.Progress(format, args...)
	}
}

func storyLabel(s *story.Story) string {
	if s.Title == "" {
		return s.DisplayName()
	}
	return s.Title + "/" + s.DisplayName()
}
