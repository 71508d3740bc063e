// Package build turns the site source (content, layouts, data, static) into a
// directory of static HTML, one index.html per route.
package build

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Dulitha99/Research-Website/internal/components"
	"github.com/Dulitha99/Research-Website/internal/fixtures"
	"github.com/Dulitha99/Research-Website/internal/metrics"
	"github.com/Dulitha99/Research-Website/internal/model"
)

const (
	conventionalContentDir  = "content"
	conventionalLayoutsDir  = "layouts"
	conventionalPartialsDir = "layouts/partials"
	conventionalStaticDir   = "static"
	conventionalBaseLayout  = "base.html" // executed for every page
	defaultSingleLayout     = "single.html"
	notFoundLayout          = "404.html"
)

// ContactSettings is passed to the contact page so the client script uses the
// same timings as the server.
type ContactSettings struct {
	Endpoint   string
	SendDelay  time.Duration
	ResetAfter time.Duration
}

type Options struct {
	Source    fs.FS
	OutputDir string
	BaseURL   string
	SiteTitle string
	Contact   ContactSettings
	Logger    *zap.Logger
}

type Result struct {
	Site     *model.SiteData
	Pages    []string // output paths relative to OutputDir
	Assets   int
	Duration time.Duration
}

// PageView is the data every layout executes with.
type PageView struct {
	Site      *model.SiteData
	Item      *model.ContentItem
	Nav       []components.NavItem
	BaseURL   string
	SiteTitle string
	Contact   ContactSettings
	Year      int
}

type Builder struct {
	opts     Options
	log      *zap.Logger
	markdown goldmark.Markdown
}

func New(opts Options) *Builder {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Contact.Endpoint == "" {
		opts.Contact.Endpoint = "/api/contact"
	}
	return &Builder{
		opts: opts,
		log:  opts.Logger,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithHardWraps(),
			),
		),
	}
}

// Run performs a full build. The output directory is removed and recreated.
func (b *Builder) Run() (res *Result, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordBuild(time.Since(start), err)
	}()

	src := b.opts.Source
	outputDir := b.opts.OutputDir
	if src == nil {
		return nil, errors.New("no site source configured")
	}
	if outputDir == "" {
		return nil, errors.New("no output directory configured")
	}

	b.log.Info("Starting site build", zap.String("outputDir", outputDir), zap.String("baseURL", b.opts.BaseURL))

	if err := requireDir(src, conventionalContentDir); err != nil {
		return nil, err
	}
	if err := requireDir(src, conventionalLayoutsDir); err != nil {
		return nil, err
	}

	site := &model.SiteData{}
	if err := fixtures.Load(src, site); err != nil {
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}
	if site.Meta.Title == "" {
		site.Meta.Title = b.opts.SiteTitle
	}
	b.log.Debug("Fixtures loaded",
		zap.Int("team", len(site.Team)),
		zap.Int("documents", len(site.Documents)),
		zap.Int("milestones", len(site.Milestones)),
		zap.Int("presentations", len(site.Presentations)))

	if err := os.RemoveAll(outputDir); err != nil {
		return nil, fmt.Errorf("failed to remove output directory '%s': %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}

	res = &Result{Site: site}
	if _, statErr := fs.Stat(src, conventionalStaticDir); statErr == nil {
		n, err := copyDirContents(src, conventionalStaticDir, outputDir)
		if err != nil {
			return nil, fmt.Errorf("failed to copy static assets: %w", err)
		}
		res.Assets = n
		b.log.Debug("Static assets copied", zap.Int("files", n))
	} else {
		b.log.Debug("Static assets directory not found, skipping copy", zap.String("dir", conventionalStaticDir))
	}

	renderer, err := components.NewRenderer(b.assetExists)
	if err != nil {
		return nil, err
	}
	layouts, err := parseLayouts(src, renderer.Funcs())
	if err != nil {
		return nil, err
	}
	b.log.Debug("Layouts parsed", zap.Int("count", len(layouts)))

	items, err := b.collectContent(src)
	if err != nil {
		return nil, fmt.Errorf("error during content collection walk: %w", err)
	}
	site.ContentItems = items
	site.ContentByType = make(map[string][]*model.ContentItem)
	for _, item := range items {
		site.ContentByType[item.Type] = append(site.ContentByType[item.Type], item)
	}
	b.log.Info("Content collected", zap.Int("items", len(items)))

	for _, item := range items {
		layoutToExecute := b.chooseLayout(layouts, item)
		if layoutToExecute == "" {
			return nil, fmt.Errorf("neither layout '%s' nor conventional base layout '%s' could be found for item '%s'", item.Layout, conventionalBaseLayout, item.Title)
		}

		outputPath := filepath.Join(outputDir, filepath.FromSlash(item.Permalink), "index.html")
		if err := b.renderPage(layouts[layoutToExecute], outputPath, b.view(site, item)); err != nil {
			return nil, fmt.Errorf("failed to render '%s' with layout '%s': %w", item.Title, layoutToExecute, err)
		}
		metrics.RecordPage(layoutToExecute)
		rel, _ := filepath.Rel(outputDir, outputPath)
		res.Pages = append(res.Pages, filepath.ToSlash(rel))
		b.log.Debug("Page generated", zap.String("route", item.Route), zap.String("layout", layoutToExecute))
	}

	if tpl, ok := layouts[notFoundLayout]; ok {
		item := &model.ContentItem{
			Title: "Page Not Found",
			Type:  "page",
			Hero:  model.Hero{Title: "Page Not Found", Description: "The page you are looking for does not exist."},
		}
		if err := b.renderPage(tpl, filepath.Join(outputDir, notFoundLayout), b.view(site, item)); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", notFoundLayout, err)
		}
		res.Pages = append(res.Pages, notFoundLayout)
	}

	res.Duration = time.Since(start)
	b.log.Info("Site build completed",
		zap.Int("pages", len(res.Pages)),
		zap.Int("assets", res.Assets),
		zap.Duration("duration", res.Duration))
	return res, nil
}

func (b *Builder) view(site *model.SiteData, item *model.ContentItem) PageView {
	title := site.Meta.Title
	if title == "" {
		title = b.opts.SiteTitle
	}
	return PageView{
		Site:      site,
		Item:      item,
		Nav:       components.Nav(item.Route),
		BaseURL:   strings.TrimRight(b.opts.BaseURL, "/"),
		SiteTitle: title,
		Contact:   b.opts.Contact,
		Year:      time.Now().Year(),
	}
}

// chooseLayout prefers the frontmatter layout, then single.html, then base.html.
func (b *Builder) chooseLayout(layouts map[string]*template.Template, item *model.ContentItem) string {
	if item.Layout != "" {
		if _, ok := layouts[item.Layout]; ok {
			return item.Layout
		}
		b.log.Warn("Frontmatter layout not found", zap.String("layout", item.Layout), zap.String("item", item.Title))
	}
	if _, ok := layouts[defaultSingleLayout]; ok {
		return defaultSingleLayout
	}
	if _, ok := layouts[conventionalBaseLayout]; ok {
		return conventionalBaseLayout
	}
	return ""
}

// renderPage executes into memory first so a failing template never leaves a
// half-written page behind.
func (b *Builder) renderPage(tpl *template.Template, outputPath string, data PageView) error {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, conventionalBaseLayout, data); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", filepath.Dir(outputPath), err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", outputPath, err)
	}
	return nil
}

func (b *Builder) assetExists(ref string) bool {
	name := path.Join(conventionalStaticDir, strings.TrimPrefix(path.Clean("/"+ref), "/"))
	info, err := fs.Stat(b.opts.Source, name)
	return err == nil && !info.IsDir()
}

// parseLayouts parses base.html with the partials once, then clones that set for
// every other layout so each page's "main" block stays isolated.
func parseLayouts(src fs.FS, funcs template.FuncMap) (map[string]*template.Template, error) {
	basePath := path.Join(conventionalLayoutsDir, conventionalBaseLayout)
	if _, err := fs.Stat(src, basePath); err != nil {
		return nil, fmt.Errorf("%s not found directly in layouts directory '%s'", conventionalBaseLayout, conventionalLayoutsDir)
	}

	patterns := []string{basePath}
	if partials, _ := fs.Glob(src, path.Join(conventionalPartialsDir, "*.html")); len(partials) > 0 {
		patterns = append(patterns, partials...)
	}
	base, err := template.New(conventionalBaseLayout).Funcs(funcs).ParseFS(src, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base.html and partials: %w", err)
	}

	pages, err := fs.Glob(src, path.Join(conventionalLayoutsDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to find layout files in '%s': %w", conventionalLayoutsDir, err)
	}

	layouts := map[string]*template.Template{conventionalBaseLayout: base}
	for _, p := range pages {
		name := path.Base(p)
		if name == conventionalBaseLayout {
			continue
		}
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone base layout for '%s': %w", name, err)
		}
		if _, err := clone.ParseFS(src, p); err != nil {
			return nil, fmt.Errorf("failed to parse layout '%s': %w", name, err)
		}
		layouts[name] = clone
	}
	return layouts, nil
}

func (b *Builder) collectContent(src fs.FS) ([]*model.ContentItem, error) {
	var items []*model.ContentItem
	titleCaser := cases.Title(language.English)

	err := fs.WalkDir(src, conventionalContentDir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", p, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		fileBytes, err := fs.ReadFile(src, p)
		if err != nil {
			return fmt.Errorf("failed to read file '%s': %w", p, err)
		}

		fmData := map[string]interface{}{}
		body, err := frontmatter.Parse(bytes.NewReader(fileBytes), &fmData)
		if err != nil {
			b.log.Warn("Could not parse frontmatter, treating as pure markdown", zap.String("path", p), zap.Error(err))
			body = fileBytes
			fmData = map[string]interface{}{}
		}

		var htmlBuffer bytes.Buffer
		if err := b.markdown.Convert(body, &htmlBuffer); err != nil {
			return fmt.Errorf("failed to convert markdown to HTML for file '%s': %w", p, err)
		}

		relPath := strings.TrimPrefix(p, conventionalContentDir+"/")
		baseName := strings.TrimSuffix(path.Base(relPath), path.Ext(relPath))

		title := stringParam(fmData, "title")
		if title == "" {
			title = titleCaser.String(strings.NewReplacer("-", " ", "_", " ").Replace(baseName))
		}

		itemType := "page"
		if dir := path.Dir(relPath); dir != "." {
			itemType = strings.Split(dir, "/")[0]
		}
		if t := stringParam(fmData, "type"); t != "" {
			itemType = t
		}

		item := &model.ContentItem{
			Title:       title,
			Date:        b.dateParam(fmData, p),
			Type:        itemType,
			SourcePath:  p,
			Permalink:   permalinkFor(relPath),
			ContentHTML: template.HTML(htmlBuffer.String()),
			Frontmatter: fmData,
			Summary:     stringParam(fmData, "summary"),
			Layout:      stringParam(fmData, "layout"),
		}
		if route := stringParam(fmData, "route"); route != "" {
			item.Permalink = permalinkFor(strings.Trim(route, "/") + "/index.md")
		}
		item.Route = components.NormalizeRoute(item.Permalink)
		item.Hero = model.Hero{
			Title:       firstNonEmpty(stringParam(fmData, "heroTitle"), title),
			Subtitle:    stringParam(fmData, "subtitle"),
			Description: firstNonEmpty(stringParam(fmData, "description"), item.Summary),
			ShowButtons: boolParam(fmData, "showButtons"),
		}

		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Newest first; undated items keep their walk order at the end.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date.IsZero() {
			return false
		}
		if items[j].Date.IsZero() {
			return true
		}
		return items[i].Date.After(items[j].Date)
	})

	seen := map[string]string{}
	for _, item := range items {
		if prev, dup := seen[item.Permalink]; dup {
			return nil, fmt.Errorf("'%s' and '%s' both publish to %s", prev, item.SourcePath, item.Permalink)
		}
		seen[item.Permalink] = item.SourcePath
	}
	return items, nil
}

// permalinkFor maps "domain.md" to "/domain/", "team/alice.md" to "/team/alice/"
// and any "index.md" to its directory.
func permalinkFor(relPath string) string {
	trimmed := strings.TrimSuffix(relPath, path.Ext(relPath))
	if path.Base(trimmed) == "index" || path.Base(trimmed) == "_index" {
		trimmed = path.Dir(trimmed)
	}
	link := path.Clean("/" + trimmed)
	if !strings.HasSuffix(link, "/") {
		link += "/"
	}
	return link
}

func (b *Builder) dateParam(fm map[string]interface{}, p string) time.Time {
	switch v := fm["date"].(type) {
	case time.Time:
		return v
	case string:
		if t, ok := components.ParseDate(v); ok {
			return t
		}
		b.log.Warn("Could not parse date, use YYYY-MM-DD or RFC3339", zap.String("date", v), zap.String("path", p))
	}
	return time.Time{}
}

func stringParam(fm map[string]interface{}, key string) string {
	if s, ok := fm[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func boolParam(fm map[string]interface{}, key string) bool {
	b, _ := fm[key].(bool)
	return b
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func requireDir(src fs.FS, dir string) error {
	info, err := fs.Stat(src, dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("conventional source directory '%s' not found in site source", dir)
	}
	return nil
}
