package render

import (
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/osteele/liquid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"

	"github.com/plainfield/notespace/pkg/types"
)

// Engine hosts the Liquid engine, the filter catalog, the markdown renderer,
// and the HTML sanitizer. Construct it once at startup and inject it into
// render call sites; the catalog is immutable after New returns, so an
// Engine is safe for concurrent use.
type Engine struct {
	liquid   *liquid.Engine
	policy   *bluemonday.Policy
	markdown goldmark.Markdown
	log      *zap.Logger
}

// New builds an engine with the full filter catalog registered. The logger
// may be nil.
func New(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}

	e := &Engine{
		liquid:   liquid.NewEngine(),
		policy:   sanitizePolicy(),
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		log:      log,
	}
	e.registerFilters()
	return e
}

// sanitizePolicy allows user-generated-content markup plus the clickable
// span contract: class styling and the data-field-* attributes the filter
// catalog emits.
func sanitizePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("span")
	p.AllowAttrs("class").Globally()
	p.AllowDataAttributes()
	return p
}

// RenderDetail renders a single-note template. The error wraps
// ErrTemplateParse or ErrTemplateRender; the method never panics.
func (e *Engine) RenderDetail(template string, ctx DetailContext) (string, error) {
	return e.render(template, ctx.bindings())
}

// RenderList renders a note-list template.
func (e *Engine) RenderList(template string, ctx ListContext) (string, error) {
	return e.render(template, ctx.bindings())
}

// Validate parses the template without rendering it, reporting syntax
// errors. Template editors call this before saving.
func (e *Engine) Validate(template string) error {
	if _, err := e.liquid.ParseString(template); err != nil {
		return fmt.Errorf("%w: %v", types.ErrTemplateParse, err)
	}
	return nil
}

func (e *Engine) render(template string, bindings liquid.Bindings) (html string, err error) {
	// Filter evaluation runs user-controlled input; a panic must not cross
	// the engine boundary.
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("template render panic", zap.Any("panic", r))
			html = ""
			err = fmt.Errorf("%w: %v", types.ErrTemplateRender, r)
		}
	}()

	tpl, err := e.liquid.ParseString(template)
	if err != nil {
		e.log.Warn("template parse failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", types.ErrTemplateParse, err)
	}

	out, err := tpl.RenderString(bindings)
	if err != nil {
		e.log.Warn("template render failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", types.ErrTemplateRender, err)
	}

	return e.policy.Sanitize(out), nil
}
