package template

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/pkg/errors"
)

// Engine tokenizes, parses and executes templates. It keeps parsed
// documents in a cache keyed by template text; the cache only saves
// work and never changes what Render returns.
type Engine struct {
	config *Config
	cache  *documents // nil when caching is off
	logger *slog.Logger
}

type Option func(*Engine)

func WithConfig(config *Config) Option {
	return func(e *Engine) {
		c := *config
		e.config = &c
	}
}

func WithCache(enabled bool) Option {
	return func(e *Engine) {
		e.config.Cache = enabled
	}
}

// WithCacheSize caps the number of cached documents; 0 removes the cap.
// Templates seen after the cap is reached are parsed on every call.
func WithCacheSize(n int) Option {
	return func(e *Engine) {
		e.config.CacheSize = n
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		config: DefaultConfig(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.config.Cache {
		e.cache = newDocuments(max(e.config.CacheSize, 0))
	}

	return e
}

// Compile returns the parsed form of tpl.
func (e *Engine) Compile(tpl string) (*Document, error) {
	return e.buildSource(newSourceCode(tpl))
}

// Render substitutes every {{name}} in tpl with p[name].
func (e *Engine) Render(tpl string, p Params) (string, error) {
	doc, err := e.Compile(tpl)
	if err != nil {
		return "", err
	}

	return doc.Execute(p), nil
}

func (e *Engine) RenderTo(w io.Writer, tpl string, p Params) error {
	doc, err := e.Compile(tpl)
	if err != nil {
		return err
	}

	return doc.ExecuteTo(w, p)
}

// ReadFile returns the text of the named template. Relative names are
// looked up under the configured TplDir and ExtName is appended when name
// carries no extension of its own.
func (e *Engine) ReadFile(name string) (string, error) {
	source, err := readSourceCode(e.resolvePath(name))
	if err != nil {
		return "", err
	}

	return source.code, nil
}

// CompileFile returns the parsed form of the named template, resolved the
// same way as ReadFile.
func (e *Engine) CompileFile(name string) (*Document, error) {
	source, err := readSourceCode(e.resolvePath(name))
	if err != nil {
		return nil, err
	}
	doc, err := e.buildSource(source)
	if err != nil {
		return nil, errors.Wrapf(err, "template %s", name)
	}

	return doc, nil
}

func (e *Engine) RenderFile(name string, w io.Writer, p Params) error {
	doc, err := e.CompileFile(name)
	if err != nil {
		return err
	}

	return doc.ExecuteTo(w, p)
}

// Len reports how many documents are cached.
func (e *Engine) Len() int {
	if e.cache == nil {
		return 0
	}

	return e.cache.len()
}

// Reset drops every cached document.
func (e *Engine) Reset() {
	if e.cache != nil {
		e.cache.clear()
	}
}

func (e *Engine) resolvePath(name string) string {
	if filepath.Ext(name) == "" {
		name += e.config.ExtName
	}
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}

	return filepath.Join(e.config.TplDir, name)
}

func (e *Engine) buildSource(source *sourceCode) (*Document, error) {
	if e.cache == nil {
		return e.parse(source)
	}

	doc, hit, err := e.cache.load(source, e.parse)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("template cache",
		slog.String("identity", source.identity),
		slog.Bool("hit", hit),
	)

	return doc, nil
}

func (e *Engine) parse(source *sourceCode) (*Document, error) {
	doc, err := Parse(tokenize(source))
	if err != nil {
		e.logger.Debug("template rejected",
			slog.String("identity", source.identity),
			slog.Any("error", err),
		)

		return nil, err
	}

	return doc, nil
}
