package main

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"

	template "fbnoi.com/minitemplate"
)

type CLI struct {
	LogLevel  string `default:"warn" enum:"debug,info,warn,error" help:"Set log level."  name:"log-level"`
	LogFormat string `default:"text" enum:"text,json"             help:"Set log format." name:"log-format"`

	Render renderCmd `cmd:"" default:"withargs" help:"Render a template."`
	Tokens tokensCmd `cmd:""                    help:"Print the token stream of a template."`
}

// runEnv carries the process streams into command Run methods.
type runEnv struct {
	stdin  io.Reader
	stdout io.Writer
	logger *slog.Logger
}

type TemplateSource struct {
	Template string `arg:""    help:"Template name, looked up under the config TplDir with ExtName appended when it has no extension; stdin when neither it nor --inline is given." optional:""`
	Inline   string `help:"Template text given on the command line." short:"i"`
	Config   string `help:"YAML engine config."                       short:"c" type:"existingfile"`
}

func (s *TemplateSource) engine(env *runEnv) (*template.Engine, error) {
	config := template.DefaultConfig()
	if s.Config != "" {
		var err error
		if config, err = template.LoadConfig(s.Config); err != nil {
			return nil, err
		}
	}

	return template.NewEngine(
		template.WithConfig(config),
		template.WithLogger(env.logger),
	), nil
}

// text returns the template body from --inline, the named template file or
// stdin, in that order.
func (s *TemplateSource) text(env *runEnv, engine *template.Engine) (string, error) {
	switch {
	case s.Inline != "":
		return s.Inline, nil
	case s.Template != "":
		return engine.ReadFile(s.Template)
	}
	bs, err := io.ReadAll(env.stdin)
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}

	return string(bs), nil
}

type renderCmd struct {
	TemplateSource `embed:""`

	Data   []string `help:"Params file (.json, .yaml, .yml, .toml); repeatable, later files win." sep:"none" short:"d" type:"existingfile"`
	Set    []string `help:"NAME=VALUE param; repeatable, wins over --data."                       sep:"none" short:"s"`
	Output string   `help:"Output file, written only once the template parses; stdout when empty." short:"o" type:"path"`
}

func (c *renderCmd) Run(env *runEnv) (err error) {
	engine, err := c.engine(env)
	if err != nil {
		return err
	}

	ps, err := c.params()
	if err != nil {
		return err
	}
	env.logger.Debug("params loaded", slog.Int("count", len(ps)))

	body, err := c.text(env, engine)
	if err != nil {
		return err
	}
	doc, err := engine.Compile(body)
	if err != nil {
		if c.Template != "" {
			return errors.Wrapf(err, "template %s", c.Template)
		}

		return err
	}

	if c.Output == "" {
		return doc.ExecuteTo(env.stdout, ps)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return errors.Wrap(err, "opening output")
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.Wrap(cerr, "closing output")
		}
	}()

	return doc.ExecuteTo(f, ps)
}

func (c *renderCmd) params() (template.Params, error) {
	ps := template.Params{}
	for _, path := range c.Data {
		data, err := template.LoadParams(path)
		if err != nil {
			return nil, err
		}
		ps = ps.Merge(data)
	}
	set, err := template.ParseAssignments(c.Set)
	if err != nil {
		return nil, err
	}

	return ps.Merge(set), nil
}

type tokensCmd struct {
	TemplateSource `embed:""`
}

func (c *tokensCmd) Run(env *runEnv) error {
	engine, err := c.engine(env)
	if err != nil {
		return err
	}
	body, err := c.text(env, engine)
	if err != nil {
		return err
	}

	sb := &strings.Builder{}
	for _, tok := range template.Tokenize(body).Tokens() {
		sb.WriteString(strconv.Itoa(tok.Line()))
		sb.WriteByte('\t')
		sb.WriteString(tok.String())
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(env.stdout, sb.String())

	return err
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("minitemplate"),
		kong.Description("Substitute {{name}} placeholders with params."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return ktx.Run(&runEnv{
		stdin:  stdin,
		stdout: stdout,
		logger: newLogger(stderr, cli.LogLevel, cli.LogFormat),
	})
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
