package catalog

import (
	"cmp"
	"context"
	"io/fs"
	"log/slog"
	"maps"
	"slices"

	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/ardnew/msgfmt/msg"
)

// maxSimilar bounds the key suggestions attached to ErrMessageNotFound.
const maxSimilar = 3

// Catalog holds parsed templates keyed by locale and message key.
// It is immutable after [Load] and safe for concurrent use.
type Catalog struct {
	opts    options
	bundles map[language.Tag]*bundle
	tags    []language.Tag // fallback locale first when loaded
	matcher language.Matcher
}

// bundle holds the messages of one locale.
type bundle struct {
	tag      language.Tag
	messages map[string]*msg.Message
	source   map[string]string // key -> file
}

// loaded is the result of decoding and parsing one file.
type loaded struct {
	name     string
	tag      language.Tag
	messages map[string]*msg.Message
}

// Load reads every catalog file in fsys and parses its templates.
//
// Files are decoded concurrently. Any unreadable file, malformed entry,
// template syntax error or key defined twice for one locale fails the whole
// load.
func Load(ctx context.Context, fsys fs.FS, opts ...Option) (*Catalog, error) {
	o := makeOptions(opts...)

	type job struct {
		name string
		dec  decoder
		tag  language.Tag
	}

	var jobs []job

	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return ErrReadFile.Wrap(err).With(slog.String(AttrFile, name))
		}

		if d.IsDir() {
			return nil
		}

		dec, locale, ok := fileDecoder(name)
		if !ok {
			o.logger.TraceContext(ctx, "catalog file skipped", slog.String(AttrFile, name))

			return nil
		}

		tag, err := parseLocale(name, locale)
		if err != nil {
			return err
		}

		jobs = append(jobs, job{name: name, dec: dec, tag: tag})

		return nil
	})
	if err != nil {
		return nil, err
	}

	results := make([]loaded, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(o.concurrency, len(jobs))))

	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return context.Cause(gctx)
			}

			messages, err := loadFile(gctx, fsys, j.name, j.dec, o)
			if err != nil {
				return err
			}

			// Each goroutine owns results[i].
			results[i] = loaded{name: j.name, tag: j.tag, messages: messages}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c, err := merge(results, o)
	if err != nil {
		return nil, err
	}

	o.logger.DebugContext(ctx, "catalog loaded",
		slog.Int("files", len(results)),
		slog.Int("locales", len(c.tags)),
	)

	return c, nil
}

func loadFile(
	ctx context.Context,
	fsys fs.FS,
	name string,
	dec decoder,
	o options,
) (map[string]*msg.Message, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, ErrReadFile.Wrap(err).With(slog.String(AttrFile, name))
	}

	tree, err := dec(ctx, data)
	if err != nil {
		return nil, ErrDecodeFile.Wrap(err).With(slog.String(AttrFile, name))
	}

	templates := make(map[string]string)
	if err := flatten("", tree, templates); err != nil {
		return nil, msg.WrapError(err).With(slog.String(AttrFile, name))
	}

	messages := make(map[string]*msg.Message, len(templates))

	for key, template := range templates {
		m, err := msg.ParseString(ctx, template, o.format...)
		if err != nil {
			return nil, ErrInvalidEntry.Wrap(err).With(
				slog.String(AttrFile, name),
				slog.String(AttrKey, key),
			)
		}

		messages[key] = m
	}

	o.logger.TraceContext(ctx, "catalog file loaded",
		slog.String(AttrFile, name),
		slog.Int("messages", len(messages)),
	)

	return messages, nil
}

// merge combines file results in file name order, so a duplicate key always
// names the same pair of files.
func merge(results []loaded, o options) (*Catalog, error) {
	slices.SortFunc(results, func(a, b loaded) int { return cmp.Compare(a.name, b.name) })

	c := &Catalog{opts: o, bundles: make(map[language.Tag]*bundle)}

	for _, r := range results {
		b, ok := c.bundles[r.tag]
		if !ok {
			b = &bundle{
				tag:      r.tag,
				messages: make(map[string]*msg.Message),
				source:   make(map[string]string),
			}
			c.bundles[r.tag] = b
		}

		for _, key := range slices.Sorted(maps.Keys(r.messages)) {
			if prev, dup := b.source[key]; dup {
				return nil, ErrDuplicateKey.With(
					slog.String(AttrKey, key),
					slog.String(AttrLocale, r.tag.String()),
					slog.String(AttrFile, r.name),
					slog.String("previous", prev),
				)
			}

			b.messages[key] = r.messages[key]
			b.source[key] = r.name
		}
	}

	c.tags = slices.SortedFunc(maps.Keys(c.bundles), func(a, b language.Tag) int {
		switch {
		case a == o.fallback:
			return -1
		case b == o.fallback:
			return 1
		default:
			return cmp.Compare(a.String(), b.String())
		}
	})

	if len(c.tags) > 0 {
		c.matcher = language.NewMatcher(c.tags)
	}

	return c, nil
}

// Locales returns the loaded locales, the fallback locale first.
func (c *Catalog) Locales() []language.Tag {
	return slices.Clone(c.tags)
}

// Keys returns the sorted message keys defined for the loaded locale that
// best matches locale. Keys inherited through fallback are not included.
func (c *Catalog) Keys(locale string) []string {
	b := c.resolve(locale)
	if b == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(b.messages))
}

// Message returns the parsed template for key in the locale best matching
// locale, consulting parent locales and then the fallback locale. The
// returned tag is the locale the template was found in.
func (c *Catalog) Message(locale, key string) (*msg.Message, language.Tag, error) {
	chain := c.chain(locale)

	for _, b := range chain {
		if m, ok := b.messages[key]; ok {
			return m, b.tag, nil
		}
	}

	err := ErrMessageNotFound.With(
		slog.String(AttrKey, key),
		slog.String(AttrLocale, locale),
	)

	if similar := similarKeys(key, chain); len(similar) > 0 {
		err = err.With(slog.Any(AttrSimilar, similar))
	}

	return nil, language.Und, err
}

// Render formats the message key for locale with params. The message is
// formatted under the locale it was found in, so plural rules and number
// formats agree with the language of the template. A locale that is not a
// valid language tag resolves to the default locale.
func (c *Catalog) Render(
	ctx context.Context,
	locale, key string,
	params msg.Parameters,
) (string, error) {
	m, tag, err := c.Message(locale, key)
	if err != nil {
		return "", err
	}

	c.opts.logger.TraceContext(ctx, "catalog lookup",
		slog.String(AttrKey, key),
		slog.String("requested", locale),
		slog.String("resolved", tag.String()),
	)

	s, err := m.Format(ctx, params, tag, c.opts.format...)
	if err != nil {
		return "", msg.ErrFormat.Wrap(err).With(
			slog.String(AttrKey, key),
			slog.String(AttrLocale, tag.String()),
		)
	}

	return s, nil
}

// resolve returns the loaded bundle best matching locale, or the fallback
// bundle if locale is not a valid tag.
func (c *Catalog) resolve(locale string) *bundle {
	if len(c.tags) == 0 {
		return nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return c.bundles[c.tags[0]]
	}

	if b, ok := c.bundles[tag]; ok {
		return b
	}

	// Index 0 (the fallback) when nothing matches.
	_, index, _ := c.matcher.Match(tag)

	return c.bundles[c.tags[index]]
}

// chain returns the bundles consulted for locale: the best match, its
// loaded parents, then the fallback locale.
func (c *Catalog) chain(locale string) []*bundle {
	first := c.resolve(locale)
	if first == nil {
		return nil
	}

	chain := []*bundle{first}

	for t := first.tag.Parent(); t != language.Und; t = t.Parent() {
		if b, ok := c.bundles[t]; ok {
			chain = append(chain, b)
		}
	}

	if b, ok := c.bundles[c.opts.fallback]; ok && !slices.Contains(chain, b) {
		chain = append(chain, b)
	}

	return chain
}

func similarKeys(key string, chain []*bundle) []string {
	if key == "" {
		return nil
	}

	seen := make(map[string]struct{})

	var keys []string

	for _, b := range chain {
		for k := range b.messages {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
	}

	slices.Sort(keys)

	matches := fuzzy.Find(key, keys)

	similar := make([]string, 0, min(len(matches), maxSimilar))
	for _, m := range matches {
		if len(similar) == maxSimilar {
			break
		}

		similar = append(similar, m.Str)
	}

	return similar
}
