package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ardnew/msgfmt/catalog"
	"github.com/ardnew/msgfmt/log"
)

// Catalog renders and lists the messages of a catalog directory.
type Catalog struct {
	Render CatalogRender `cmd:"" help:"Render a message of a catalog."`
	List   CatalogList   `cmd:"" help:"List the locales and message keys of a catalog."`
}

// Store names a catalog directory and how it is loaded.
type Store struct {
	DefaultLocale string `default:"en" help:"Locale consulted when a message is missing."`
	Concurrency   int    `default:"0"  help:"Files loaded at once (0 for one per CPU)."`

	Dir string `arg:"" help:"Catalog directory." name:"dir" type:"existingdir"`
}

func (s Store) load(ctx context.Context, opts ...catalog.Option) (*catalog.Catalog, error) {
	tag, err := parseLocale(s.DefaultLocale)
	if err != nil {
		return nil, err
	}

	return catalog.Load(ctx, os.DirFS(s.Dir), append([]catalog.Option{
		catalog.WithDefaultLocale(tag),
		catalog.WithConcurrency(s.Concurrency),
		catalog.WithLogger(log.Default()),
	}, opts...)...)
}

// CatalogRender formats one catalog message.
type CatalogRender struct {
	Bindings   Bindings   `embed:""`
	Formatting Formatting `embed:""`
	Store      Store      `embed:""`

	Locale string `default:"en" help:"Requested locale." short:"l"`

	Key string `arg:"" help:"Message key." name:"key"`
}

// Run executes the catalog render command.
func (c *CatalogRender) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	params, err := c.Bindings.parameters(ctx)
	if err != nil {
		return err
	}

	cat, err := c.Store.load(ctx, catalog.WithFormatOptions(c.Formatting.options()...))
	if err != nil {
		return err
	}

	s, err := cat.Render(ctx, c.Locale, c.Key, params)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdioFrom(ctx).Out, s)

	return err
}

// CatalogList prints the locales of a catalog with their message keys.
type CatalogList struct {
	Store Store `embed:""`

	Locale string `help:"List only the keys of this locale." short:"l"`
}

// Run executes the catalog list command.
func (c *CatalogList) Run(ctx context.Context) error {
	cat, err := c.Store.load(ctx)
	if err != nil {
		return err
	}

	out := stdioFrom(ctx).Out

	if c.Locale != "" {
		for _, key := range cat.Keys(c.Locale) {
			fmt.Fprintln(out, key)
		}

		return nil
	}

	for _, tag := range cat.Locales() {
		fmt.Fprintln(out, tag.String())

		for _, key := range cat.Keys(tag.String()) {
			fmt.Fprintln(out, "  "+key)
		}
	}

	log.DebugContext(ctx, "listed catalog", slog.String("dir", c.Store.Dir))

	return nil
}
