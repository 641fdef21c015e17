// Package catalog stores message templates per locale and renders them by
// key.
//
// A catalog is loaded from a file system whose files are named after the
// locale they hold, such as "en.yaml", "app.de.toml" or "errors.pt-BR.json".
// Each file maps keys to templates; nested maps are flattened with ".":
//
//	cart:
//	  items: "{count, plural, one{# item} other{# items}}"
//	greeting: "Hello, {name}!"
//
// defines the keys "cart.items" and "greeting". Every template is parsed by
// [Load], so syntax errors are reported with their file and key before any
// message is rendered.
//
// [Catalog.Render] looks a key up in the loaded locale best matching the
// requested one, then in that locale's parents ("de-CH" falls back to
// "de"), then in the default locale set with [WithDefaultLocale].
package catalog
