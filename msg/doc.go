// Package msg parses and formats localized message templates.
//
// # Syntax
//
// A template is literal text mixed with brace constructs:
//
//	Hello {name}!
//	You have {count, plural, 0{no items} one{1 item} other{# items}}.
//	{gender, select, male{He} female{She} other{They}} replied.
//	Total: {price, number, currency/EUR}
//
// Informal EBNF:
//
//	message   → element*
//	element   → number | select | plural | parameter | text
//	parameter → '{' ws* name ws* '}'
//	plural    → '{' ws* name ws* ',' ws* "plural" ws* ',' (ws* selector ws* body)+ ws* '}'
//	select    → '{' ws* name ws* ',' ws* "select" ws* ',' (ws* name ws* body)+ ws* '}'
//	number    → '{' ws* name ws* ',' ws* "number" (ws* ',' ws* kind)? ws* '}'
//	kind      → "integer" | "percent" | "currency" ('/' code)? | ε
//	body      → '{' (number | select | plural | parameter | text)* '}'
//	selector  → "zero" | "one" | "two" | "few" | "many" | "other" | digits
//	name      → [A-Za-z0-9_]+
//
// Alternatives are tried in the order listed. Top-level text runs to the next
// '{'; text inside a case body also stops at '}'. There is no escape for
// literal braces. A plural selector that is neither a category keyword nor an
// integer is treated as "other". Exact selectors are bare integers.
//
// # Formatting
//
// [Message.Format] evaluates a parsed template against [Parameters] and a
// [language.Tag]. Plural expressions pick the case whose exact selector
// equals the count, else the case matching the category chosen by the
// [PluralResolver], else the first "other" case, and replace every '#' in
// the rendered case with the count. Select expressions match the string
// value exactly, falling back to "other". Number expressions delegate to a
// [NumberFormatter].
//
// Parsed messages are immutable; [ParseString] caches them process-wide.
//
// [language.Tag]: https://pkg.go.dev/golang.org/x/text/language#Tag
package msg
