package msg

import (
	"strconv"
)

// Message is a parsed template: an ordered sequence of elements rendered in
// order. Case bodies of plural and select expressions are themselves
// Messages.
//
// A Message is never modified after parsing and may be formatted
// concurrently by any number of goroutines.
type Message struct {
	Elements []Element
}

// Element is one of [Text], [Parameter], [Plural], [Select], or [Number].
type Element interface {
	element()
}

// Text is literal template text emitted verbatim.
type Text struct {
	Value string
}

// Parameter is a bare {name} reference.
type Parameter struct {
	Name string
}

// Plural chooses a case body by the integer value of a parameter.
type Plural struct {
	Parameter string
	Cases     []PluralCase
}

// PluralCase is one selector{body} branch of a [Plural].
type PluralCase struct {
	Selector PluralSelector
	Message  *Message
}

// Select chooses a case body by the string value of a parameter.
type Select struct {
	Parameter string
	Cases     []SelectCase
}

// SelectCase is one selector{body} branch of a [Select].
type SelectCase struct {
	Selector string
	Message  *Message
}

// Number renders a numeric parameter through a [NumberFormatter].
type Number struct {
	Parameter string
	Format    NumberFormat
}

func (Text) element()      {}
func (Parameter) element() {}
func (Plural) element()    {}
func (Select) element()    {}
func (Number) element()    {}

// Category is a plural category keyword, or [Exact] for a literal count.
type Category int

const (
	Zero  Category = iota // zero
	One                   // one
	Two                   // two
	Few                   // few
	Many                  // many
	Other                 // other
	Exact                 // exact
)

var categoryName = [...]string{
	Zero:  "zero",
	One:   "one",
	Two:   "two",
	Few:   "few",
	Many:  "many",
	Other: "other",
	Exact: "exact",
}

// String returns the template keyword of c.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryName) {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}

	return categoryName[c]
}

// PluralSelector selects a [PluralCase] either by category or, when
// Category is [Exact], by the literal count Value.
type PluralSelector struct {
	Category Category
	Value    int64
}

// Selector returns a category selector.
func Selector(c Category) PluralSelector { return PluralSelector{Category: c} }

// ExactSelector returns a selector matching only the count n.
func ExactSelector(n int64) PluralSelector {
	return PluralSelector{Category: Exact, Value: n}
}

// ParseSelector interprets a plural selector token.
// Unknown tokens that are not base-10 integers select [Other].
func ParseSelector(s string) PluralSelector {
	for c := Zero; c <= Other; c++ {
		if s == categoryName[c] {
			return Selector(c)
		}
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ExactSelector(n)
	}

	return Selector(Other)
}

// String returns the template token of s.
func (s PluralSelector) String() string {
	if s.Category == Exact {
		return strconv.FormatInt(s.Value, 10)
	}

	return s.Category.String()
}

// NumberKind identifies how a [Number] is rendered.
type NumberKind int

const (
	KindNumber   NumberKind = iota // number
	KindInteger                    // integer
	KindPercent                    // percent
	KindCurrency                   // currency
)

var kindName = [...]string{
	KindNumber:   "number",
	KindInteger:  "integer",
	KindPercent:  "percent",
	KindCurrency: "currency",
}

// String returns the template keyword of k.
func (k NumberKind) String() string {
	if k < 0 || int(k) >= len(kindName) {
		return "NumberKind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindName[k]
}

// DefaultCurrency is the currency code of a bare "currency" number kind.
const DefaultCurrency = "USD"

// NumberFormat is the format type of a [Number] element. Currency is only
// meaningful for [KindCurrency] and is validated when formatting.
type NumberFormat struct {
	Kind     NumberKind
	Currency string
}

// Position identifies a location in template source.
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, in runes
}

// String returns "line:column".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Parameters returns the distinct parameter names referenced anywhere in m,
// in order of first appearance.
func (m *Message) Parameters() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)

	var walk func(*Message)

	add := func(name string) {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	walk = func(m *Message) {
		if m == nil {
			return
		}

		for _, el := range m.Elements {
			switch el := el.(type) {
			case Parameter:
				add(el.Name)

			case Number:
				add(el.Parameter)

			case Plural:
				add(el.Parameter)

				for _, c := range el.Cases {
					walk(c.Message)
				}

			case Select:
				add(el.Parameter)

				for _, c := range el.Cases {
					walk(c.Message)
				}

			case Text:

			default:
				// Foreign elements reference no parameters known here.
			}
		}
	}

	walk(m)

	return names
}
