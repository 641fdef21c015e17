package msg

import (
	"strconv"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralResolver maps an integer count to the plural category used to match
// category selectors.
type PluralResolver interface {
	Category(locale language.Tag, n int64) Category
}

// FixedRule is the locale-independent default rule:
// 0 is [Zero], 1 is [One], 2 is [Two], anything else is [Other].
type FixedRule struct{}

// Category implements [PluralResolver].
func (FixedRule) Category(_ language.Tag, n int64) Category {
	switch n {
	case 0:
		return Zero
	case 1:
		return One
	case 2:
		return Two
	default:
		return Other
	}
}

// CLDRRule resolves categories with the CLDR cardinal plural rules of the
// locale.
type CLDRRule struct{}

// Category implements [PluralResolver].
func (CLDRRule) Category(locale language.Tag, n int64) Category {
	u := uint64(n)
	if n < 0 {
		u = -u
	}

	// MatchDigits takes digit values, not ASCII.
	digits := strconv.AppendUint(nil, u, 10)
	for i := range digits {
		digits[i] -= '0'
	}

	return categoryOf(plural.Cardinal.MatchDigits(locale, digits, len(digits), 0))
}

var formCategory = map[plural.Form]Category{
	plural.Zero:  Zero,
	plural.One:   One,
	plural.Two:   Two,
	plural.Few:   Few,
	plural.Many:  Many,
	plural.Other: Other,
}

func categoryOf(f plural.Form) Category {
	if c, ok := formCategory[f]; ok {
		return c
	}

	return Other
}

// selectPlural returns the case body chosen for count: an exact selector
// equal to count, else the case matching the resolved category, else the
// first "other" case. It returns nil if none apply.
func selectPlural(
	p Plural,
	count int64,
	locale language.Tag,
	r PluralResolver,
) *Message {
	for _, c := range p.Cases {
		if c.Selector.Category == Exact && c.Selector.Value == count {
			return c.Message
		}
	}

	category := r.Category(locale, count)

	for _, c := range p.Cases {
		if c.Selector.Category == category {
			return c.Message
		}
	}

	for _, c := range p.Cases {
		if c.Selector.Category == Other {
			return c.Message
		}
	}

	return nil
}

// selectCase returns the body of the first case equal to value, else the
// first "other" case, else nil.
func selectCase(s Select, value string) *Message {
	for _, c := range s.Cases {
		if c.Selector == value {
			return c.Message
		}
	}

	for _, c := range s.Cases {
		if c.Selector == "other" {
			return c.Message
		}
	}

	return nil
}
