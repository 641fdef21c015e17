package msg

import (
	"context"

	"golang.org/x/text/language"
)

// Render parses template and formats it with params under locale.
//
// A rejected template returns a [*ParseError] matching [ErrParse]. A
// formatting failure is wrapped in [ErrFormat] and still matches its cause,
// such as [ErrMissingParameter] or [ErrInvalidParameterType].
func Render(
	ctx context.Context,
	template string,
	params Parameters,
	locale language.Tag,
	opts ...Option,
) (string, error) {
	m, err := ParseString(ctx, template, opts...)
	if err != nil {
		return "", err
	}

	s, err := m.Format(ctx, params, locale, opts...)
	if err != nil {
		return "", ErrFormat.Wrap(err)
	}

	return s, nil
}
