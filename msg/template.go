package msg

import (
	"io"
	"log/slog"
	"strings"
)

// String returns m in canonical template syntax.
func (m *Message) String() string {
	var sb strings.Builder

	_ = m.WriteTemplate(&sb)

	return sb.String()
}

// WriteTemplate writes m in canonical template syntax: one space after each
// comma, a space between cases, and no padding inside braces. Parsing the
// output of a parsed Message yields an equal Message.
func (m *Message) WriteTemplate(w io.Writer) error {
	if m == nil {
		return nil
	}

	for _, el := range m.Elements {
		var err error

		switch el := el.(type) {
		case Text:
			_, err = io.WriteString(w, el.Value)

		case Parameter:
			_, err = io.WriteString(w, "{"+el.Name+"}")

		case Number:
			_, err = io.WriteString(w, "{"+el.Parameter+", number"+numberSuffix(el.Format)+"}")

		case Plural:
			err = writeCases(w, el.Parameter, "plural", len(el.Cases), func(i int) (string, *Message) {
				return el.Cases[i].Selector.String(), el.Cases[i].Message
			})

		case Select:
			err = writeCases(w, el.Parameter, "select", len(el.Cases), func(i int) (string, *Message) {
				return el.Cases[i].Selector, el.Cases[i].Message
			})

		default:
			err = ErrUnknownElement.With(slog.String("type", typeName(el)))
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func numberSuffix(f NumberFormat) string {
	switch f.Kind {
	case KindInteger, KindPercent:
		return ", " + f.Kind.String()

	case KindCurrency:
		if f.Currency == "" {
			return ", currency"
		}

		return ", currency/" + f.Currency

	default:
		return ""
	}
}

func writeCases(
	w io.Writer,
	param, keyword string,
	n int,
	at func(int) (string, *Message),
) error {
	_, err := io.WriteString(w, "{"+param+", "+keyword+",")
	if err != nil {
		return err
	}

	for i := range n {
		selector, body := at(i)

		_, err = io.WriteString(w, " "+selector+"{")
		if err != nil {
			return err
		}

		err = body.WriteTemplate(w)
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, "}")
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "}")

	return err
}
