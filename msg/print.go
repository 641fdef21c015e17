package msg

import (
	"context"
	"io"
	"strconv"
	"strings"
)

// Print writes an indented tree of m to the writer.
//
//	Text "You have "
//	Plural count
//	  Case one
//	    Text "1 item"
//	  Case other
//	    Text "# items"
func (m *Message) Print(ctx context.Context, w io.Writer) error {
	return m.PrintIndent(ctx, w, 0)
}

// PrintIndent is like [Message.Print] starting at the given indent level.
func (m *Message) PrintIndent(ctx context.Context, w io.Writer, indent int) error {
	if m == nil {
		return nil
	}

	prefix := strings.Repeat("  ", indent)

	for _, el := range m.Elements {
		var line string

		switch el := el.(type) {
		case Text:
			line = "Text " + strconv.Quote(el.Value)

		case Parameter:
			line = "Parameter " + el.Name

		case Number:
			line = "Number " + el.Parameter + " " + el.Format.Kind.String()
			if el.Format.Kind == KindCurrency {
				line += " " + el.Format.Currency
			}

		case Plural:
			_, err := io.WriteString(w, prefix+"Plural "+el.Parameter+"\n")
			if err != nil {
				return err
			}

			for _, c := range el.Cases {
				err = printCase(ctx, w, indent+1, c.Selector.String(), c.Message)
				if err != nil {
					return err
				}
			}

			continue

		case Select:
			_, err := io.WriteString(w, prefix+"Select "+el.Parameter+"\n")
			if err != nil {
				return err
			}

			for _, c := range el.Cases {
				err = printCase(ctx, w, indent+1, strconv.Quote(c.Selector), c.Message)
				if err != nil {
					return err
				}
			}

			continue

		default:
			line = "Unknown " + typeName(el)
		}

		_, err := io.WriteString(w, prefix+line+"\n")
		if err != nil {
			return err
		}
	}

	return nil
}

func printCase(
	ctx context.Context,
	w io.Writer,
	indent int,
	selector string,
	body *Message,
) error {
	_, err := io.WriteString(w, strings.Repeat("  ", indent)+"Case "+selector+"\n")
	if err != nil {
		return err
	}

	return body.PrintIndent(ctx, w, indent+1)
}
