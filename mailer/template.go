package mailer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/lzmu/lzmubackend/dto"
)

const notProvided = "N/A"

// textEscaper escapes element text only. Quotes stay literal so names like
// O'Brien read the way they were typed.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Render renders a templ component to a string.
func Render(ctx context.Context, tpl templ.Component) (string, error) {
	var sb strings.Builder
	if err := tpl.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// QuoteEmail lays out all seven fields of a quote request as HTML.
func QuoteEmail(q dto.QuoteRequest) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<h2>New Project Inquiry</h2>\n"); err != nil {
			return err
		}
		fields := []struct{ label, value string }{
			{"Name", q.Name},
			{"Email", q.Email},
			{"Company", q.Company},
			{"Service", q.Service},
			{"Budget", q.Budget},
			{"Timeline", q.Timeline},
		}
		for _, f := range fields {
			if _, err := fmt.Fprintf(w, "<p><strong>%s:</strong> %s</p>\n", f.label, textEscaper.Replace(f.value)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "<p><strong>Message:</strong></p>\n<p>%s</p>\n", textEscaper.Replace(q.Message))
		return err
	})
}

// RenderQuoteEmail renders the quote body. Company and timeline fall back to
// N/A independently; nothing else is defaulted or rejected.
func RenderQuoteEmail(ctx context.Context, q dto.QuoteRequest) (string, error) {
	if q.Company == "" {
		q.Company = notProvided
	}
	if q.Timeline == "" {
		q.Timeline = notProvided
	}
	return Render(ctx, QuoteEmail(q))
}

func QuoteSubject(name string) string {
	return "New Quote Request from " + name
}

// NewQuoteMessage builds the outbound email for one quote request.
func NewQuoteMessage(ctx context.Context, from, to string, q dto.QuoteRequest) (Message, error) {
	html, err := RenderQuoteEmail(ctx, q)
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    from,
		To:      []string{to},
		Subject: QuoteSubject(q.Name),
		HTML:    html,
	}, nil
}
