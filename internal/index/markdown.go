package index

import (
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"
)

// Markdown wraps the markdown package with the few constructs the
// firmware index needs: plain text, tables, and collapsible sections.
type Markdown struct {
	md     *md.Markdown
	buffer *strings.Builder
}

// NewMarkdownBuffer creates a new markdown builder with internal buffer.
func NewMarkdownBuffer() *Markdown {
	buffer := &strings.Builder{}
	return &Markdown{
		md:     md.NewMarkdown(buffer),
		buffer: buffer,
	}
}

// String returns the buffered content. Call Build first to flush
// pending elements into the buffer.
func (m *Markdown) String() string {
	return m.buffer.String()
}

// PlainText adds plain text.
func (m *Markdown) PlainText(text string) *Markdown {
	m.md.PlainText(text)
	return m
}

// PlainTextf adds formatted plain text.
func (m *Markdown) PlainTextf(format string, args ...any) *Markdown {
	m.md.PlainTextf(format, args...)
	return m
}

// LF adds a line feed.
func (m *Markdown) LF() *Markdown {
	m.md.LF()
	return m
}

// Italic adds italic text.
func (m *Markdown) Italic(text string) *Markdown {
	m.md.PlainText(md.Italic(text))
	return m
}

// Code returns text formatted as inline code.
func Code(text string) string {
	return md.Code(text)
}

// Link returns a markdown link.
func Link(text, url string) string {
	return md.Link(text, url)
}

// Table adds a markdown table.
func (m *Markdown) Table(headers []string, rows [][]string) *Markdown {
	m.md.Table(md.TableSet{
		Header: headers,
		Rows:   rows,
	})
	return m
}

// Details adds a collapsible details section (HTML in markdown).
func (m *Markdown) Details(summary, content string) *Markdown {
	html := fmt.Sprintf("<details>\n<summary>%s</summary>\n\n%s\n\n</details>", summary, content)
	m.md.PlainText(html).LF()
	return m
}

// CountText returns a formatted count, e.g. "2 versions available".
func CountText(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Build finalizes the markdown document.
func (m *Markdown) Build() error {
	return m.md.Build()
}
