package extract

import (
	"strings"

	"go.uber.org/zap"
)

// Strategy attempts to extract one field value from a document. It returns
// the value and true on a hit, or ("", false) when the field is absent. A
// strategy must not fail: anything it cannot find is an absence.
type Strategy func(doc *Document) (string, bool)

// Chain is the ordered list of strategies for one logical field.
type Chain struct {
	// Field names the logical field, used in miss diagnostics.
	Field string
	// Strategies are tried left to right; the first hit wins.
	Strategies []Strategy
}

// Resolve runs the chain against the document. When every strategy misses,
// the previous stored value is returned unchanged and the miss is logged.
func (c Chain) Resolve(doc *Document, previous string, logger *zap.Logger) string {
	for _, strategy := range c.Strategies {
		if value, ok := strategy(doc); ok {
			return value
		}
	}
	logger.Info("extraction miss, keeping previous value",
		zap.String("field", c.Field))
	return previous
}

// XMLField extracts the text of an XML element by tag name.
func XMLField(tag string) Strategy {
	return func(doc *Document) (string, bool) {
		value, ok := doc.XMLField(tag)
		if !ok || value == "" {
			return "", false
		}
		return value, true
	}
}

// Text extracts the trimmed text of the first node matching the selector.
func Text(selector string) Strategy {
	return func(doc *Document) (string, bool) {
		html, err := doc.HTML()
		if err != nil {
			return "", false
		}
		sel := html.Find(selector).First()
		if sel.Length() == 0 {
			return "", false
		}
		value := strings.TrimSpace(sel.Text())
		if value == "" {
			return "", false
		}
		return value, true
	}
}

// Attr extracts an attribute of the first node matching the selector.
func Attr(selector, attr string) Strategy {
	return func(doc *Document) (string, bool) {
		html, err := doc.HTML()
		if err != nil {
			return "", false
		}
		value, ok := html.Find(selector).First().Attr(attr)
		if !ok || value == "" {
			return "", false
		}
		return value, true
	}
}
