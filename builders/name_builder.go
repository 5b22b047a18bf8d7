// Package builders assembles note paths from period values and templates.
package builders

import "time"

// NameBuilder accumulates a folder template, a name template and a value,
// and turns them into a note path.
type NameBuilder[T any] interface {
	WithPath(template string) NameBuilder[T]
	WithName(template string) NameBuilder[T]
	WithValue(value T) NameBuilder[T]
	Build() (string, error)
}

// DateParser renders a date through a format template.
type DateParser interface {
	FromDate(date time.Time, template string) (string, error)
}

// DateParserFactory hands out the DateParser a builder formats with.
type DateParserFactory interface {
	GetParser() DateParser
}

// ParserFactoryFunc adapts a plain function to DateParserFactory.
type ParserFactoryFunc func() DateParser

func (f ParserFactoryFunc) GetParser() DateParser {
	return f()
}
