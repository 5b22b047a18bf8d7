package dateparser

import "github.com/laher/periodic/builders"

// Factory hands every builder the same Parser.
type Factory struct {
	parser *Parser
}

func NewFactory(opts Options) *Factory {
	return &Factory{parser: New(opts)}
}

func (f *Factory) GetParser() builders.DateParser {
	return f.parser
}
