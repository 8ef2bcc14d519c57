package mock

import "github.com/fwojciec/leadscout"

var _ leadscout.Parser = (*Parser)(nil)

// Parser is a mock implementation of leadscout.Parser.
type Parser struct {
	ParseFn func(html string) (*leadscout.PageContent, error)
}

func (p *Parser) Parse(html string) (*leadscout.PageContent, error) {
	return p.ParseFn(html)
}
