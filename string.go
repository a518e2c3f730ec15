package jtok

import "github.com/jtok-go/jtok/internal/jtokhex"

// parseString recognizes a quoted JSON string starting at p.pos (which
// must point at the opening '"'). Escape sequences are validated but
// never expanded - Start/End still bound the raw encoded text, exactly as
// it appears in the input.
func (p *Parser) parseString() Status {
	json := p.json
	quoteAt := p.pos
	p.pos++ // skip opening quote
	start := p.pos

	for p.pos < len(json) {
		c := json[p.pos]

		if c == '"' {
			idx, status := p.allocToken()
			if status != StatusOK {
				p.pos = quoteAt
				return status
			}
			p.tokens[idx].Type = String
			p.tokens[idx].Start = start
			p.tokens[idx].End = p.pos
			p.tokens[idx].Parent = p.toksuper
			p.pos++ // skip closing quote
			return StatusOK
		}

		if c == '\\' {
			if p.pos+1 >= len(json) {
				p.pos = quoteAt
				return StatusPartialToken
			}
			switch json[p.pos+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				p.pos += 2
				continue
			case 'u':
				if p.pos+6 > len(json) {
					p.pos = quoteAt
					return StatusPartialToken
				}
				if !jtokhex.ValidEscape(json[p.pos+2 : p.pos+6]) {
					p.pos = quoteAt
					return StatusInval
				}
				p.pos += 6
				continue
			default:
				p.pos = quoteAt
				return StatusInval
			}
		}

		if c < 0x20 {
			p.pos = quoteAt
			return StatusInval
		}

		p.pos++
	}

	p.pos = quoteAt
	return StatusPartialToken
}
