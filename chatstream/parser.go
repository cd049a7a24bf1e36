package chatstream

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
)

const (
	dataPrefix   = "data: "
	doneSentinel = "[DONE]"
)

// Parser converts raw transport chunks into events. Chunks carry no alignment
// guarantee, so the parser buffers and splits on newlines, holding back the
// trailing incomplete fragment until the next chunk. Lines without the
// "data: " prefix (keep-alives, comments) are skipped.
type Parser struct {
	buf      strings.Builder
	finished bool

	// Logf reports unexpected payload parse errors. Defaults to log.Printf.
	Logf func(format string, args ...interface{})
}

// Feed consumes one transport chunk and returns the events completed by it,
// in arrival order. After the [DONE] sentinel all further input is discarded.
func (p *Parser) Feed(chunk []byte) []Event {
	if p.finished {
		return nil
	}

	p.buf.Write(chunk)
	data := p.buf.String()

	idx := strings.LastIndexByte(data, '\n')
	if idx < 0 {
		return nil
	}
	complete := data[:idx]
	p.buf.Reset()
	p.buf.WriteString(data[idx+1:])

	var events []Event
	for _, line := range strings.Split(complete, "\n") {
		ev, done := p.parseLine(line)
		if ev != nil {
			events = append(events, ev)
		}
		if done {
			p.finished = true
			break
		}
	}
	return events
}

// Flush processes any held-back fragment. Call it when the transport signals
// end-of-stream; a final line is valid without a trailing newline.
func (p *Parser) Flush() []Event {
	if p.finished || p.buf.Len() == 0 {
		return nil
	}
	line := p.buf.String()
	p.buf.Reset()

	ev, done := p.parseLine(line)
	if done {
		p.finished = true
	}
	if ev == nil {
		return nil
	}
	return []Event{ev}
}

// Finished reports whether the [DONE] sentinel has been seen.
func (p *Parser) Finished() bool {
	return p.finished
}

func (p *Parser) parseLine(line string) (Event, bool) {
	if !strings.HasPrefix(line, dataPrefix) {
		return nil, false
	}
	payload := strings.TrimSpace(line[len(dataPrefix):])

	if payload == doneSentinel {
		return Done{}, true
	}

	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		// Truncated JSON from a mid-chunk boundary is expected and silent;
		// anything else is logged but never fatal to the stream.
		if !isTruncatedJSON(err) {
			p.logf("Error parsing stream data: %v", err)
		}
		return nil, false
	}

	switch env.Type {
	case "intent_detected":
		return IntentDetected{Intent: env.Intent}, false
	case "auth_required":
		return AuthRequired{Message: env.Message}, false
	case "cart_update":
		return CartUpdate{AddedProducts: env.AddedProducts}, false
	case "redirect_checkout":
		return RedirectCheckout{}, false
	case "product_list":
		return ProductList{Products: env.Products}, false
	case "":
		if env.Error != "" {
			return StreamError{Message: env.Error}, false
		}
		if env.Content != "" {
			return TextDelta{Content: env.Content}, false
		}
		return nil, false
	default:
		p.logf("Unknown stream event type: %q", env.Type)
		return nil, false
	}
}

func (p *Parser) logf(format string, args ...interface{}) {
	if p.Logf != nil {
		p.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}

type envelope struct {
	Type          string         `json:"type"`
	Intent        string         `json:"intent"`
	Content       string         `json:"content"`
	Message       string         `json:"message"`
	Error         string         `json:"error"`
	AddedProducts []AddedProduct `json:"added_products"`
	Products      []AddedProduct `json:"products"`
}

func isTruncatedJSON(err error) bool {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return strings.Contains(syntaxErr.Error(), "unexpected end of JSON input")
	}
	return false
}
