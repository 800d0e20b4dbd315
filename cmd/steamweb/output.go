package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/formatters"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
)

var (
	errResponseJSON     = errors.New("failed to encode result")
	errResponseTokenize = errors.New("failed to tokenize result")
	errResponseFormat   = errors.New("failed to format result")
)

// printer writes results as indented JSON, highlighted for terminals unless
// colour is off.
type printer struct {
	out       io.Writer
	color     bool
	style     *chroma.Style
	formatter chroma.Formatter
	lexer     chroma.Lexer
}

func newPrinter(out io.Writer, color bool) *printer {
	newStyle := styles.Get("monokai")
	if newStyle == nil {
		newStyle = styles.Fallback
	}

	return &printer{
		out:       out,
		color:     color,
		style:     newStyle,
		formatter: formatters.Get("terminal256"),
		lexer:     lexers.Get("json"),
	}
}

func (p *printer) Print(value any) error {
	body, errJSON := json.MarshalIndent(value, "", "  ")
	if errJSON != nil {
		return errors.Join(errJSON, errResponseJSON)
	}

	if !p.color {
		_, errWrite := fmt.Fprintln(p.out, string(body))
		return errWrite
	}

	iterator, errTokenize := p.lexer.Tokenise(&chroma.TokeniseOptions{State: "root", EnsureLF: true}, string(body))
	if errTokenize != nil {
		return errors.Join(errTokenize, errResponseTokenize)
	}

	if errFormat := p.formatter.Format(p.out, p.style, iterator); errFormat != nil {
		return errors.Join(errFormat, errResponseFormat)
	}

	return nil
}
