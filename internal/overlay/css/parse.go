package css

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"
)

// Rule is one ruleset: a simple selector (.class or #id) and its declarations as raw strings.
type Rule struct {
	Selector string
	Props    map[string]string
}

// Stylesheet is an ordered rule list; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// Parse reads a stylesheet. Only simple .class and #id selectors are kept; at-rules and any other
// selector are skipped along with their declarations. Selector lists (".a, #b") produce one rule per entry.
func Parse(r io.Reader) (*Stylesheet, error) {
	p := tcss.NewParser(parse.NewInput(r), false)
	sheet := &Stylesheet{}
	var open []int // rule indices receiving declarations; nil inside a skipped block
	depth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case tcss.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return sheet, fmt.Errorf("css: %w", err)
			}
			return sheet, nil
		case tcss.BeginAtRuleGrammar:
			depth++
			open = nil
		case tcss.EndAtRuleGrammar:
			depth--
		case tcss.BeginRulesetGrammar:
			open = nil
			if depth > 0 {
				continue
			}
			for _, sel := range strings.Split(joinTokens(nil, p.Values()), ",") {
				sel = strings.TrimSpace(sel)
				if !simpleSelector(sel) {
					continue
				}
				open = append(open, len(sheet.Rules))
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: map[string]string{}})
			}
		case tcss.EndRulesetGrammar:
			open = nil
		case tcss.DeclarationGrammar, tcss.CustomPropertyGrammar:
			key := strings.ToLower(strings.TrimSpace(string(data)))
			val := joinTokens(nil, p.Values())
			for _, i := range open {
				sheet.Rules[i].Props[key] = val
			}
		}
	}
}

// ParseString is Parse over an in-memory stylesheet.
func ParseString(s string) (*Stylesheet, error) {
	return Parse(strings.NewReader(s))
}

func joinTokens(head []byte, toks []tcss.Token) string {
	var b strings.Builder
	b.Write(head)
	for _, t := range toks {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

func simpleSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel[1:], " .#:>+~[*")
}

// Matches reports whether the rule selects a node with the given class and id.
func (r Rule) Matches(class, id string) bool {
	switch r.Selector[0] {
	case '.':
		return class != "" && r.Selector[1:] == class
	case '#':
		return id != "" && r.Selector[1:] == id
	}
	return false
}

// Props merges the declarations of every rule matching class and id, in sheet order.
func (s *Stylesheet) Props(class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, r := range s.Rules {
		if r.Matches(class, id) {
			for k, v := range r.Props {
				merged[k] = v
			}
		}
	}
	return merged
}
