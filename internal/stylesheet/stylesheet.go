// Package stylesheet reads generated CSS text back into rules and declarations so callers can
// inspect and compare it.
package stylesheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is one property of a rule. Line is the zero-based line of the source text the
// declaration ends on.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
	Line     int    `json:"line"`
}

// Rule is a ruleset or a block at-rule. At-rules such as @keyframes keep their nested rules
// in Rules.
type Rule struct {
	Selector     string        `json:"selector"`
	Declarations []Declaration `json:"declarations,omitempty"`
	Rules        []Rule        `json:"rules,omitempty"`
}

// Get returns the value of property in this rule.
func (r Rule) Get(property string) (string, bool) {
	for _, d := range r.Declarations {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Sheet is a parsed stylesheet.
type Sheet struct {
	Rules []Rule `json:"rules"`
}

// Find returns the first rule, at any depth, whose selector equals selector.
func (s Sheet) Find(selector string) (Rule, bool) {
	return find(s.Rules, Canonical(selector))
}

func find(rules []Rule, selector string) (Rule, bool) {
	for _, r := range rules {
		if r.Selector == selector {
			return r, true
		}
		if nested, ok := find(r.Rules, selector); ok {
			return nested, true
		}
	}
	return Rule{}, false
}

// Parse reads CSS text. Selectors and values come back in canonical form (see Canonical).
func Parse(text string) (Sheet, error) {
	p := &reader{
		parser: css.NewParser(parse.NewInputString(text), false),
		text:   text,
	}
	rules, err := p.rules(false)
	if err != nil {
		return Sheet{}, err
	}
	return Sheet{Rules: rules}, nil
}

// Canonical collapses whitespace runs and drops whitespace after commas, which is the form
// the tokenizer reports values and selectors in.
func Canonical(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, ", ", ",")
}

type reader struct {
	parser *css.Parser
	text   string
}

func (r *reader) rules(nested bool) ([]Rule, error) {
	var rules []Rule
	for {
		gt, _, data := r.parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := r.parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse stylesheet: %w", err)
			}
			if nested {
				return nil, errors.New("parse stylesheet: unterminated block")
			}
			return rules, nil
		case css.EndAtRuleGrammar:
			if nested {
				return rules, nil
			}
		case css.BeginAtRuleGrammar:
			selector := joinTokens(data, r.parser.Values())
			children, err := r.rules(true)
			if err != nil {
				return nil, err
			}
			rules = append(rules, Rule{Selector: selector, Rules: children})
		case css.BeginRulesetGrammar:
			rule := Rule{Selector: joinTokens(nil, r.parser.Values())}
			decls, err := r.declarations()
			if err != nil {
				return nil, err
			}
			rule.Declarations = decls
			rules = append(rules, rule)
		}
	}
}

func (r *reader) declarations() ([]Declaration, error) {
	var decls []Declaration
	for {
		gt, _, data := r.parser.Next()
		switch gt {
		case css.EndRulesetGrammar:
			return decls, nil
		case css.ErrorGrammar:
			if err := r.parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse stylesheet: %w", err)
			}
			return nil, errors.New("parse stylesheet: unterminated rule")
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			decls = append(decls, Declaration{
				Property: string(data),
				Value:    joinTokens(nil, r.parser.Values()),
				Line:     r.line(),
			})
		}
	}
}

// line maps the parser position, which sits just past the terminating semicolon, to a line.
func (r *reader) line() int {
	end := r.parser.Offset() - 1
	if end < 0 {
		return 0
	}
	if end > len(r.text) {
		end = len(r.text)
	}
	return strings.Count(r.text[:end], "\n")
}

func joinTokens(head []byte, tokens []css.Token) string {
	var b strings.Builder
	if len(head) > 0 {
		b.Write(head)
		b.WriteByte(' ')
	}
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return Canonical(b.String())
}
