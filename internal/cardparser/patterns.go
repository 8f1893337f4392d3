package cardparser

import (
	"fmt"
	"os"

	"fjacquet/ccstmt-csv/internal/models"
	"fjacquet/ccstmt-csv/internal/parsererror"

	"gopkg.in/yaml.v3"
)

// PatternSpec is one row of a pattern file.
type PatternSpec struct {
	Field       string `yaml:"field"`
	Regex       string `yaml:"regex"`
	Group       int    `yaml:"group"`
	Trim        bool   `yaml:"trim"`
	StripCommas bool   `yaml:"strip_commas"`
}

type patternFile struct {
	Patterns []PatternSpec `yaml:"patterns"`
}

// LoadPatternFile reads extra matchers from a YAML file of the form
//
//	patterns:
//	  - field: payment_due_date
//	    regex: 'Due\s+By\s*:\s*(\d{2}/\d{2}/\d{4})'
//	    group: 1
//
// \s and \d in regex match any Unicode space or decimal digit, like the
// built-in patterns. An empty path yields no matchers.
func LoadPatternFile(path string) ([]Matcher, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}

	var pf patternFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, &parsererror.ParseError{Parser: "patterns", Field: "yaml", Value: path, Err: err}
	}

	matchers := make([]Matcher, 0, len(pf.Patterns))
	for i, spec := range pf.Patterns {
		m, err := spec.compile()
		if err != nil {
			return nil, fmt.Errorf("pattern #%d in %s: %w", i+1, path, err)
		}
		m.Source = path
		matchers = append(matchers, m)
	}
	return matchers, nil
}

func (s PatternSpec) compile() (Matcher, error) {
	field, err := models.ParseFieldName(s.Field)
	if err != nil {
		return Matcher{}, &parsererror.ParseError{Parser: "patterns", Field: "field", Value: s.Field, Err: err}
	}

	trim, strip := s.Trim, s.StripCommas
	m, err := NewMatcher(field, s.Regex, s.Group, func(v string) (string, bool) {
		if trim {
			v = trimSpace(v)
		}
		if strip {
			v = stripThousands(v)
		}
		return v, true
	})
	if err != nil {
		return Matcher{}, &parsererror.ParseError{Parser: "patterns", Field: "regex", Value: s.Regex, Err: err}
	}

	if s.Group < 0 || s.Group > m.Pattern.NumSubexp() {
		return Matcher{}, &parsererror.ParseError{
			Parser: "patterns",
			Field:  "group",
			Value:  fmt.Sprintf("%d", s.Group),
			Err:    fmt.Errorf("regex has %d capture groups", m.Pattern.NumSubexp()),
		}
	}
	return m, nil
}
