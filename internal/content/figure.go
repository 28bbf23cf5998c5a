package content

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Figure is a headline number such as "50K+", "99.9%" or "4.9/5": an
// optional prefix, a decimal number and a suffix. The client counts up to
// Value; Decimals keeps "99.9" from rendering as "100".
type Figure struct {
	Prefix   string
	Value    float64
	Suffix   string
	Decimals int
}

// ParseFigure splits s into prefix, number and suffix.
func ParseFigure(s string) (Figure, error) {
	s = strings.TrimSpace(s)
	start := strings.IndexFunc(s, unicode.IsDigit)
	if start < 0 {
		return Figure{}, fmt.Errorf("figure %q has no number", s)
	}

	end := start
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c == '.' && !seenDot && end+1 < len(s) && s[end+1] >= '0' && s[end+1] <= '9' {
			seenDot = true
		} else if c < '0' || c > '9' {
			break
		}
		end++
	}

	number := s[start:end]
	v, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return Figure{}, fmt.Errorf("figure %q: %w", s, err)
	}

	decimals := 0
	if i := strings.IndexByte(number, '.'); i >= 0 {
		decimals = len(number) - i - 1
	}

	return Figure{
		Prefix:   s[:start],
		Value:    v,
		Suffix:   s[end:],
		Decimals: decimals,
	}, nil
}

// MustParseFigure is ParseFigure for literals.
func MustParseFigure(s string) Figure {
	f, err := ParseFigure(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders v with the figure's prefix, suffix and precision. Used for
// the intermediate frames of the count-up.
func (f Figure) Format(v float64) string {
	return f.Prefix + strconv.FormatFloat(v, 'f', f.Decimals, 64) + f.Suffix
}

// Number renders the value without prefix or suffix.
func (f Figure) Number() string {
	return strconv.FormatFloat(f.Value, 'f', f.Decimals, 64)
}

func (f Figure) String() string {
	return f.Format(f.Value)
}

// UnmarshalYAML reads a figure from a scalar like "99.9%".
func (f *Figure) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: figure must be a scalar", node.Line)
	}
	parsed, err := ParseFigure(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*f = parsed
	return nil
}

// MarshalYAML writes the figure back as its display string.
func (f Figure) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}
