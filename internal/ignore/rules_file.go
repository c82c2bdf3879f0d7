package ignore

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LoadRules reads ignore rules from r, one per line. Blank lines and lines
// starting with # are skipped; every other line goes through ParsePath, so
// entries must name existing files or directories. Glob and regex rules
// have no line syntax here and are constructed explicitly by callers.
func LoadRules(r io.Reader) ([]Rule, error) {
	var rules []Rule
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		rule, err := ParsePath(text)
		if err != nil {
			return nil, fmt.Errorf("rules line %d: %w", line, err)
		}
		rules = append(rules, rule)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}
