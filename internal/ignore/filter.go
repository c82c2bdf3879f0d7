package ignore

import (
	"github.com/charmbracelet/log"

	"github.com/qforic/trawl/internal/scan"
)

// NewFilter returns a filter that excludes every path matched by at least
// one of rules. The candidate is canonicalized first; a candidate that
// cannot be canonicalized is an error, never a silent "no match".
// Exclusions are reported on logger at debug level; a nil logger is silent.
func NewFilter(rules []Rule, logger *log.Logger) scan.Filter {
	return func(path string) (bool, error) {
		canon, err := Canonicalize(path)
		if err != nil {
			return false, err
		}
		for _, rule := range rules {
			if rule.Matches(canon) {
				if logger != nil {
					logger.Debug("ignoring path", "path", path, "rule", rule.String())
				}
				return false, nil
			}
		}
		return true, nil
	}
}
