package scan

// Filter decides whether a path should be kept. It may perform I/O (for
// example canonicalization) and therefore may fail; a Filter error is a
// configuration problem, not a filesystem hiccup, and aborts the scan that
// invoked it.
type Filter func(path string) (bool, error)

// Collector receives each accepted path, in discovery order. The scanner
// waits for the collector to return before resuming the walk; a collector
// error aborts the scan.
type Collector func(path string) error

// CombineFilters returns a Filter that applies each filter in order and
// ANDs the results. Evaluation short-circuits: the first filter that
// returns false or an error ends the call, and later filters are not
// invoked. With no filters the combined filter accepts everything.
func CombineFilters(filters ...Filter) Filter {
	return func(path string) (bool, error) {
		for _, filter := range filters {
			keep, err := filter(path)
			if err != nil {
				return false, err
			}
			if !keep {
				return false, nil
			}
		}
		return true, nil
	}
}
