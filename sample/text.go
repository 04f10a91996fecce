package sample

import (
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/common/expfmt"
)

// FromText parses metrics in the Prometheus text exposition format and
// flattens them into family groups, letting tests build fixtures from literal
// scrape payloads instead of live registries.
//
// The parser keys families by name, so the input's family order is not
// preserved; groups are returned sorted by family name for determinism.
func FromText(r io.Reader) ([]FamilyGroup, error) {
	var parser expfmt.TextParser

	families, err := parser.TextToMetricFamilies(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatherFailed, err)
	}

	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]FamilyGroup, 0, len(families))
	for _, name := range names {
		groups = append(groups, fromFamily(families[name]))
	}

	return groups, nil
}
