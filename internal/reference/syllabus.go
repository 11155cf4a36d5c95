// Package reference provides the read-only curriculum data the form flows
// consume: rank requirements, kyu belt chips, the chart palette and the
// per-rank chart aggregation. A Syllabus is built once at startup and never
// mutated; every accessor hands out copies.
package reference

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

//go:embed syllabus.yaml
var defaultSyllabus []byte

const (
	// FallbackColor fills bars for ranks without a palette entry.
	FallbackColor = "#9ca3af"

	// MaxSyllabusRank bounds max_kyu and max_dan. Forms themselves may carry
	// any rank >= 1; ranks past the chart are simply not plotted.
	MaxSyllabusRank = 10

	lightBorder = "#111111"
	darkBorder  = "#000000"
)

type document struct {
	MaxKyu          int                        `yaml:"max_kyu"`
	MaxDan          int                        `yaml:"max_dan"`
	KyuRequirements map[int][]string           `yaml:"kyu_requirements"`
	DanRequirements map[int][]string           `yaml:"dan_requirements"`
	KyuChips        map[int]string             `yaml:"kyu_chips"`
	BeltColors      map[string]domain.BarColor `yaml:"belt_colors"`
}

// Syllabus is the immutable reference data set.
type Syllabus struct {
	maxKyu int
	maxDan int
	kyu    map[int][]string
	dan    map[int][]string
	chips  map[int]string
	colors map[string]domain.BarColor
}

// Default parses the syllabus compiled into the binary.
func Default() (*Syllabus, error) {
	return Load(defaultSyllabus)
}

// LoadFile parses a syllabus YAML file. An empty path yields Default.
func LoadFile(path string) (*Syllabus, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("syllabus: read %s: %w", path, err)
	}
	return Load(data)
}

// Load parses a syllabus YAML document and checks that every rank key lies
// inside the declared kyu/dan range.
func Load(data []byte) (*Syllabus, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("syllabus: parse: %w", err)
	}

	if doc.MaxKyu < 1 || doc.MaxKyu > MaxSyllabusRank {
		return nil, fmt.Errorf("syllabus: max_kyu must be in 1..%d (got %d)", MaxSyllabusRank, doc.MaxKyu)
	}
	if doc.MaxDan < 1 || doc.MaxDan > MaxSyllabusRank {
		return nil, fmt.Errorf("syllabus: max_dan must be in 1..%d (got %d)", MaxSyllabusRank, doc.MaxDan)
	}
	if err := checkRanks("kyu_requirements", keys(doc.KyuRequirements), doc.MaxKyu); err != nil {
		return nil, err
	}
	if err := checkRanks("dan_requirements", keys(doc.DanRequirements), doc.MaxDan); err != nil {
		return nil, err
	}
	if err := checkRanks("kyu_chips", keys(doc.KyuChips), doc.MaxKyu); err != nil {
		return nil, err
	}

	return &Syllabus{
		maxKyu: doc.MaxKyu,
		maxDan: doc.MaxDan,
		kyu:    cloneRequirements(doc.KyuRequirements),
		dan:    cloneRequirements(doc.DanRequirements),
		chips:  cloneMap(doc.KyuChips),
		colors: cloneMap(doc.BeltColors),
	}, nil
}

// MaxKyu is the lowest (entry) kyu grade, counted down to 1.
func (s *Syllabus) MaxKyu() int { return s.maxKyu }

// MaxDan is the highest dan grade shown on the chart.
func (s *Syllabus) MaxDan() int { return s.maxDan }

// Requirements returns the forms required for one rank, or nil.
func (s *Syllabus) Requirements(rankType domain.RankType, rankNumber int) []string {
	switch rankType {
	case domain.RankTypeKyu:
		return slices.Clone(s.kyu[rankNumber])
	case domain.RankTypeDan:
		return slices.Clone(s.dan[rankNumber])
	}
	return nil
}

// KyuRequirements returns a copy of the kyu rank -> forms table.
func (s *Syllabus) KyuRequirements() map[int][]string { return cloneRequirements(s.kyu) }

// DanRequirements returns a copy of the dan rank -> forms table.
func (s *Syllabus) DanRequirements() map[int][]string { return cloneRequirements(s.dan) }

// KyuChips returns a copy of the kyu rank -> belt chip class table.
func (s *Syllabus) KyuChips() map[int]string { return cloneMap(s.chips) }

func checkRanks(section string, ranks []int, maxRank int) error {
	for _, n := range ranks {
		if n < 1 || n > maxRank {
			return fmt.Errorf("syllabus: %s: rank %d outside 1..%d", section, n, maxRank)
		}
	}
	return nil
}

func keys[V any](m map[int]V) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func cloneRequirements(m map[int][]string) map[int][]string {
	out := make(map[int][]string, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
