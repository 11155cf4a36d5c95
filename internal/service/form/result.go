package form

import "github.com/heartmarshall/dojo-forms/internal/domain"

// NewFormPage bundles everything the "new form" screen needs: existing names
// for suggestions, the rank coverage chart and the syllabus tables.
type NewFormPage struct {
	Names           []string
	Chart           domain.ChartData
	KyuRequirements map[int][]string
	DanRequirements map[int][]string
	KyuChips        map[int]string
}
