package reference

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// Label renders the chart label for a rank, e.g. "KYU 7" or "DAN 2".
func Label(rankType domain.RankType, rankNumber int) string {
	return fmt.Sprintf("%s %d", strings.ToUpper(string(rankType)), rankNumber)
}

// ChartLabels returns the fixed label order: kyu from MaxKyu down to 1,
// then dan from 1 up to MaxDan.
func (s *Syllabus) ChartLabels() []string {
	labels := make([]string, 0, s.maxKyu+s.maxDan)
	for n := s.maxKyu; n >= 1; n-- {
		labels = append(labels, Label(domain.RankTypeKyu, n))
	}
	for n := 1; n <= s.maxDan; n++ {
		labels = append(labels, Label(domain.RankTypeDan, n))
	}
	return labels
}

// ColorFor returns the bar fill for a label, gray when unknown.
func (s *Syllabus) ColorFor(label string) domain.BarColor {
	if c, ok := s.colors[label]; ok {
		return c
	}
	return domain.BarColor{Top: FallbackColor}
}

// BorderFor returns a darker outline for white bars so they stay visible.
func (s *Syllabus) BorderFor(label string) string {
	c, ok := s.colors[label]
	if ok && !c.IsSplit() && strings.EqualFold(c.Top, "#ffffff") {
		return lightBorder
	}
	return darkBorder
}

// BuildChart zero-fills every label and adds the given counts. Ranks outside
// the label set are dropped.
func (s *Syllabus) BuildChart(counts []domain.RankCount) domain.ChartData {
	labels := s.ChartLabels()
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	chart := domain.ChartData{
		Labels:  labels,
		Counts:  make([]int, len(labels)),
		Colors:  make([]domain.BarColor, len(labels)),
		Borders: make([]string, len(labels)),
	}

	for _, rc := range counts {
		i, ok := index[Label(rc.RankType, rc.RankNumber)]
		if !ok {
			continue
		}
		chart.Counts[i] += rc.Count
		chart.Total += rc.Count
	}

	for i, l := range labels {
		chart.Colors[i] = s.ColorFor(l)
		chart.Borders[i] = s.BorderFor(l)
	}

	return chart
}
