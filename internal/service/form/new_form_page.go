package form

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// NewFormPage loads alive names and rank counts concurrently and combines
// them with the syllabus tables.
func (s *Service) NewFormPage(ctx context.Context) (*NewFormPage, error) {
	var (
		names  []string
		counts []domain.RankCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		names, err = s.forms.AliveNames(gctx)
		if err != nil {
			return fmt.Errorf("alive names: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		counts, err = s.forms.CountAliveByRank(gctx)
		if err != nil {
			return fmt.Errorf("count by rank: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &NewFormPage{
		Names:           names,
		Chart:           s.syllabus.BuildChart(counts),
		KyuRequirements: s.syllabus.KyuRequirements(),
		DanRequirements: s.syllabus.DanRequirements(),
		KyuChips:        s.syllabus.KyuChips(),
	}, nil
}

// ChartData returns alive form counts per rank in chart label order.
func (s *Service) ChartData(ctx context.Context) (domain.ChartData, error) {
	counts, err := s.forms.CountAliveByRank(ctx)
	if err != nil {
		return domain.ChartData{}, fmt.Errorf("count by rank: %w", err)
	}
	return s.syllabus.BuildChart(counts), nil
}
