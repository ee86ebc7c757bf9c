package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

type ReportService struct {
	generator domain.ReportGenerator
	log       *zap.Logger
}

func NewReportService(generator domain.ReportGenerator, log *zap.Logger) *ReportService {
	return &ReportService{
		generator: generator,
		log:       log,
	}
}

// Generate assembles the prompt and asks the language model for the report.
// It returns false when the model produced nothing usable.
func (s *ReportService) Generate(ctx context.Context, req domain.ReportRequest) (string, bool) {
	prompt := BuildReportPrompt(req)

	start := time.Now()
	text, ok := s.generator.Generate(ctx, prompt)

	s.log.Info("coach report requested",
		zap.String("style", string(req.Style)),
		zap.Bool("ok", ok),
		zap.Bool("weather", req.Weather != nil),
		zap.Bool("dog", req.Dog != nil),
		zap.Bool("inspiration", !req.Inspiration.IsEmpty()),
		zap.Bool("book", req.Book != nil),
		zap.Duration("took", time.Since(start)),
	)

	return text, ok
}
