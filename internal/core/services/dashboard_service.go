package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

type DashboardProviders struct {
	Weather     domain.WeatherProvider
	Dog         domain.DogProvider
	Inspiration domain.InspirationProvider
	Book        domain.BookProvider
}

// DashboardService runs the dashboard's fetch-then-generate flow.
type DashboardService struct {
	providers DashboardProviders
	cache     *DailyCache
	checkins  *CheckinService
	reports   *ReportService
	now       Clock
	log       *zap.Logger
}

func NewDashboardService(
	providers DashboardProviders,
	cache *DailyCache,
	checkins *CheckinService,
	reports *ReportService,
	now Clock,
	log *zap.Logger,
) *DashboardService {
	return &DashboardService{
		providers: providers,
		cache:     cache,
		checkins:  checkins,
		reports:   reports,
		now:       now,
		log:       log,
	}
}

type CoachOption struct {
	Style domain.CoachStyle `json:"style"`
	Label string            `json:"label"`
}

type TodayView struct {
	Date           string                      `json:"date"`
	Inspiration    *domain.InspirationSnapshot `json:"inspiration"`
	Book           *domain.BookSnapshot        `json:"book"`
	ReadingMission string                      `json:"reading_mission"`
	Habits         []domain.Habit              `json:"habits"`
	Cities         []string                    `json:"cities"`
	CoachStyles    []CoachOption               `json:"coach_styles"`
	DefaultCity    string                      `json:"default_city"`
	DefaultStyle   domain.CoachStyle           `json:"default_coach_style"`
	DefaultMood    int                         `json:"default_mood"`
	History        []domain.DailySummary       `json:"history"`
}

type ReportInput struct {
	City   string
	Style  string
	Habits map[string]bool
	Mood   int
}

type ReportResult struct {
	ID          string                      `json:"id"`
	Date        string                      `json:"date"`
	City        string                      `json:"city"`
	Style       domain.CoachStyle           `json:"coach_style"`
	StyleLabel  string                      `json:"coach_label"`
	Checkin     *CheckinResult              `json:"checkin"`
	Weather     *domain.WeatherSnapshot     `json:"weather"`
	Dog         *domain.DogSnapshot         `json:"dog"`
	Inspiration *domain.InspirationSnapshot `json:"inspiration"`
	Book        *domain.BookSnapshot        `json:"book"`
	Report      *string                     `json:"report"`
	ShareText   *string                     `json:"share_text"`
	ReportError string                      `json:"report_error,omitempty"`
}

// ReportUnavailable is shown when no coach report could be produced.
const ReportUnavailable = "리포트 생성에 실패했어요. (OpenAI API Key/모델/네트워크 확인)"

// Inspiration returns today's inspiration, fetched at most once per day.
func (s *DashboardService) Inspiration(ctx context.Context) *domain.InspirationSnapshot {
	return Cached(ctx, s.cache, SourceInspiration, s.providers.Inspiration.DailyInspiration)
}

// Book returns today's book, fetched at most once per day.
func (s *DashboardService) Book(ctx context.Context) *domain.BookSnapshot {
	return Cached(ctx, s.cache, SourceDailyBook, func(ctx context.Context) *domain.BookSnapshot {
		return s.providers.Book.DailyBook(ctx, s.now())
	})
}

// WarmDaily makes sure today's once-per-day sources are in the cache.
func (s *DashboardService) WarmDaily(ctx context.Context) {
	inspiration := s.Inspiration(ctx)
	book := s.Book(ctx)

	s.log.Info("daily sources warmed",
		zap.Bool("inspiration", !inspiration.IsEmpty()),
		zap.Bool("book", book != nil),
	)
}

func (s *DashboardService) Today(ctx context.Context) *TodayView {
	today := s.now()

	styles := domain.CoachStyles()
	options := make([]CoachOption, 0, len(styles))
	for _, st := range styles {
		options = append(options, CoachOption{Style: st, Label: st.Label()})
	}

	return &TodayView{
		Date:           domain.DateKey(today),
		Inspiration:    s.Inspiration(ctx),
		Book:           s.Book(ctx),
		ReadingMission: domain.ReadingMission(today),
		Habits:         s.checkins.Variant().Habits(),
		Cities:         domain.Cities(),
		CoachStyles:    options,
		DefaultCity:    domain.DefaultCity,
		DefaultStyle:   domain.DefaultCoachStyle,
		DefaultMood:    domain.DefaultMood,
		History:        s.checkins.History(),
	}
}

// GenerateReport records the check-in, then fetches weather and dog and asks for the
// coach report, strictly one call after another. Only invalid input is an error;
// unavailable sources leave their fields nil.
func (s *DashboardService) GenerateReport(ctx context.Context, input ReportInput) (*ReportResult, error) {
	style, err := domain.ParseCoachStyle(input.Style)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	city := strings.TrimSpace(input.City)
	if city == "" {
		city = domain.DefaultCity
	}

	checkin, err := s.checkins.Checkin(ctx, CheckinInput{Habits: input.Habits, Mood: input.Mood})
	if err != nil {
		return nil, err
	}

	weather := s.providers.Weather.CurrentWeather(ctx, city)
	dog := s.providers.Dog.RandomDog(ctx)
	inspiration := s.Inspiration(ctx)
	book := s.Book(ctx)

	result := &ReportResult{
		ID:          uuid.NewString(),
		Date:        checkin.Date,
		City:        city,
		Style:       style,
		StyleLabel:  style.Label(),
		Checkin:     checkin,
		Weather:     weather,
		Dog:         dog,
		Inspiration: inspiration,
		Book:        book,
	}

	text, ok := s.reports.Generate(ctx, domain.ReportRequest{
		Style:       style,
		Habits:      checkin.Habits,
		Mood:        checkin.Mood,
		Weather:     weather,
		Dog:         dog,
		Inspiration: inspiration,
		Book:        book,
	})
	if !ok {
		s.log.Warn("coach report unavailable", zap.String("report_id", result.ID))
		result.ReportError = ReportUnavailable
		return result, nil
	}

	share := domain.ShareText(domain.ShareInput{
		Date:   checkin.Date,
		Rate:   checkin.Rate,
		Done:   checkin.Done,
		Total:  checkin.Total,
		Mood:   checkin.Mood,
		City:   city,
		Style:  style,
		Report: text,
	})
	result.Report = &text
	result.ShareText = &share

	return result, nil
}
