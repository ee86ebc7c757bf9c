package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

const (
	noWeather     = "날씨 정보 없음"
	noDog         = "강아지 정보 없음"
	noInspiration = "오늘의 영감 정보 없음"
	noBook        = "오늘의 책 정보 없음"

	// missingField stands in for a snapshot field the provider did not send.
	missingField = "-"
)

const reportFormat = `아래 형식(섹션 제목 포함)을 반드시 지켜서 한국어로 작성해.
각 섹션은 2~5문장 정도로 간결하게.

[컨디션 등급] (S/A/B/C/D 중 하나)
[습관 분석]
[날씨 코멘트]
[내일 미션] (정확히 3개, 체크박스처럼 '1) ...' 형태)
[오늘의 한마디] (한 줄)`

// BuildReportPrompt renders the persona instructions and the day's facts into the
// messages sent to the language model.
func BuildReportPrompt(req domain.ReportRequest) domain.ReportPrompt {
	var b strings.Builder

	b.WriteString("오늘 체크인 데이터야.\n\n")
	b.WriteString("[습관]\n")
	b.WriteString(habitLines(req.Habits))
	fmt.Fprintf(&b, "\n\n[기분 점수] %d/%d\n\n", req.Mood, domain.MaxMood)
	fmt.Fprintf(&b, "[날씨]\n%s\n\n", weatherLine(req.Weather))
	fmt.Fprintf(&b, "[강아지]\n%s\n\n", dogLine(req.Dog))
	fmt.Fprintf(&b, "[오늘의 영감]\n%s\n\n", inspirationLine(req.Inspiration))
	fmt.Fprintf(&b, "[오늘의 책]\n%s\n\n", bookLine(req.Book))
	b.WriteString("리포트에는 오늘의 영감 내용을 반드시 언급하고, 책의 주제나 메시지를 사용자의 습관/기분과 연결해줘.\n\n")
	b.WriteString("요구 출력 형식:\n")
	b.WriteString(reportFormat)

	return domain.ReportPrompt{
		System: req.Style.SystemPrompt(),
		User:   b.String(),
	}
}

func habitLines(habits domain.HabitSet) string {
	lines := make([]string, 0, len(habits))
	for _, h := range habits {
		mark := "❌"
		if h.Done {
			mark = "✅"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", h.Name, mark))
	}
	return strings.Join(lines, "\n")
}

func weatherLine(w *domain.WeatherSnapshot) string {
	if w == nil {
		return noWeather
	}
	return fmt.Sprintf("%s / %s / %s°C (체감 %s°C) / 습도 %s%% / 바람 %s m/s",
		w.City,
		str(w.Description),
		num(w.TemperatureC),
		num(w.FeelsLikeC),
		integer(w.HumidityPct),
		num(w.WindSpeedMps),
	)
}

func dogLine(d *domain.DogSnapshot) string {
	if d == nil {
		return noDog
	}
	return "오늘의 강아지 품종: " + d.Breed
}

func inspirationLine(in *domain.InspirationSnapshot) string {
	if in.IsEmpty() {
		return noInspiration
	}

	var parts []string
	if nonEmpty(in.Title) {
		parts = append(parts, "제목: "+*in.Title)
	}
	if nonEmpty(in.Description) {
		parts = append(parts, "설명: "+*in.Description)
	}
	if nonEmpty(in.Quote) {
		author := domain.AnonymousAuthor
		if nonEmpty(in.Author) {
			author = *in.Author
		}
		parts = append(parts, fmt.Sprintf("문구: \"%s\" — %s", *in.Quote, author))
	}
	if len(parts) == 0 {
		return noInspiration
	}
	return strings.Join(parts, " / ")
}

func bookLine(book *domain.BookSnapshot) string {
	if book == nil {
		return noBook
	}
	parts := []string{book.Title + " - " + book.Author}
	if nonEmpty(book.ShortSummary) {
		parts = append(parts, "요약: "+*book.ShortSummary)
	}
	return strings.Join(parts, " / ")
}

func nonEmpty(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func str(s *string) string {
	if s == nil {
		return missingField
	}
	return *s
}

func num(f *float64) string {
	if f == nil {
		return missingField
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func integer(i *int) string {
	if i == nil {
		return missingField
	}
	return strconv.Itoa(*i)
}
