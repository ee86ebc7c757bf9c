package domain

import (
	"fmt"
	"strings"
)

// ReportRequest carries everything the coach report is built from.
// Snapshots are nil when their source was unavailable.
type ReportRequest struct {
	Style       CoachStyle
	Habits      HabitSet
	Mood        int
	Weather     *WeatherSnapshot
	Dog         *DogSnapshot
	Inspiration *InspirationSnapshot
	Book        *BookSnapshot
}

// ReportPrompt is the pair of messages sent to the language model.
type ReportPrompt struct {
	System string
	User   string
}

type ShareInput struct {
	Date   string
	Rate   int
	Done   int
	Total  int
	Mood   int
	City   string
	Style  CoachStyle
	Report string
}

// ShareText renders a plain-text copy of a report for sharing.
func ShareText(in ShareInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "AI 습관 트래커 리포트 (%s)\n", in.Date)
	fmt.Fprintf(&b, "- 달성률: %d%% (%d/%d)\n", in.Rate, in.Done, in.Total)
	fmt.Fprintf(&b, "- 기분: %d/%d\n", in.Mood, MaxMood)
	fmt.Fprintf(&b, "- 도시: %s\n", in.City)
	fmt.Fprintf(&b, "- 코치: %s\n\n", in.Style.Label())
	b.WriteString(in.Report)
	b.WriteString("\n")
	return b.String()
}

const DefaultCity = "Seoul"

var cities = []string{
	"Seoul", "Busan", "Incheon", "Daegu", "Daejeon",
	"Gwangju", "Suwon", "Ulsan", "Sejong", "Jeju",
}

// Cities returns the cities offered by the dashboard.
func Cities() []string {
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}
