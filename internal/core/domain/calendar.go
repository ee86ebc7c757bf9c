package domain

import "time"

const DateLayout = "2006-01-02"

// Ordinal of 1970-01-01, counting 0001-01-01 as day 1.
const ordinalOfUnixEpoch = 719163

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DayOrdinal returns the proleptic Gregorian ordinal of t's calendar date.
func DayOrdinal(t time.Time) int {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(floorDiv(midnight.Unix(), 86400)) + ordinalOfUnixEpoch
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

var readingMissions = []string{
	"5쪽 읽기",
	"10분 읽기",
	"핵심 문장 1개 기록하기",
	"챕터 1개 훑어보기",
}

func ReadingMission(day time.Time) string {
	return readingMissions[DayOrdinal(day)%len(readingMissions)]
}
