package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCoachStyle = errors.New("unknown coach style (must be spartan, mentor or game_master)")

type CoachStyle string

const (
	CoachSpartan    CoachStyle = "spartan"
	CoachWarmMentor CoachStyle = "mentor"
	CoachGameMaster CoachStyle = "game_master"

	DefaultCoachStyle = CoachWarmMentor
)

var coachStyles = []CoachStyle{CoachSpartan, CoachWarmMentor, CoachGameMaster}

// CoachStyles lists the personas in display order.
func CoachStyles() []CoachStyle {
	out := make([]CoachStyle, len(coachStyles))
	copy(out, coachStyles)
	return out
}

// ParseCoachStyle accepts a slug or a display label. An empty value selects the default.
func ParseCoachStyle(s string) (CoachStyle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultCoachStyle, nil
	}
	for _, style := range coachStyles {
		if strings.EqualFold(s, string(style)) || s == style.Label() {
			return style, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCoachStyle, s)
}

func (c CoachStyle) Label() string {
	switch c {
	case CoachSpartan:
		return "스파르타 코치"
	case CoachWarmMentor:
		return "따뜻한 멘토"
	case CoachGameMaster:
		return "게임 마스터"
	default:
		return string(c)
	}
}

// SystemPrompt returns the instruction preset of the persona.
func (c CoachStyle) SystemPrompt() string {
	switch c {
	case CoachSpartan:
		return "너는 매우 엄격하고 직설적인 습관 코치다. 핑계는 받아주지 않는다. " +
			"하지만 모욕적이거나 공격적이면 안 된다. 짧고 강하게, 실행 중심으로 말해라."
	case CoachGameMaster:
		return "너는 RPG 세계관의 게임 마스터다. 사용자의 하루를 퀘스트/스탯/버프로 묘사한다. " +
			"너무 길게 늘어놓지 말고, 재미있지만 실행 가능한 미션으로 마무리해라."
	default:
		return "너는 따뜻하고 공감적인 멘토다. 사용자의 노력과 감정을 존중하고, " +
			"작은 성공을 칭찬하며 부드럽게 다음 행동을 제안한다."
	}
}
