package assessment

import (
	"context"
	"errors"
	"testing"
)

type stubJudge struct {
	judgment *Judgment
	err      error
	calls    int
}

func (s *stubJudge) Evaluate(ctx context.Context, req JudgeRequest) (*Judgment, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.judgment, nil
}

func fixedJudgment(level Level) *Judgment {
	return &Judgment{
		Level:         level,
		Justification: "stub",
		SubScores:     map[string]string{"vocabulary": "ok", "grammar": "ok"},
	}
}

func TestAssessListeningDeterministic(t *testing.T) {
	a := NewAssessor(nil, nil, nil)
	q := Question{ID: "l1", Type: TypeListening, Expected: "The medina is crowded on Sunday mornings"}

	perfect := a.Assess(context.Background(), q, "The medina is crowded on Sunday mornings")
	if perfect.Level != LevelC1 {
		t.Errorf("identical repetition level = %s, want C1", perfect.Level)
	}
	if perfect.Points != 5 {
		t.Errorf("points = %d, want 5", perfect.Points)
	}

	empty := a.Assess(context.Background(), q, "")
	if empty.Level != LevelA1 {
		t.Errorf("empty repetition level = %s, want A1", empty.Level)
	}

	// 听力策略不调用评审
	j := &stubJudge{judgment: fixedJudgment(LevelB2)}
	a2 := NewAssessor(j, nil, nil)
	a2.Assess(context.Background(), q, "something")
	if j.calls != 0 {
		t.Errorf("listening strategy called the judge %d times, want 0", j.calls)
	}
}

func TestAssessFreeTextUsesJudge(t *testing.T) {
	j := &stubJudge{judgment: fixedJudgment(LevelB2)}
	a := NewAssessor(j, nil, nil)
	q := Question{ID: "d1", Type: TypeDialogue, Prompt: "Tell me about your weekend."}

	got := a.Assess(context.Background(), q, "I visited my grandmother and we cooked together.")
	if got.Level != LevelB2 {
		t.Errorf("level = %s, want B2 from judge", got.Level)
	}
	if got.Fallback {
		t.Error("judge succeeded, Fallback must be false")
	}
	if got.Points != 4 {
		t.Errorf("points = %d, want 4", got.Points)
	}
}

func TestAssessFallbackOnJudgeError(t *testing.T) {
	fallbacks := 0
	j := &stubJudge{err: errors.New("timeout")}
	a := NewAssessor(j, nil, nil)
	a.OnFallback = func(qt QuestionType, reason string) { fallbacks++ }
	q := Question{ID: "d1", Type: TypeDialogue}

	got := a.Assess(context.Background(), q, "short answer")
	if !got.Fallback {
		t.Error("judge error must set Fallback")
	}
	if !got.Level.Valid() {
		t.Errorf("fallback produced invalid level %q", got.Level)
	}
	if fallbacks != 1 {
		t.Errorf("fallback hook fired %d times, want 1", fallbacks)
	}
}

func TestAssessFallbackOnInvalidJudgment(t *testing.T) {
	j := &stubJudge{judgment: &Judgment{Level: Level("C2")}}
	a := NewAssessor(j, nil, nil)
	q := Question{ID: "d1", Type: TypeWriting}

	got := a.Assess(context.Background(), q, "an answer of a few words")
	if !got.Fallback {
		t.Error("out-of-range judge level must fall back")
	}
	if !got.Level.Valid() {
		t.Errorf("fallback produced invalid level %q", got.Level)
	}
}

func TestAssessNilJudgeFallsBack(t *testing.T) {
	a := NewAssessor(nil, nil, nil)
	q := Question{ID: "d1", Type: TypeDialogue}
	got := a.Assess(context.Background(), q, "hello")
	if !got.Fallback || got.Level != LevelA1 {
		t.Errorf("nil judge short answer = (%s, fallback=%v), want (A1, true)", got.Level, got.Fallback)
	}
}

func TestPhase2KeywordUpgrade(t *testing.T) {
	cases := []struct {
		name   string
		judged Level
		answer string
		want   Level
	}{
		{
			"A1 with both keywords upgrades",
			LevelA1,
			"We plan together a visit to tunisian market",
			LevelA2,
		},
		{
			"A1 with only cultural keyword unchanged",
			LevelA1,
			"I like tunisian food",
			LevelA1,
		},
		{
			"A1 with only teamwork keyword unchanged",
			LevelA1,
			"We work together on this",
			LevelA1,
		},
		{
			"A2 with keywords but simple grammar unchanged",
			LevelA2,
			"We go together to the tunisian museum",
			LevelA2,
		},
		{
			"A2 with keywords and complex grammar upgrades",
			LevelA2,
			"If we could plan together, although the tunisian museum is far, we would enjoy it",
			LevelB1,
		},
		{
			"B1 never upgraded",
			LevelB1,
			"If we could plan together, although the tunisian museum is far, we would enjoy it",
			LevelB1,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			j := &stubJudge{judgment: fixedJudgment(c.judged)}
			a := NewAssessor(j, nil, nil)
			q := Question{ID: "s1i1", Type: TypePhase2Task}
			got := a.Assess(context.Background(), q, c.answer)
			if got.Level != c.want {
				t.Errorf("judged %s with answer %q = %s, want %s", c.judged, c.answer, got.Level, c.want)
			}
		})
	}
}
