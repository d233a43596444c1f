package assessment

import (
	"context"
	"fmt"
)

// QuestionType 封闭的问题类型集合，Assessor 内部按类型穷举分派
type QuestionType string

const (
	TypeIntroduction      QuestionType = "introduction"
	TypeDialogue          QuestionType = "dialogue"
	TypeListening         QuestionType = "listening"
	TypeWriting           QuestionType = "writing"
	TypeSocialInteraction QuestionType = "social_interaction"
	TypePhase2Task        QuestionType = "phase2_task"
)

// KnownQuestionTypes lists every type the assessor dispatches on.
var KnownQuestionTypes = []QuestionType{
	TypeIntroduction, TypeDialogue, TypeListening,
	TypeWriting, TypeSocialInteraction, TypePhase2Task,
}

// Question is one prompt from the static catalog.
type Question struct {
	ID       string
	Type     QuestionType
	Prompt   string
	Expected string // listening 题的标准句
	Skill    string
	XPReward int
}

// Assessment is the immutable evaluation of a single response.
type Assessment struct {
	QuestionID    string
	QuestionType  QuestionType
	Level         Level
	Points        int
	Justification string
	Vocabulary    string
	Grammar       string
	Spelling      string
	Fluency       string
	Comprehension string
	Strengths     []string
	Improvements  []string
	Fallback      bool // 评审降级为本地启发式
}

// Judgment is the structured output expected from the external judge.
type Judgment struct {
	Level         Level
	Justification string
	SubScores     map[string]string
	Strengths     []string
	Improvements  []string
}

// JudgeRequest carries everything the external judge needs for one response.
type JudgeRequest struct {
	Question       string
	Answer         string
	QuestionType   QuestionType
	RubricWeights  map[string]float64
	WorkedExamples map[Level]string
}

// Judge is the external AI evaluation service. Implementations must return an
// error on timeout or malformed output; the assessor falls back locally.
type Judge interface {
	Evaluate(ctx context.Context, req JudgeRequest) (*Judgment, error)
}

// Assessor turns one question/answer pair into an Assessment. It never
// returns a level outside A1..C1 and never fails: judge errors degrade to the
// local heuristic.
type Assessor struct {
	judge   Judge
	rubrics map[QuestionType]map[string]float64
	worked  map[Level]string

	// OnFallback 评审降级时回调（用于打点），可为 nil
	OnFallback func(qt QuestionType, reason string)
}

func NewAssessor(judge Judge, rubrics map[QuestionType]map[string]float64, worked map[Level]string) *Assessor {
	return &Assessor{
		judge:   judge,
		rubrics: rubrics,
		worked:  worked,
	}
}

// Assess selects the strategy for the question type and produces the
// assessment. The three strategies are mutually exclusive.
func (a *Assessor) Assess(ctx context.Context, q Question, answer string) Assessment {
	switch q.Type {
	case TypeListening:
		return a.assessListening(q, answer)
	case TypePhase2Task:
		return a.assessPhase2(ctx, q, answer)
	case TypeIntroduction, TypeDialogue, TypeWriting, TypeSocialInteraction:
		return a.assessFreeText(ctx, q, answer)
	default:
		// 未登记的类型按自由文本处理
		return a.assessFreeText(ctx, q, answer)
	}
}

// assessListening bands on string similarity, not on any judge output, so the
// result is bit-identical for identical normalized inputs.
func (a *Assessor) assessListening(q Question, answer string) Assessment {
	sim := SimilarityRatio(q.Expected, answer)
	overlap := WordOverlap(q.Expected, answer)
	level := ListeningLevel(sim, overlap)

	return Assessment{
		QuestionID:    q.ID,
		QuestionType:  q.Type,
		Level:         level,
		Points:        level.Points(),
		Justification: fmt.Sprintf("Repetition accuracy %.0f%%, word overlap %.0f%%.", sim*100, overlap*100),
		Comprehension: fmt.Sprintf("Reproduced the sentence with %.0f%% accuracy.", sim*100),
		Fluency:       "Assessed from repetition accuracy.",
		Vocabulary:    "Matched against the expected sentence.",
		Grammar:       "Matched against the expected sentence.",
		Spelling:      "Minor deviations ignored by normalization.",
	}
}

func (a *Assessor) assessFreeText(ctx context.Context, q Question, answer string) Assessment {
	j, fellBack := a.judgeWithFallback(ctx, q, answer)
	return a.fromJudgment(q, j, fellBack)
}

// assessPhase2 is the contextual strategy: same judge-with-fallback shape,
// then the one-band keyword upgrade applied on top of whatever the judge said.
func (a *Assessor) assessPhase2(ctx context.Context, q Question, answer string) Assessment {
	j, fellBack := a.judgeWithFallback(ctx, q, answer)

	if HasCulturalReference(answer) && HasTeamworkSignal(answer) {
		switch {
		case j.Level == LevelA1:
			j.Level = LevelA2
			j.Justification += " Upgraded one band for cultural awareness and teamwork signals."
		case j.Level == LevelA2 && GrammaticallyComplex(answer):
			j.Level = LevelB1
			j.Justification += " Upgraded one band for cultural awareness, teamwork and complex grammar."
		}
	}

	return a.fromJudgment(q, j, fellBack)
}

// judgeWithFallback is the single point where judge failure degrades locally.
func (a *Assessor) judgeWithFallback(ctx context.Context, q Question, answer string) (Judgment, bool) {
	if a.judge == nil {
		a.fallback(q.Type, "no judge configured")
		return HeuristicAssess(answer), true
	}

	j, err := a.judge.Evaluate(ctx, JudgeRequest{
		Question:       q.Prompt,
		Answer:         answer,
		QuestionType:   q.Type,
		RubricWeights:  a.rubrics[q.Type],
		WorkedExamples: a.worked,
	})
	if err != nil {
		a.fallback(q.Type, err.Error())
		return HeuristicAssess(answer), true
	}
	if j == nil || !j.Level.Valid() {
		a.fallback(q.Type, "invalid level in judgment")
		return HeuristicAssess(answer), true
	}
	return *j, false
}

func (a *Assessor) fallback(qt QuestionType, reason string) {
	if a.OnFallback != nil {
		a.OnFallback(qt, reason)
	}
}

func (a *Assessor) fromJudgment(q Question, j Judgment, fellBack bool) Assessment {
	return Assessment{
		QuestionID:    q.ID,
		QuestionType:  q.Type,
		Level:         j.Level,
		Points:        j.Level.Points(),
		Justification: j.Justification,
		Vocabulary:    j.SubScores["vocabulary"],
		Grammar:       j.SubScores["grammar"],
		Spelling:      j.SubScores["spelling"],
		Fluency:       j.SubScores["fluency"],
		Comprehension: j.SubScores["comprehension"],
		Strengths:     j.Strengths,
		Improvements:  j.Improvements,
		Fallback:      fellBack,
	}
}
