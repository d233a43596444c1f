package catalog

import (
	"lingua_quest_backend/internal/assessment"
)

// Catalog 进程启动时构建一次的静态配置，只读，按引用注入各服务。
type Catalog struct {
	QuestionWeights map[assessment.QuestionType]float64
	Phase1Questions []assessment.Question
	Phase2Steps     []Step
	Remedial        map[RemedialKey][]Activity
	Achievements    []AchievementDef
	LevelInfo       map[assessment.Level]string
	RubricWeights   map[assessment.QuestionType]map[string]float64
	WorkedExamples  map[assessment.Level]string
}

// Step is one phase-2 stage with its ordered action items.
type Step struct {
	ID    string
	Title string
	Items []ActionItem
}

// ActionItem is one prompt inside a step.
type ActionItem struct {
	ID       string
	Prompt   string
	XPReward int
}

// RemedialKey selects the remedial activity set for a failed step.
type RemedialKey struct {
	StepID string
	Level  assessment.Level
}

// Activity is one remedial exercise. SuccessThreshold is activity-specific,
// typically the number of correct sub-answers required.
type Activity struct {
	ID               string
	Type             string // matching | fill_gap | dialogue
	Title            string
	SuccessThreshold int
	MaxScore         int
}

// AchievementDef describes one earnable badge.
type AchievementDef struct {
	Code string
	Name string
	Icon string
	XP   int
}

// StepOrder returns the fixed progression order of phase-2 steps.
func (c *Catalog) StepOrder() []string {
	order := make([]string, len(c.Phase2Steps))
	for i, s := range c.Phase2Steps {
		order[i] = s.ID
	}
	return order
}

// FindQuestion looks up a phase-1 question by ID.
func (c *Catalog) FindQuestion(id string) (assessment.Question, bool) {
	for _, q := range c.Phase1Questions {
		if q.ID == id {
			return q, true
		}
	}
	return assessment.Question{}, false
}

// FindStep looks up a phase-2 step by ID.
func (c *Catalog) FindStep(stepID string) (Step, bool) {
	for _, s := range c.Phase2Steps {
		if s.ID == stepID {
			return s, true
		}
	}
	return Step{}, false
}

// FindActionItem looks up an action item within a step.
func (s Step) FindActionItem(itemID string) (ActionItem, int, bool) {
	for i, it := range s.Items {
		if it.ID == itemID {
			return it, i, true
		}
	}
	return ActionItem{}, 0, false
}

// RemedialSet returns the ordered activity list for a (step, level) pair.
func (c *Catalog) RemedialSet(stepID string, level assessment.Level) ([]Activity, bool) {
	acts, ok := c.Remedial[RemedialKey{StepID: stepID, Level: level}]
	return acts, ok
}

// FindRemedialActivity locates one activity inside a remedial set.
func (c *Catalog) FindRemedialActivity(stepID string, level assessment.Level, activityID string) (Activity, int, bool) {
	acts, ok := c.RemedialSet(stepID, level)
	if !ok {
		return Activity{}, 0, false
	}
	for i, a := range acts {
		if a.ID == activityID {
			return a, i, true
		}
	}
	return Activity{}, 0, false
}

// FindAchievement returns the definition for an achievement code.
func (c *Catalog) FindAchievement(code string) (AchievementDef, bool) {
	for _, def := range c.Achievements {
		if def.Code == code {
			return def, true
		}
	}
	return AchievementDef{}, false
}

// XPRewardFor returns the base XP reward for a question or action item ID,
// 0 for unknown IDs.
func (c *Catalog) XPRewardFor(id string) int {
	if q, ok := c.FindQuestion(id); ok {
		return q.XPReward
	}
	for _, s := range c.Phase2Steps {
		if it, _, ok := s.FindActionItem(id); ok {
			return it.XPReward
		}
	}
	return 0
}
