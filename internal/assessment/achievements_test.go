package assessment

import (
	"testing"
	"time"
)

func has(list []string, code string) bool {
	for _, c := range list {
		if c == code {
			return true
		}
	}
	return false
}

func TestQuickThinker(t *testing.T) {
	start := time.Now()
	fast := start.Add(4 * time.Minute)
	slow := start.Add(6 * time.Minute)

	if !has(CalculateAchievements(nil, start, fast), AchQuickThinker) {
		t.Error("4 minutes must earn quick_thinker")
	}
	if has(CalculateAchievements(nil, start, slow), AchQuickThinker) {
		t.Error("6 minutes must not earn quick_thinker")
	}
}

func TestConsistentPerformer(t *testing.T) {
	start := time.Now()
	now := start.Add(10 * time.Minute)

	same4 := []Assessment{
		mk(LevelB1, TypeDialogue), mk(LevelB1, TypeDialogue),
		mk(LevelB1, TypeDialogue), mk(LevelB1, TypeDialogue),
	}
	if !has(CalculateAchievements(same4, start, now), AchConsistentPerformer) {
		t.Error("4 identical levels must earn consistent_performer")
	}

	// 恰好3题不满足 count > 3
	same3 := same4[:3]
	if has(CalculateAchievements(same3, start, now), AchConsistentPerformer) {
		t.Error("3 assessments must not earn consistent_performer")
	}

	mixed := append([]Assessment{}, same4...)
	mixed[2] = mk(LevelA2, TypeDialogue)
	if has(CalculateAchievements(mixed, start, now), AchConsistentPerformer) {
		t.Error("mixed levels must not earn consistent_performer")
	}
}

func TestVocabularyMasterAndGrammarExpert(t *testing.T) {
	start := time.Now()
	now := start.Add(10 * time.Minute)

	var seq []Assessment
	for i := 0; i < 3; i++ {
		seq = append(seq, Assessment{
			Level:        LevelB1,
			QuestionType: TypeDialogue,
			Vocabulary:   "Shows Advanced word choice",
			Grammar:      "Excellent use of subordinate clauses",
		})
	}
	earned := CalculateAchievements(seq, start, now)
	if !has(earned, AchVocabularyMaster) {
		t.Error("3 'advanced' vocabulary notes must earn vocabulary_master")
	}
	if !has(earned, AchGrammarExpert) {
		t.Error("3 'excellent' grammar notes must earn grammar_expert")
	}

	earned2 := CalculateAchievements(seq[:2], start, now)
	if has(earned2, AchVocabularyMaster) || has(earned2, AchGrammarExpert) {
		t.Error("2 matches are below the threshold of 3")
	}
}

func TestCommunicator(t *testing.T) {
	start := time.Now()
	now := start.Add(10 * time.Minute)

	social := []Assessment{mk(LevelB2, TypeSocialInteraction)}
	if !has(CalculateAchievements(social, start, now), AchCommunicator) {
		t.Error("B2 social interaction must earn communicator")
	}

	low := []Assessment{mk(LevelB1, TypeSocialInteraction)}
	if has(CalculateAchievements(low, start, now), AchCommunicator) {
		t.Error("B1 social interaction must not earn communicator")
	}

	wrongType := []Assessment{mk(LevelC1, TypeDialogue)}
	if has(CalculateAchievements(wrongType, start, now), AchCommunicator) {
		t.Error("dialogue questions must not earn communicator")
	}
}
