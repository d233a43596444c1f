package assessment

import (
	"strings"
	"time"
)

// Achievement codes awarded at the end of a phase-1 session.
const (
	AchQuickThinker        = "quick_thinker"
	AchConsistentPerformer = "consistent_performer"
	AchVocabularyMaster    = "vocabulary_master"
	AchGrammarExpert       = "grammar_expert"
	AchCommunicator        = "communicator"
)

// CalculateAchievements derives the set of achievement codes earned by one
// completed session. Each rule is independent.
//
// vocabulary_master and grammar_expert are deliberately loose substring
// signals over the judge's free-text sub-scores; they stop firing if judge
// phrasing changes.
func CalculateAchievements(assessments []Assessment, startTime, now time.Time) []string {
	var earned []string

	// quick_thinker: 全程少于5分钟
	if now.Sub(startTime) < 5*time.Minute {
		earned = append(earned, AchQuickThinker)
	}

	// consistent_performer: 所有题同一等级且题数大于3
	if len(assessments) > 3 {
		consistent := true
		for _, a := range assessments[1:] {
			if a.Level != assessments[0].Level {
				consistent = false
				break
			}
		}
		if consistent {
			earned = append(earned, AchConsistentPerformer)
		}
	}

	vocabHits, grammarHits := 0, 0
	communicator := false
	for _, a := range assessments {
		if strings.Contains(strings.ToLower(a.Vocabulary), "advanced") {
			vocabHits++
		}
		if strings.Contains(strings.ToLower(a.Grammar), "excellent") {
			grammarHits++
		}
		if a.QuestionType == TypeSocialInteraction && (a.Level == LevelB2 || a.Level == LevelC1) {
			communicator = true
		}
	}
	if vocabHits >= 3 {
		earned = append(earned, AchVocabularyMaster)
	}
	if grammarHits >= 3 {
		earned = append(earned, AchGrammarExpert)
	}
	if communicator {
		earned = append(earned, AchCommunicator)
	}

	return earned
}
