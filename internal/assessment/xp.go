package assessment

// SubmissionXP is the live XP granted for a single answered question:
// the question's base reward times the level multiplier, truncated to an
// integer. Callers must apply exactly this truncation to stay in parity with
// the end-of-session recompute.
func SubmissionXP(xpReward int, level Level) int {
	return int(float64(xpReward) * level.XPMultiplier())
}

// SessionXP recomputes the total XP for a completed session:
// the sum of base rewards plus 5 points per assessment scaled by its level
// multiplier, truncated once at the end.
func SessionXP(assessments []Assessment, rewardFor func(questionID string) int) int {
	total := 0.0
	for _, a := range assessments {
		total += float64(rewardFor(a.QuestionID))
		total += a.Level.XPMultiplier() * 5
	}
	return int(total)
}
