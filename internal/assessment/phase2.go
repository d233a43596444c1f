package assessment

// StepPassScore Phase2 每步的默认通过分数线
const StepPassScore = 20

// StepDecision is the outcome of completing all action items in a step.
type StepDecision struct {
	StepID         string `json:"stepId"`
	StepScore      int    `json:"stepScore"`
	Passed         bool   `json:"passed"`
	NextStepID     string `json:"nextStepId,omitempty"`
	Phase2Complete bool   `json:"phase2Complete"`
	NeedsRemedial  bool   `json:"needsRemedial"`
	RemedialLevel  Level  `json:"remedialLevel,omitempty"`
}

// EvaluateStep decides what happens once every action item of a step has been
// answered. Score at or above passScore advances to the next step in order
// (or completes phase 2 at the end); anything lower routes to the remedial
// set for the score's band.
func EvaluateStep(stepID string, stepScore, passScore int, stepOrder []string) StepDecision {
	d := StepDecision{StepID: stepID, StepScore: stepScore}

	if stepScore >= passScore {
		d.Passed = true
		next := nextStep(stepID, stepOrder)
		if next == "" {
			d.Phase2Complete = true
		} else {
			d.NextStepID = next
		}
		return d
	}

	d.NeedsRemedial = true
	d.RemedialLevel = RemedialLevelForScore(stepScore)
	return d
}

// RemedialLevelForScore maps a failing step score to the remedial band. This
// is deliberately not the aggregator banding.
func RemedialLevelForScore(score int) Level {
	switch {
	case score >= 20:
		return LevelB2 // 达标分不应走到这里，保底
	case score >= 15:
		return LevelB1
	case score >= 10:
		return LevelA2
	default:
		return LevelA1
	}
}

func nextStep(stepID string, order []string) string {
	for i, id := range order {
		if id == stepID && i+1 < len(order) {
			return order[i+1]
		}
	}
	return ""
}

// RemedialDecision is the outcome of one remedial activity submission.
type RemedialDecision struct {
	ActivityID       string `json:"activityId"`
	Score            int    `json:"score"`
	Passed           bool   `json:"passed"`
	NextIndex        int    `json:"nextIndex"`
	RemedialComplete bool   `json:"remedialComplete"`
}

// AdvanceRemedial records one remedial submission. The activity index moves
// forward on every submission: the set completes on array exhaustion, not on
// aggregate pass (practice-until-exposed). A below-threshold score is still
// recorded as not passed and can be retried by resubmitting the same index.
func AdvanceRemedial(activityID string, score, threshold, activityIndex, totalActivities int) RemedialDecision {
	d := RemedialDecision{
		ActivityID: activityID,
		Score:      score,
		Passed:     score >= threshold,
		NextIndex:  activityIndex + 1,
	}
	if d.NextIndex >= totalActivities {
		d.RemedialComplete = true
	}
	return d
}
