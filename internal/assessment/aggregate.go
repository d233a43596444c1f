package assessment

// AggregateLevel combines a completed question sequence into one overall
// band. Each assessment's numeric value is weighted by its question type; the
// weighted average is banded back with half-open intervals. An empty sequence
// returns B1 — a documented default, not an error.
func AggregateLevel(assessments []Assessment, weights map[QuestionType]float64) Level {
	if len(assessments) == 0 {
		return LevelB1
	}

	var sum, weightSum float64
	for _, a := range assessments {
		w, ok := weights[a.QuestionType]
		if !ok {
			w = 1.0
		}
		sum += float64(a.Level.Value()) * w
		weightSum += w
	}
	if weightSum == 0 {
		return LevelB1
	}
	return BandAverage(sum / weightSum)
}

// BandAverage maps a continuous average back to a band. Boundaries are
// half-open: exactly 1.5 is A2, exactly 2.5 is B1, and so on.
func BandAverage(avg float64) Level {
	switch {
	case avg < 1.5:
		return LevelA1
	case avg < 2.5:
		return LevelA2
	case avg < 3.5:
		return LevelB1
	case avg < 4.5:
		return LevelB2
	default:
		return LevelC1
	}
}

// SkillLevels aggregates per-skill sub-sequences with the same weighting.
// Assessments without a skill key are grouped under their question type.
func SkillLevels(assessments []Assessment, skills map[string][]int, weights map[QuestionType]float64) map[string]Level {
	out := make(map[string]Level, len(skills))
	for skill, idxs := range skills {
		sub := make([]Assessment, 0, len(idxs))
		for _, i := range idxs {
			if i >= 0 && i < len(assessments) {
				sub = append(sub, assessments[i])
			}
		}
		out[skill] = AggregateLevel(sub, weights)
	}
	return out
}
