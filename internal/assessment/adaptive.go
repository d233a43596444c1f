package assessment

import "time"

// ReviewIntervals 间隔复习天数阶梯，按连续答对次数取档
var ReviewIntervals = []int{1, 3, 7, 14, 30}

const (
	minEaseFactor = 1.3
	maxEaseFactor = 3.0
)

// Performance is the rolling statistic for one (user, activity) pair.
type Performance struct {
	Attempts             int
	SuccessRate          float64
	MasteryLevel         float64
	ConsecutiveSuccesses int
	IntervalDays         int
	EaseFactor           float64
	NextReview           time.Time
}

// NewPerformance returns the zero state before any attempt.
func NewPerformance() Performance {
	return Performance{EaseFactor: 2.5}
}

// RecordOutcome folds one outcome into the rolling statistic.
//
// The success rate is a weighted running average over the previous attempt
// count, not a recompute. Mastery is rate*(1+attempts*0.1) capped at 1.0.
// Success climbs one rung of the interval ladder; failure resets to the
// first rung and zeroes the consecutive-success count.
func RecordOutcome(p Performance, success bool, now time.Time) Performance {
	outcome := 0.0
	if success {
		outcome = 1.0
	}
	oldN := float64(p.Attempts)
	p.Attempts++
	p.SuccessRate = (p.SuccessRate*oldN + outcome) / float64(p.Attempts)

	p.MasteryLevel = p.SuccessRate * (1 + float64(p.Attempts)*0.1)
	if p.MasteryLevel > 1.0 {
		p.MasteryLevel = 1.0
	}

	if p.EaseFactor == 0 {
		p.EaseFactor = 2.5
	}
	if success {
		p.ConsecutiveSuccesses++
		idx := p.ConsecutiveSuccesses - 1
		if idx >= len(ReviewIntervals) {
			idx = len(ReviewIntervals) - 1
		}
		p.IntervalDays = ReviewIntervals[idx]
		p.EaseFactor += 0.1
	} else {
		p.ConsecutiveSuccesses = 0
		p.IntervalDays = ReviewIntervals[0]
		p.EaseFactor -= 0.2
	}
	if p.EaseFactor > maxEaseFactor {
		p.EaseFactor = maxEaseFactor
	}
	if p.EaseFactor < minEaseFactor {
		p.EaseFactor = minEaseFactor
	}

	p.NextReview = now.AddDate(0, 0, p.IntervalDays)
	return p
}

// Difficulty recommendations from recent performance.
const (
	RecommendIncrease = "increase_difficulty"
	RecommendDecrease = "decrease_difficulty"
	RecommendMaintain = "maintain"
)

// Recommendation holds the difficulty advice plus a confidence flag.
type Recommendation struct {
	Action        string  `json:"action"`
	AvgSuccess    float64 `json:"avgSuccess"`
	LowConfidence bool    `json:"lowConfidence"`
}

// RecommendDifficulty averages the success rates of the most recent records
// (at most 5). Fewer than 3 records always yields "maintain" at low
// confidence.
func RecommendDifficulty(recentRates []float64) Recommendation {
	if len(recentRates) > 5 {
		recentRates = recentRates[:5]
	}
	if len(recentRates) < 3 {
		return Recommendation{Action: RecommendMaintain, LowConfidence: true}
	}

	sum := 0.0
	for _, r := range recentRates {
		sum += r
	}
	avg := sum / float64(len(recentRates))

	rec := Recommendation{AvgSuccess: avg}
	switch {
	case avg >= 0.8:
		rec.Action = RecommendIncrease
	case avg <= 0.4:
		rec.Action = RecommendDecrease
	default:
		rec.Action = RecommendMaintain
	}
	return rec
}
