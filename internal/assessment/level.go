package assessment

// Level is a CEFR proficiency band. The game uses A1 through C1.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
)

// LevelOrder lists the bands from lowest to highest.
var LevelOrder = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1}

var levelPoints = map[Level]int{
	LevelA1: 1,
	LevelA2: 2,
	LevelB1: 3,
	LevelB2: 4,
	LevelC1: 5,
}

var levelXPMultiplier = map[Level]float64{
	LevelA1: 1.0,
	LevelA2: 1.2,
	LevelB1: 1.5,
	LevelB2: 1.8,
	LevelC1: 2.0,
}

// Valid reports whether l is one of the five known bands.
func (l Level) Valid() bool {
	_, ok := levelPoints[l]
	return ok
}

// Points returns the point value for a band. Unknown bands score as A1.
func (l Level) Points() int {
	if p, ok := levelPoints[l]; ok {
		return p
	}
	return levelPoints[LevelA1]
}

// Value maps a band to its numeric rank 1..5 (A1=1 ... C1=5).
func (l Level) Value() int {
	return l.Points()
}

// XPMultiplier returns the per-level XP multiplier.
func (l Level) XPMultiplier() float64 {
	if m, ok := levelXPMultiplier[l]; ok {
		return m
	}
	return levelXPMultiplier[LevelA1]
}

// Next returns the band one step above l, capped at C1.
func (l Level) Next() Level {
	for i, lv := range LevelOrder {
		if lv == l && i+1 < len(LevelOrder) {
			return LevelOrder[i+1]
		}
	}
	return l
}

// ParseLevel normalizes judge output like "b2" into a Level.
// The bool result is false for anything outside A1..C1.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "A1", "a1":
		return LevelA1, true
	case "A2", "a2":
		return LevelA2, true
	case "B1", "b1":
		return LevelB1, true
	case "B2", "b2":
		return LevelB2, true
	case "C1", "c1":
		return LevelC1, true
	}
	return "", false
}
