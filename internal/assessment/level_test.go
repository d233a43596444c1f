package assessment

import "testing"

func TestLevelPointsMonotonic(t *testing.T) {
	for i := 1; i < len(LevelOrder); i++ {
		lower := LevelOrder[i-1]
		higher := LevelOrder[i]
		if lower.Points() >= higher.Points() {
			t.Errorf("points(%s)=%d should be less than points(%s)=%d",
				lower, lower.Points(), higher, higher.Points())
		}
	}
}

func TestLevelValues(t *testing.T) {
	cases := []struct {
		level  Level
		points int
		value  int
		mult   float64
	}{
		{LevelA1, 1, 1, 1.0},
		{LevelA2, 2, 2, 1.2},
		{LevelB1, 3, 3, 1.5},
		{LevelB2, 4, 4, 1.8},
		{LevelC1, 5, 5, 2.0},
	}
	for _, c := range cases {
		if got := c.level.Points(); got != c.points {
			t.Errorf("%s points = %d, want %d", c.level, got, c.points)
		}
		if got := c.level.Value(); got != c.value {
			t.Errorf("%s value = %d, want %d", c.level, got, c.value)
		}
		if got := c.level.XPMultiplier(); got != c.mult {
			t.Errorf("%s multiplier = %v, want %v", c.level, got, c.mult)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if lv, ok := ParseLevel("b2"); !ok || lv != LevelB2 {
		t.Errorf("ParseLevel(b2) = %v, %v", lv, ok)
	}
	if _, ok := ParseLevel("C2"); ok {
		t.Error("C2 is outside the game's range and must not parse")
	}
	if _, ok := ParseLevel(""); ok {
		t.Error("empty string must not parse")
	}
}

func TestLevelNext(t *testing.T) {
	if got := LevelA1.Next(); got != LevelA2 {
		t.Errorf("A1.Next() = %s, want A2", got)
	}
	if got := LevelC1.Next(); got != LevelC1 {
		t.Errorf("C1.Next() = %s, want C1 (capped)", got)
	}
}
