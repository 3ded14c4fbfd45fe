package projection

import "math"

// skillSeed maps a skill and its position to [0,1). It depends only on the
// first rune, the rune count and the index.
func skillSeed(skill string, index int) float64 {
	runes := []rune(skill)
	first := 0
	if len(runes) > 0 {
		first = int(runes[0])
	}
	v := (first + 7*len(runes) + 3*index) % 100
	if v < 0 {
		v += 100
	}
	return float64(v) / 100
}

func existingLevel(skill string, index int) int {
	return 55 + int(math.Floor(20*skillSeed(skill, index)))
}

func newSkillLevel(skill string, index int) int {
	return 20 + int(math.Floor(15*skillSeed(skill, index)))
}
