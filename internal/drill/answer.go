package drill

import (
	"math"
	"strconv"
	"strings"
)

// CheckAnswer compares a typed answer against the expected result.
//
// Normalization rules:
//   - Whitespace is trimmed
//   - Equivalent numeric forms are accepted ("8", "8.0", "008")
//   - Decimal answers match within half a unit of the last rounded
//     place, so "3.5" matches a result rounded to 3.50
func CheckAnswer(answer string, result float64, places int) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return false
	}
	tolerance := 0.5 * math.Pow(10, -float64(places))
	return math.Abs(v-result) < tolerance
}
