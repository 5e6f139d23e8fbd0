package game

import "math"

// answerEpsilon is the fixed tolerance for comparing submitted values.
// Generated questions always have integer solutions, but division-style
// equations may legitimately produce fractional ones, so exact float
// equality is not safe.
const answerEpsilon = 1e-6

// EvaluateAnswer checks a submitted answer against the player's currently
// issued question. It is pure: the room actor owns every state change that
// follows from the verdict.
func EvaluateAnswer(issued Question, submitted PlayerAnswer) (bool, error) {
	if submitted.QuestionId != issued.Id {
		return false, ErrStaleQuestion
	}

	if len(submitted.Answer) != len(issued.Answer) {
		return false, nil
	}

	for i, expected := range issued.Answer {
		if math.Abs(submitted.Answer[i]-expected) > answerEpsilon {
			return false, nil
		}
	}
	return true, nil
}
