package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAnswer(t *testing.T) {
	t.Parallel()

	issued := Question{
		Id:         "q1",
		Equation:   []string{"3", "+", "?", "=", "10"},
		Difficulty: DIFFICULTY_EASY,
		Answer:     []float64{7},
	}

	testCases := []struct {
		desc        string
		submitted   PlayerAnswer
		wantCorrect bool
		wantErr     error
	}{
		{
			desc:        "correct answer",
			submitted:   PlayerAnswer{QuestionId: "q1", Answer: []float64{7}},
			wantCorrect: true,
		},
		{
			desc:        "wrong value",
			submitted:   PlayerAnswer{QuestionId: "q1", Answer: []float64{8}},
			wantCorrect: false,
		},
		{
			desc:        "wrong length",
			submitted:   PlayerAnswer{QuestionId: "q1", Answer: []float64{7, 7}},
			wantCorrect: false,
		},
		{
			desc:        "empty answer",
			submitted:   PlayerAnswer{QuestionId: "q1", Answer: nil},
			wantCorrect: false,
		},
		{
			desc:        "within epsilon",
			submitted:   PlayerAnswer{QuestionId: "q1", Answer: []float64{7.0000001}},
			wantCorrect: true,
		},
		{
			desc:        "outside epsilon",
			submitted:   PlayerAnswer{QuestionId: "q1", Answer: []float64{7.001}},
			wantCorrect: false,
		},
		{
			desc:      "stale question id",
			submitted: PlayerAnswer{QuestionId: "q0", Answer: []float64{7}},
			wantErr:   ErrStaleQuestion,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			correct, err := EvaluateAnswer(issued, tc.submitted)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCorrect, correct)
		})
	}
}

func TestEvaluateAnswer_MultiBlank(t *testing.T) {
	t.Parallel()

	issued := Question{
		Id:     "q2",
		Answer: []float64{3, 4},
	}

	correct, err := EvaluateAnswer(issued, PlayerAnswer{QuestionId: "q2", Answer: []float64{3, 4}})
	require.NoError(t, err)
	assert.True(t, correct)

	correct, err = EvaluateAnswer(issued, PlayerAnswer{QuestionId: "q2", Answer: []float64{4, 3}})
	require.NoError(t, err)
	assert.False(t, correct)
}

// Evaluating the same pair twice must yield the same verdict.
func TestEvaluateAnswer_Deterministic(t *testing.T) {
	t.Parallel()

	issued := Question{Id: "q3", Answer: []float64{12}}
	submitted := PlayerAnswer{QuestionId: "q3", Answer: []float64{12}}

	first, err1 := EvaluateAnswer(issued, submitted)
	second, err2 := EvaluateAnswer(issued, submitted)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}
