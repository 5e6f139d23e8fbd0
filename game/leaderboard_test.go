package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func seatFor(id string, score, joinOrder, questionIndex int) *playerSeat {
	return &playerSeat{
		state: PlayerState{
			Id:                   id,
			Username:             id,
			Score:                score,
			CurrentQuestionIndex: questionIndex,
		},
		joinOrder: joinOrder,
	}
}

func TestBuildLeaderboard_OrdersByScore(t *testing.T) {
	t.Parallel()

	seats := []*playerSeat{
		seatFor("low", 100, 0, 1),
		seatFor("high", 300, 1, 3),
		seatFor("mid", 200, 2, 2),
	}

	entries := BuildLeaderboard(seats)

	want := []LeaderboardEntry{
		{PlayerId: "high", Rank: 1, Username: "high", Score: 300},
		{PlayerId: "mid", Rank: 2, Username: "mid", Score: 200},
		{PlayerId: "low", Rank: 3, Username: "low", Score: 100},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("leaderboard mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLeaderboard_TieBreaks(t *testing.T) {
	t.Parallel()

	t.Run("earlier join wins the tie", func(t *testing.T) {
		t.Parallel()
		seats := []*playerSeat{
			seatFor("late", 200, 3, 2),
			seatFor("early", 200, 1, 2),
		}

		entries := BuildLeaderboard(seats)

		assert.Equal(t, "early", entries[0].PlayerId)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "late", entries[1].PlayerId)
		assert.Equal(t, 2, entries[1].Rank)
	})

	t.Run("lower question index breaks remaining ties", func(t *testing.T) {
		t.Parallel()
		seats := []*playerSeat{
			seatFor("behind", 200, 1, 5),
			seatFor("ahead", 200, 1, 2),
		}

		entries := BuildLeaderboard(seats)

		assert.Equal(t, "ahead", entries[0].PlayerId)
		assert.Equal(t, "behind", entries[1].PlayerId)
	})
}

func TestBuildLeaderboard_Idempotent(t *testing.T) {
	t.Parallel()

	seats := []*playerSeat{
		seatFor("a", 100, 0, 1),
		seatFor("b", 100, 1, 1),
		seatFor("c", 500, 2, 4),
	}

	first := BuildLeaderboard(seats)
	second := BuildLeaderboard(seats)

	assert.Equal(t, first, second)

	// The input order must not have been disturbed.
	assert.Equal(t, "a", seats[0].state.Id)
	assert.Equal(t, "b", seats[1].state.Id)
	assert.Equal(t, "c", seats[2].state.Id)
}

func TestBuildLeaderboard_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, BuildLeaderboard(nil))
}
