package allocation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sum(m map[int]int64) int64 {
	var s int64
	for _, v := range m {
		s += v
	}
	return s
}

func TestAllocate_SingleTarget(t *testing.T) {
	// Need is 5000 but the whole 10000 must land somewhere.
	result := Allocate(10000, []Target{{ID: 1, Raised: 0, Goal: 5000}})
	assert.Equal(t, map[int]int64{1: 10000}, result)
}

func TestAllocate_ExactScarcity(t *testing.T) {
	// 50.00 split across needs of 80.00 and 20.00.
	result := Allocate(5000, []Target{
		{ID: 1, Raised: 0, Goal: 8000},
		{ID: 2, Raised: 0, Goal: 2000},
	})
	assert.Equal(t, int64(4000), result[1])
	assert.Equal(t, int64(1000), result[2])
}

func TestAllocate_ZeroTotal(t *testing.T) {
	result := Allocate(0, []Target{
		{ID: 1, Raised: 0, Goal: 100},
		{ID: 2, Raised: 0, Goal: 200},
	})
	assert.Equal(t, map[int]int64{1: 0, 2: 0}, result)
}

func TestAllocate_FullNeedWithSurplus(t *testing.T) {
	result := Allocate(1000, []Target{
		{ID: 1, Raised: 50, Goal: 150},  // need 100
		{ID: 2, Raised: 0, Goal: 200},   // need 200
		{ID: 3, Raised: 500, Goal: 400}, // overfunded, need 0
	})

	assert.Equal(t, int64(1000), sum(result))
	assert.GreaterOrEqual(t, result[1], int64(100))
	assert.GreaterOrEqual(t, result[2], int64(200))
	// Surplus of 700 spreads 233 each, leftover cent to the first target.
	assert.Equal(t, int64(334), result[1])
	assert.Equal(t, int64(433), result[2])
	assert.Equal(t, int64(233), result[3])
}

func TestAllocate_AllTargetsFullyFunded(t *testing.T) {
	result := Allocate(301, []Target{
		{ID: 1, Raised: 100, Goal: 100},
		{ID: 2, Raised: 300, Goal: 200},
	})
	assert.Equal(t, int64(301), sum(result))
	assert.Equal(t, int64(151), result[1])
	assert.Equal(t, int64(150), result[2])
}

func TestAllocate_ScarcityTruncationRemainder(t *testing.T) {
	// 100 across three equal needs of 100: each gets 33, remainder 1 goes to
	// the first target with unmet need.
	result := Allocate(100, []Target{
		{ID: 1, Raised: 0, Goal: 100},
		{ID: 2, Raised: 0, Goal: 100},
		{ID: 3, Raised: 0, Goal: 100},
	})
	assert.Equal(t, int64(100), sum(result))
	assert.Equal(t, int64(34), result[1])
	assert.Equal(t, int64(33), result[2])
	assert.Equal(t, int64(33), result[3])
}

func TestAllocate_ScarcitySkipsFundedTargets(t *testing.T) {
	result := Allocate(100, []Target{
		{ID: 1, Raised: 500, Goal: 400}, // need 0
		{ID: 2, Raised: 0, Goal: 300},
		{ID: 3, Raised: 100, Goal: 200},
	})
	assert.Equal(t, int64(100), sum(result))
	assert.Equal(t, int64(0), result[1])
	for id, alloc := range result {
		assert.GreaterOrEqual(t, alloc, int64(0), "target %d", id)
	}
}

func TestAllocate_Conservation(t *testing.T) {
	// Randomized totals and target lists always sum exactly.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		total := rng.Int63n(1_000_000)
		n := 1 + rng.Intn(10)
		targets := make([]Target, 0, n)
		for j := 0; j < n; j++ {
			targets = append(targets, Target{
				ID:     j + 1,
				Raised: rng.Int63n(10_000),
				Goal:   1 + rng.Int63n(20_000),
			})
		}

		result := Allocate(total, targets)

		assert.Equal(t, total, sum(result), "total=%d targets=%+v", total, targets)
		assert.Len(t, result, n)

		var totalNeed int64
		for _, tgt := range targets {
			totalNeed += need(tgt)
		}
		if totalNeed <= total {
			for _, tgt := range targets {
				assert.GreaterOrEqual(t, result[tgt.ID], need(tgt))
			}
		} else {
			for _, alloc := range result {
				assert.GreaterOrEqual(t, alloc, int64(0))
			}
		}
	}
}

func TestAllocate_ExtremeAmountsConserve(t *testing.T) {
	// total * need would overflow int64 here; conservation must still hold.
	result := Allocate(4_000_000_000_000_000_000, []Target{
		{ID: 1, Raised: 0, Goal: 3_000_000_000_000_000_000},
		{ID: 2, Raised: 0, Goal: 3_000_000_000_000_000_000},
	})
	assert.Equal(t, int64(4_000_000_000_000_000_000), sum(result))
	assert.Equal(t, int64(2_000_000_000_000_000_000), result[1])
	assert.Equal(t, int64(2_000_000_000_000_000_000), result[2])
}

func TestAllocate_CombinedNeedBeyondInt64(t *testing.T) {
	// The two needs together exceed the int64 range.
	result := Allocate(1_000_000_000_000_000_000, []Target{
		{ID: 1, Raised: 0, Goal: 8_000_000_000_000_000_000},
		{ID: 2, Raised: 0, Goal: 8_000_000_000_000_000_000},
	})
	assert.Equal(t, int64(1_000_000_000_000_000_000), sum(result))
	assert.Equal(t, int64(500_000_000_000_000_000), result[1])
	assert.Equal(t, int64(500_000_000_000_000_000), result[2])
}

func TestAllocate_Deterministic(t *testing.T) {
	targets := []Target{
		{ID: 1, Raised: 10, Goal: 500},
		{ID: 2, Raised: 20, Goal: 700},
	}
	first := Allocate(333, targets)
	second := Allocate(333, targets)
	assert.Equal(t, first, second)
}
