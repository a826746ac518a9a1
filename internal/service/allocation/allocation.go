// Package allocation splits a fixed amount of money across target campaigns
// in proportion to each target's unmet funding need. All arithmetic is in
// int64 minor units, so the returned mapping always sums to the input total
// exactly.
package allocation

import "math/big"

// Target is one candidate destination for reallocated funds.
type Target struct {
	ID     int
	Raised int64
	Goal   int64
}

func need(t Target) int64 {
	if t.Goal > t.Raised {
		return t.Goal - t.Raised
	}
	return 0
}

// Allocate distributes total across targets. targets must be non-empty and
// total non-negative; callers enforce both before invoking.
//
// When the combined need fits inside total, every target receives its full
// need and the surplus is spread evenly across all targets. Otherwise each
// needy target receives a share proportional to its need, truncated to the
// minor unit. Either way, leftover units from division go to the first target
// with unmet need, or to the first target in input order when every need is
// met, which keeps the sum exact.
func Allocate(total int64, targets []Target) map[int]int64 {
	result := make(map[int]int64, len(targets))
	for _, t := range targets {
		result[t.ID] = 0
	}
	if total == 0 {
		return result
	}

	// The combined need and the proportional products can exceed int64 for
	// extreme minor-unit amounts, so both run through big.Int. Each final
	// share is bounded by total and fits back into int64.
	totalNeed := new(big.Int)
	for _, t := range targets {
		totalNeed.Add(totalNeed, big.NewInt(need(t)))
	}

	var allocated int64
	if totalNeed.Cmp(big.NewInt(total)) <= 0 {
		for _, t := range targets {
			result[t.ID] = need(t)
		}
		allocated = totalNeed.Int64()

		surplus := total - allocated
		share := surplus / int64(len(targets))
		if share > 0 {
			for _, t := range targets {
				result[t.ID] += share
				allocated += share
			}
		}
	} else {
		for _, t := range targets {
			n := need(t)
			if n == 0 {
				continue
			}
			share := new(big.Int).Mul(big.NewInt(total), big.NewInt(n))
			share.Quo(share, totalNeed)
			result[t.ID] = share.Int64()
			allocated += share.Int64()
		}
	}

	if remainder := total - allocated; remainder > 0 {
		idx := 0
		for i, t := range targets {
			if need(t) > result[t.ID] {
				idx = i
				break
			}
		}
		result[targets[idx].ID] += remainder
	}

	return result
}
