// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"sort"

	"github.com/potus-party/server/models"
)

// electWinners resolves POTUS and Vice-POTUS from the players' current
// scores. pick chooses an index in [0, n) and is only consulted when the
// top score is tied.
//
// The two branches intentionally differ: with a unique winner, every
// other player with a positive score becomes Vice-POTUS; with a tie, the
// title is shared only among the tied players and the rest get nothing.
func electWinners(players []models.Player, pick func(n int) int) models.Winners {
	if len(players) == 0 {
		return models.Winners{VicePotuses: []models.Player{}}
	}

	sorted := make([]models.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	highest := sorted[0].Score

	var top []models.Player
	for _, p := range sorted {
		if p.Score == highest {
			top = append(top, p)
		}
	}

	if len(top) == 1 {
		potus := top[0]
		vice := []models.Player{}
		for _, p := range sorted[1:] {
			if p.Score > 0 {
				vice = append(vice, p)
			}
		}
		return models.Winners{Potus: &potus, VicePotuses: vice}
	}

	potus := top[pick(len(top))]
	vice := []models.Player{}
	for _, p := range top {
		if p.ID != potus.ID {
			vice = append(vice, p)
		}
	}
	return models.Winners{Potus: &potus, VicePotuses: vice}
}
