package game

import "log"

// rotateScout advances the scout marker to the next eligible player in join
// order. The previous round's scout is never eligible; in rooms with more
// than five players the previous bodyguard is excluded too. The walk is
// bounded at twice the player count; if every candidate is excluded the
// exclusions are relaxed and the plain successor is used.
func (r *Room) rotateScout() {
	currentIndex := r.orderIndex(r.currentScout)
	nextIndex := (currentIndex + 1) % len(r.order)

	for attempts := 0; attempts < len(r.order)*2; attempts++ {
		candidate := r.order[nextIndex]
		if r.eligibleScout(candidate) {
			r.currentScout = candidate
			return
		}
		nextIndex = (nextIndex + 1) % len(r.order)
	}

	// No candidate survives the exclusions (possible in small rooms once
	// disconnections shrink the roster). Relax everything but the
	// connectivity requirement and take the first live successor.
	log.Printf("room %s: no eligible scout under rotation constraints, falling back to successor", r.Code)
	nextIndex = (currentIndex + 1) % len(r.order)
	for i := 0; i < len(r.order); i++ {
		if r.players[r.order[nextIndex]].Connected {
			r.currentScout = r.order[nextIndex]
			return
		}
		nextIndex = (nextIndex + 1) % len(r.order)
	}
	r.currentScout = r.order[(currentIndex+1)%len(r.order)]
}

func (r *Room) eligibleScout(candidate string) bool {
	if !r.players[candidate].Connected {
		return false
	}
	if candidate == r.prevScout {
		return false
	}
	if len(r.order) > 5 && candidate == r.prevBodyguard {
		return false
	}
	return true
}

func (r *Room) orderIndex(playerID string) int {
	for i, id := range r.order {
		if id == playerID {
			return i
		}
	}
	return 0
}
