package game

import (
	"math/rand"
)

// roleCounts is the fixed role distribution keyed by player count.
// Every game has exactly one ringleader; all remaining players after the
// accomplices are friends.
type roleCounts struct {
	Accomplices int
	Friends     int
}

var roleTable = map[int]roleCounts{
	4:  {Accomplices: 1, Friends: 2},
	5:  {Accomplices: 1, Friends: 3},
	6:  {Accomplices: 1, Friends: 4},
	7:  {Accomplices: 2, Friends: 4},
	8:  {Accomplices: 2, Friends: 5},
	9:  {Accomplices: 3, Friends: 5},
	10: {Accomplices: 3, Friends: 6},
}

// assignRoles partitions the joined players into ringleader, accomplices,
// and friends. Called once at game start; the assignment is immutable for
// the life of the room.
func (r *Room) assignRoles() {
	shuffled := make([]string, len(r.order))
	copy(shuffled, r.order)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	counts := roleTable[len(shuffled)]

	r.ringleaderID = shuffled[0]
	r.players[shuffled[0]].Role = RoleRingleader

	r.accompliceIDs = nil
	for _, id := range shuffled[1 : 1+counts.Accomplices] {
		r.accompliceIDs = append(r.accompliceIDs, id)
		r.players[id].Role = RoleAccomplice
	}

	for _, id := range shuffled[1+counts.Accomplices:] {
		r.players[id].Role = RoleFriend
	}
}
