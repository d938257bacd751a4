package game

import "testing"

func TestRotateScout_SkipsPreviousScout(t *testing.T) {
	room := startedRoom(t, 5)
	room.currentScout = room.order[0]
	room.prevScout = room.order[1]
	room.prevBodyguard = ""

	room.rotateScout()

	// order[1] is the immediate successor but was last round's scout.
	if room.currentScout != room.order[2] {
		t.Errorf("expected scout to skip to seat 2, got seat of %s", room.currentScout)
	}
}

func TestRotateScout_BodyguardExclusionOnlyInLargeGames(t *testing.T) {
	t.Run("six players exclude previous bodyguard", func(t *testing.T) {
		room := startedRoom(t, 6)
		room.currentScout = room.order[0]
		room.prevScout = room.order[1]
		room.prevBodyguard = room.order[2]

		room.rotateScout()
		if room.currentScout != room.order[3] {
			t.Errorf("expected seat 3, got %s", room.currentScout)
		}
	})

	t.Run("five players do not exclude previous bodyguard", func(t *testing.T) {
		room := startedRoom(t, 5)
		room.currentScout = room.order[0]
		room.prevScout = ""
		room.prevBodyguard = room.order[1]

		room.rotateScout()
		if room.currentScout != room.order[1] {
			t.Errorf("expected seat 1, got %s", room.currentScout)
		}
	})
}

func TestRotateScout_SkipsDisconnected(t *testing.T) {
	room := startedRoom(t, 5)
	room.currentScout = room.order[0]
	room.prevScout = ""
	room.prevBodyguard = ""
	room.players[room.order[1]].Connected = false

	room.rotateScout()
	if room.currentScout != room.order[2] {
		t.Errorf("expected disconnected seat to be skipped, got %s", room.currentScout)
	}
}

func TestRotateScout_FallbackWhenAllExcluded(t *testing.T) {
	// Every connected player is excluded: the previous scout and previous
	// bodyguard are the only two left standing. The exclusions relax and
	// the first live successor takes the marker.
	room := startedRoom(t, 6)
	room.currentScout = room.order[0]
	room.prevScout = room.order[1]
	room.prevBodyguard = room.order[2]
	room.players[room.order[0]].Connected = false
	room.players[room.order[3]].Connected = false
	room.players[room.order[4]].Connected = false
	room.players[room.order[5]].Connected = false

	room.rotateScout()

	if room.currentScout != room.order[1] {
		t.Errorf("expected fallback to the live successor, got %s", room.currentScout)
	}
}
