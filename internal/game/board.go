package game

// CoralToken is the occupancy marker for Mr. Coral, the game's central
// figure. He travels with every approved mission team.
const CoralToken = "mr_coral"

// Location is the per-location board state.
type Location struct {
	Name      string
	Trap      *TrapTile
	Clues     []ClueCard
	Occupants []string // player ids plus CoralToken
	Visited   bool
}

// setupBoard draws the plot and safe locations, places trap tiles, and
// deals two clue cards to every location. Called once at game start with
// the room lock held.
func (r *Room) setupBoard() {
	for _, name := range Locations {
		r.locations[name] = &Location{Name: name}
	}

	// Plot location is the first shuffled location, safe location the
	// second. The safe location is public and never trapped.
	shuffledLocations := shuffleStrings(Locations)
	r.plotLocation = shuffledLocations[0]
	r.safeLocation = shuffledLocations[1]

	shuffledWeapons := shuffleStrings(Weapons)
	r.plotWeapon = shuffledWeapons[0]

	// Clue pools. The plot location, safe location, and plot weapon never
	// appear as clues; each pool is padded with two instant-disarm cards
	// and one no-clue card.
	locationClues := make([]ClueCard, 0, len(shuffledLocations)+1)
	for _, name := range shuffledLocations[2:] {
		locationClues = append(locationClues, newClueCard(ClueLocation, name))
	}
	locationClues = append(locationClues,
		newClueCard(ClueInstantDisarm, ""),
		newClueCard(ClueInstantDisarm, ""),
		newClueCard(ClueNone, ""))

	weaponClues := make([]ClueCard, 0, len(shuffledWeapons)+2)
	for _, name := range shuffledWeapons[1:] {
		weaponClues = append(weaponClues, newClueCard(ClueWeapon, name))
	}
	weaponClues = append(weaponClues,
		newClueCard(ClueInstantDisarm, ""),
		newClueCard(ClueInstantDisarm, ""),
		newClueCard(ClueNone, ""))

	locationClues = shuffleClues(locationClues)
	weaponClues = shuffleClues(weaponClues)

	// Every non-safe location gets one clue of each pool and a trap; the
	// safe location gets the leftover pair and no trap.
	i := 0
	for _, name := range Locations {
		if name == r.safeLocation {
			continue
		}
		loc := r.locations[name]
		loc.Clues = append(loc.Clues, locationClues[i], weaponClues[i])
		tile := r.traps.TileFor(len(r.order))
		loc.Trap = &tile
		i++
	}
	safe := r.locations[r.safeLocation]
	safe.Clues = append(safe.Clues, locationClues[8], weaponClues[8])

	r.TrapsRemaining = len(Locations) - 1
}

// clearOccupancy empties every location and resets player positions at the
// end of a round.
func (r *Room) clearOccupancy() {
	for _, loc := range r.locations {
		loc.Occupants = nil
	}
	for _, p := range r.players {
		p.Location = ""
	}
}
