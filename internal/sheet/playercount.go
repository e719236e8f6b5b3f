package sheet

type PlayerCount struct {
	Players   int
	Townsfolk int
	Outsiders int
	Minions   int
	Demons    int
}

var playerCounts = []PlayerCount{
	{Players: 5, Townsfolk: 3, Outsiders: 0, Minions: 1, Demons: 1},
	{Players: 6, Townsfolk: 3, Outsiders: 1, Minions: 1, Demons: 1},
	{Players: 7, Townsfolk: 5, Outsiders: 0, Minions: 1, Demons: 1},
	{Players: 8, Townsfolk: 5, Outsiders: 1, Minions: 1, Demons: 1},
	{Players: 9, Townsfolk: 5, Outsiders: 2, Minions: 1, Demons: 1},
	{Players: 10, Townsfolk: 7, Outsiders: 0, Minions: 2, Demons: 1},
	{Players: 11, Townsfolk: 7, Outsiders: 1, Minions: 2, Demons: 1},
	{Players: 12, Townsfolk: 7, Outsiders: 2, Minions: 2, Demons: 1},
	{Players: 13, Townsfolk: 9, Outsiders: 0, Minions: 3, Demons: 1},
	{Players: 14, Townsfolk: 9, Outsiders: 1, Minions: 3, Demons: 1},
	{Players: 15, Townsfolk: 9, Outsiders: 2, Minions: 3, Demons: 1},
}

// PlayerCounts is the standard setup table for 5 to 15 players.
func PlayerCounts() []PlayerCount {
	out := make([]PlayerCount, len(playerCounts))
	copy(out, playerCounts)
	return out
}
