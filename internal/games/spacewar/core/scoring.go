package core

// ScoreDelta maps a finished round to the change in the player's score.
func ScoreDelta(playerDead, enemyDead bool) int {
	switch {
	case playerDead && enemyDead:
		return 0
	case playerDead:
		return -1
	case enemyDead:
		return 1
	default:
		return 0
	}
}
