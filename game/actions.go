package game

// actionDelta is what ResolveAction hands back to the room actor. The
// resolver never touches player state itself.
type actionDelta struct {
	newHealth  int
	eliminated bool
}

func clampHealth(health int) int {
	if health < 0 {
		return 0
	}
	if health > MAX_HEALTH {
		return MAX_HEALTH
	}
	return health
}

// ResolveAction applies an attack or heal magnitude to the target's health
// and reports whether the target drops out of the match.
func ResolveAction(targetHealth int, actionType ActionType, magnitude int) actionDelta {
	var newHealth int
	switch actionType {
	case ACTION_ATTACK:
		newHealth = clampHealth(targetHealth - magnitude)
	case ACTION_HEAL:
		newHealth = clampHealth(targetHealth + magnitude)
	default:
		newHealth = clampHealth(targetHealth)
	}
	return actionDelta{newHealth: newHealth, eliminated: newHealth == 0}
}
