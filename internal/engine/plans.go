package engine

// attackerFor returns the index of the fighter acting in the given round.
// The faster fighter acts; on equal speed fighter 0 takes odd rounds and
// fighter 1 even rounds, so nobody acts twice in a row on a tie.
func (bc *battleContext) attackerFor(round int) int {
	s0, s1 := bc.fighters[0].Stats.Speed, bc.fighters[1].Stats.Speed
	switch {
	case s0 > s1:
		return 0
	case s1 > s0:
		return 1
	case round%2 == 1:
		return 0
	default:
		return 1
	}
}
