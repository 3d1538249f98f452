package astar

// IsGoal reports whether pos lies in the open square window of half-width
// step centred on goal. It is a tolerance test: pos need not equal goal.
func IsGoal(pos, goal Position, step int) bool {
	return pos.X > goal.X-step && pos.X < goal.X+step &&
		pos.Y > goal.Y-step && pos.Y < goal.Y+step
}
