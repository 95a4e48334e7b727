package season

// Stats is the aggregate season record for a club or team, derived from
// completed matches. Points follow the standard 3/1/0 rule.
type Stats struct {
	Played         int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}
