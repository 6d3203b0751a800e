package maze

// ScoreBreakdown itemizes a finished key-finder round. Times are in
// seconds.
type ScoreBreakdown struct {
	BaseScore      int     `json:"baseScore"`
	TimeBonus      int     `json:"timeBonus"`
	MovePenalty    int     `json:"movePenalty"`
	RestartPenalty int     `json:"restartPenalty"`
	FinalScore     int     `json:"finalScore"`
	Efficiency     float64 `json:"efficiency"`
}

const mazeBaseScore = 1000

// Score computes the key-finder score. The time bonus steps on the time
// left on the clock (timeLimit − completionTime), moves over the optimal
// path cost 5 each, every wall-hit restart costs 20, and the final score
// never drops below 50. With no optimal reference the efficiency is
// reported as 0 — deliberately the opposite default from the path-finder
// score, matching each game's observed behavior.
func Score(completionTime, timeLimit, totalMoves, optimalMoves, restartCount int) ScoreBreakdown {
	timeRemaining := timeLimit - completionTime
	var timeBonus int
	switch {
	case timeRemaining < 60:
		timeBonus = 200
	case timeRemaining < 120:
		timeBonus = 150
	case timeRemaining < 180:
		timeBonus = 100
	default:
		timeBonus = 50
	}

	movePenalty := 0
	if totalMoves > optimalMoves {
		movePenalty = (totalMoves - optimalMoves) * 5
	}
	restartPenalty := restartCount * 20

	finalScore := mazeBaseScore + timeBonus - movePenalty - restartPenalty
	if finalScore < 50 {
		finalScore = 50
	}

	efficiency := 0.0
	if optimalMoves > 0 && totalMoves > 0 {
		efficiency = float64(optimalMoves) / float64(totalMoves) * 100
	}

	return ScoreBreakdown{
		BaseScore:      mazeBaseScore,
		TimeBonus:      timeBonus,
		MovePenalty:    movePenalty,
		RestartPenalty: restartPenalty,
		FinalScore:     finalScore,
		Efficiency:     efficiency,
	}
}
