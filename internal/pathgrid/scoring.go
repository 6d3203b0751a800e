package pathgrid

// ScoreBreakdown itemizes a finished path-finder round. Times are in
// seconds.
type ScoreBreakdown struct {
	BaseScore   int     `json:"baseScore"`
	TimeBonus   int     `json:"timeBonus"`
	MovePenalty int     `json:"movePenalty"`
	FinalScore  int     `json:"finalScore"`
	Efficiency  float64 `json:"efficiency"`
}

const pathBaseScore = 100

// Score computes the path-finder score. Finishes under a minute earn a flat
// bonus; anything else inside the limit earns a prorated one. Moves beyond
// the optimal budget cost 10 each, and the final score never drops below 10.
// With zero moves played, efficiency is reported as 100.
func Score(completionTime, timeLimit, totalMoves, optimalMoves int) ScoreBreakdown {
	timeBonus := 0
	switch {
	case completionTime < 60:
		timeBonus = 50
	case completionTime < timeLimit:
		timeBonus = 25 * (timeLimit - completionTime) / timeLimit
	}

	movePenalty := 0
	if totalMoves > optimalMoves {
		movePenalty = (totalMoves - optimalMoves) * 10
	}

	finalScore := pathBaseScore + timeBonus - movePenalty
	if finalScore < 10 {
		finalScore = 10
	}

	efficiency := 100.0
	if totalMoves > 0 {
		efficiency = float64(optimalMoves) / float64(totalMoves) * 100
	}

	return ScoreBreakdown{
		BaseScore:   pathBaseScore,
		TimeBonus:   timeBonus,
		MovePenalty: movePenalty,
		FinalScore:  finalScore,
		Efficiency:  efficiency,
	}
}
