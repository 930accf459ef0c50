package distmst

// RoundReporter receives progress updates as a distributed algorithm
// advances through its rounds (distributed Kruskal's doubling stepSize)
// or iterations (distributed Prim's gather/broadcast steps). A nil
// RoundReporter disables reporting entirely.
type RoundReporter interface {
	SetRound(round int)
}

func reportRound(rep RoundReporter, round int) {
	if rep != nil {
		rep.SetRound(round)
	}
}
