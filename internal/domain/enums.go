package domain

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles  StrategyTier = iota // naked / hidden singles
	StrategyPairs                        // naked pairs
	StrategyAdvanced                     // pointing pairs, box-line reduction
)

// Outcome classifies what Solve had to do with the input grid.
type Outcome int

const (
	OutcomeSolved        Outcome = iota // search produced a new solution
	OutcomeAlreadySolved                // input was fully and validly filled
	OutcomeInvalid                      // input was fully filled but breaks a unit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadySolved:
		return "already solved and valid"
	case OutcomeInvalid:
		return "filled but invalid"
	default:
		return "solved"
	}
}
