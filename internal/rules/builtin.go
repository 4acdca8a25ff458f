package rules

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
	Lizard   Choice = "lizard"
	Spock    Choice = "spock"
)

// RPSLS is the five-choice default: rock, paper, scissors, lizard, spock.
func RPSLS() *Table {
	return MustTable("rpsls",
		[]Choice{Rock, Paper, Scissors, Lizard, Spock},
		map[Choice][]Choice{
			Rock:     {Scissors, Lizard},
			Paper:    {Rock, Spock},
			Scissors: {Paper, Lizard},
			Lizard:   {Paper, Spock},
			Spock:    {Rock, Scissors},
		})
}

// Classic is plain rock, paper, scissors.
func Classic() *Table {
	return MustTable("rps",
		[]Choice{Rock, Paper, Scissors},
		map[Choice][]Choice{
			Rock:     {Scissors},
			Paper:    {Rock},
			Scissors: {Paper},
		})
}
