package analysis

// Phrase pools for each analysis branch. Pool entries are fixed
// templates; the entry for a given match is selected by the stable
// team-name checksum, so the same fixture always renders the same
// sentence. Order matters: reordering a pool changes published output.

// dominantHomePool expects (home, away).
var dominantHomePool = []string{
	"%s have the squad depth to overwhelm %s from the first whistle.",
	"Everything points to %s controlling possession and pinning %s deep.",
	"%s at home against %s is the kind of mismatch the market underprices.",
	"Expect %s to dictate the tempo and force %s into chasing the game.",
}

// underdogValuePool expects (away, home).
var underdogValuePool = []string{
	"%s travel well and can punish %s on the counter.",
	"The visitors %s carry far more quality than the hosts %s suggest.",
	"%s away to %s looks like the value side of this market.",
	"Don't be fooled by home advantage: %s outclass %s in every line.",
}

// goalsPool expects (home, away).
var goalsPool = []string{
	"Both %s and %s attack in numbers, so expect an open, end-to-end game.",
	"%s and %s have leaky back lines; goals at both ends are live.",
	"This league rarely produces cagey games and %s against %s won't be the exception.",
	"High pressing from %s and %s should create chances all afternoon.",
}

// tightPool expects (home, away).
var tightPool = []string{
	"%s and %s both grind out results; one goal may decide it.",
	"Expect a tactical stalemate between %s and %s with few clear chances.",
	"%s against %s has low-scoring draw written all over it.",
	"Neither %s nor %s will open up first; patience is the play here.",
}

// balancedPool is index-aligned with the three default picks: entry i
// pairs with defaultPicks[i]. Expects (home, away).
var balancedPool = []string{
	"An evenly matched contest, but %s should edge %s over ninety minutes.",
	"Little separates %s and %s; the goals markets offer the safer angle.",
	"%s and %s are hard to split, which makes both nets a fair shout.",
}
