package models

// Tier1Keywords marks top-flight competitions. Matched case-insensitively
// against the competition name.
var Tier1Keywords = []string{
	"premier league", "la liga", "laliga", "serie a", "bundesliga",
	"ligue 1", "champions league", "world cup", "euro 20", "copa america",
}

// Tier2Keywords marks strong secondary competitions.
var Tier2Keywords = []string{
	"europa league", "conference league", "fa cup", "copa del rey",
	"coppa italia", "dfb pokal", "coupe de france", "championship",
	"eredivisie", "primeira liga", "super lig", "pro league",
	"nations league", "club world cup",
}

// PowerhouseClubs is the curated elite-club list used to bias markets
// and promote fixtures to the intermediate tier.
var PowerhouseClubs = []string{
	"real madrid", "barcelona", "atletico madrid",
	"manchester city", "manchester united", "liverpool", "arsenal",
	"chelsea", "tottenham",
	"bayern munich", "bayern", "borussia dortmund", "leverkusen",
	"juventus", "inter milan", "internazionale", "ac milan", "napoli", "roma",
	"paris saint-germain", "psg", "marseille",
	"ajax", "porto", "benfica", "sporting cp", "celtic", "galatasaray",
}

// Style keyword lists, checked in order against the competition name:
// high-scoring first, then defensive, then balanced. First match wins;
// anything unmatched is balanced.

var HighScoringKeywords = []string{
	"bundesliga", "eredivisie", "champions league", "championship",
	"super lig", "pro league", "2. bundesliga",
}

var DefensiveKeywords = []string{
	"serie a", "ligue 1", "la liga", "laliga", "primeira liga",
	"copa del rey", "coppa italia",
}

var BalancedKeywords = []string{
	"premier league", "europa league", "world cup", "euro 20",
	"nations league", "fa cup",
}
