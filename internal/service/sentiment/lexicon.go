package sentiment

// Word valences follow the usual sentiment-lexicon convention of [-4, 4].
// The list leans toward market and commodity news vocabulary since that is
// what the scorer sees.
var lexicon = map[string]float64{
	// positive
	"gain":        1.8,
	"gains":       1.8,
	"rally":       2.1,
	"rallies":     2.1,
	"surge":       2.3,
	"surges":      2.3,
	"soar":        2.5,
	"soars":       2.5,
	"rise":        1.5,
	"rises":       1.5,
	"rose":        1.5,
	"climb":       1.6,
	"climbs":      1.6,
	"boost":       1.7,
	"boosts":      1.7,
	"recovery":    1.9,
	"recover":     1.8,
	"rebound":     1.9,
	"rebounds":    1.9,
	"strong":      1.7,
	"strength":    1.6,
	"growth":      1.8,
	"grow":        1.5,
	"profit":      2.0,
	"profits":     2.0,
	"bullish":     2.4,
	"optimism":    2.2,
	"optimistic":  2.1,
	"upbeat":      1.9,
	"record":      1.2,
	"demand":      0.9,
	"agreement":   1.1,
	"deal":        1.0,
	"stability":   1.3,
	"stable":      1.2,
	"improve":     1.6,
	"improves":    1.6,
	"improved":    1.6,
	"positive":    1.8,
	"good":        1.9,
	"great":       2.5,
	"win":         1.9,
	"wins":        1.9,
	"success":     2.2,
	"successful":  2.2,
	"hope":        1.4,
	"hopes":       1.4,
	"opportunity": 1.5,

	// negative
	"loss":        -1.9,
	"losses":      -1.9,
	"fall":        -1.5,
	"falls":       -1.5,
	"fell":        -1.5,
	"drop":        -1.6,
	"drops":       -1.6,
	"dropped":     -1.6,
	"plunge":      -2.5,
	"plunges":     -2.5,
	"plummet":     -2.6,
	"plummets":    -2.6,
	"slump":       -2.2,
	"slumps":      -2.2,
	"crash":       -2.9,
	"crashes":     -2.9,
	"decline":     -1.7,
	"declines":    -1.7,
	"weak":        -1.6,
	"weakness":    -1.6,
	"bearish":     -2.4,
	"pessimism":   -2.2,
	"pessimistic": -2.1,
	"fear":        -2.0,
	"fears":       -2.0,
	"worry":       -1.8,
	"worries":     -1.8,
	"concern":     -1.4,
	"concerns":    -1.4,
	"crisis":      -2.6,
	"recession":   -2.5,
	"shortage":    -1.8,
	"shortages":   -1.8,
	"cut":         -1.1,
	"cuts":        -1.1,
	"sanctions":   -1.7,
	"war":         -2.9,
	"conflict":    -2.3,
	"disruption":  -1.9,
	"disruptions": -1.9,
	"volatile":    -1.3,
	"volatility":  -1.2,
	"uncertainty": -1.6,
	"uncertain":   -1.5,
	"risk":        -1.2,
	"risks":       -1.2,
	"glut":        -1.5,
	"oversupply":  -1.4,
	"collapse":    -2.8,
	"collapses":   -2.8,
	"slide":       -1.5,
	"slides":      -1.5,
	"tumble":      -2.1,
	"tumbles":     -2.1,
	"bad":         -1.9,
	"negative":    -1.8,
	"halt":        -1.3,
	"halts":       -1.3,
	"embargo":     -1.8,
	"inflation":   -1.3,
}

// negations flip the valence of the word they precede.
var negations = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"without": true,
	"barely":  true,
	"hardly":  true,
	"neither": true,
	"nor":     true,
	"cannot":  true,
	"isnt":    true,
	"wasnt":   true,
	"dont":    true,
	"doesnt":  true,
	"didnt":   true,
	"wont":    true,
}

// boosters scale the valence of the word they precede.
var boosters = map[string]float64{
	"very":      1.3,
	"extremely": 1.5,
	"sharply":   1.4,
	"slightly":  0.7,
	"somewhat":  0.8,
	"deeply":    1.4,
	"severely":  1.5,
}
