package sentiment

// Hand-tuned valence lexicon. Values follow the familiar [-4, 4] valence
// convention; the normalization constant squashes sums into [-1, 1].
// Weighted keyword scoring rather than any learned model keeps
// classification deterministic and auditable.
const (
	normalizationAlpha = 15.0
	exclamationBoost   = 0.292
	negationFactor     = -0.74
)

var lexicon = map[string]float64{
	// positive
	"happy":          2.7,
	"happier":        2.8,
	"happiest":       3.0,
	"glad":           2.0,
	"joy":            2.8,
	"joyful":         2.9,
	"excited":        2.4,
	"exciting":       2.2,
	"love":           3.2,
	"loved":          2.9,
	"loves":          2.7,
	"lovely":         2.8,
	"like":           1.5,
	"liked":          1.6,
	"likes":          1.5,
	"enjoy":          2.2,
	"enjoyed":        2.3,
	"wonderful":      2.7,
	"amazing":        2.8,
	"awesome":        3.1,
	"great":          3.1,
	"fantastic":      2.6,
	"excellent":      2.7,
	"good":           1.9,
	"better":         1.9,
	"best":           3.2,
	"nice":           1.8,
	"beautiful":      2.9,
	"perfect":        3.0,
	"proud":          2.2,
	"grateful":       2.1,
	"thankful":       2.2,
	"thank":          1.9,
	"thanks":         1.9,
	"appreciate":     2.0,
	"relieved":       1.6,
	"fine":           0.8,
	"okay":           0.9,
	"ok":             0.9,
	"well":           1.1,
	"alright":        1.0,
	"helpful":        1.8,
	"fun":            2.3,
	"funny":          1.9,
	"smile":          2.0,
	"congratulations": 2.9,
	"celebrate":      2.4,
	"celebration":    2.4,
	"win":            2.6,
	"won":            2.7,
	"success":        2.7,
	"successful":     2.6,
	"improved":       1.9,
	"impressive":     2.3,
	"welcome":        1.5,
	"kind":           1.8,
	"friendly":       2.1,
	"energetic":      1.7,
	"hope":           1.9,
	"hopeful":        2.0,
	"calm":           1.3,
	"peaceful":       2.0,

	// negative
	"sad":           -2.1,
	"sadder":        -2.3,
	"unhappy":       -1.9,
	"depressed":     -2.7,
	"depressing":    -2.4,
	"miserable":     -2.8,
	"down":          -1.2,
	"cry":           -2.2,
	"crying":        -2.3,
	"hurt":          -2.1,
	"hurts":         -2.1,
	"lonely":        -2.2,
	"alone":         -1.1,
	"terrible":      -3.0,
	"awful":         -2.9,
	"horrible":      -2.9,
	"bad":           -2.5,
	"worse":         -2.6,
	"worst":         -3.1,
	"hate":          -2.7,
	"hated":         -2.6,
	"hates":         -2.6,
	"angry":         -2.3,
	"anger":         -2.2,
	"mad":           -2.2,
	"furious":       -2.8,
	"upset":         -1.9,
	"annoyed":       -1.8,
	"annoying":      -1.9,
	"worried":       -1.4,
	"worry":         -1.4,
	"anxious":       -1.6,
	"anxiety":       -1.8,
	"stressed":      -1.8,
	"stress":        -1.7,
	"stressful":     -1.9,
	"frustrated":    -2.0,
	"frustrating":   -2.1,
	"disappointed":  -2.2,
	"disappointing": -2.1,
	"disappoint":    -2.0,
	"afraid":        -1.9,
	"scared":        -2.0,
	"fear":          -1.9,
	"tired":         -1.2,
	"exhausted":     -1.8,
	"confused":      -1.1,
	"useless":       -1.9,
	"stupid":        -2.4,
	"dumb":          -2.2,
	"pathetic":      -2.4,
	"poor":          -1.6,
	"waste":         -1.8,
	"sucks":         -2.2,
	"suck":          -2.1,
	"fail":          -2.3,
	"failed":        -2.3,
	"failure":       -2.5,
	"wrong":         -1.7,
	"broken":        -1.7,
	"problem":       -1.3,
	"problems":      -1.4,
	"die":           -2.9,
	"dead":          -2.6,
	"kill":          -3.0,
	"sick":          -1.8,
	"pain":          -2.1,
	"painful":       -2.3,
	"hell":          -1.7,
	"damn":          -1.5,
	"shit":          -2.3,
	"fuck":          -2.5,
	"fucking":       -2.4,
	"crap":          -1.9,
	"sorry":         -0.3,
}

// boosters intensify the valence of the word they precede.
var boosters = map[string]float64{
	"very":       0.293,
	"really":     0.293,
	"so":         0.293,
	"extremely":  0.4,
	"incredibly": 0.4,
	"absolutely": 0.35,
	"totally":    0.3,
	"super":      0.3,
	"quite":      0.2,
	"pretty":     0.2,
	"somewhat":   -0.15,
	"slightly":   -0.2,
	"barely":     -0.25,
}

// negations flip the valence of a nearby scored word.
var negations = map[string]struct{}{
	"not":     {},
	"no":      {},
	"never":   {},
	"none":    {},
	"neither": {},
	"nobody":  {},
	"nothing": {},
	"isnt":    {},
	"arent":   {},
	"wasnt":   {},
	"werent":  {},
	"dont":    {},
	"doesnt":  {},
	"didnt":   {},
	"cant":    {},
	"cannot":  {},
	"couldnt": {},
	"wont":    {},
	"wouldnt": {},
	"without": {},
}
