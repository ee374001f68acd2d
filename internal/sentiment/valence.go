package sentiment

import (
	"math"
	"strings"
	"unicode"
)

// General valence tier: a compact VADER-style scorer. Each token carries a
// valence on a roughly [-4, 4] scale; negators within the three preceding
// tokens flip and dampen it, boosters amplify or soften it with distance
// decay, and the summed valence is normalized into [-1, 1].

const (
	negationFactor  = -0.74
	boosterDecay2   = 0.95
	boosterDecay3   = 0.90
	normalizerAlpha = 15.0
	negationScope   = 3
)

// compoundScore returns the normalized valence of the text in [-1, 1].
func compoundScore(lower string) float64 {
	tokens := tokenize(lower)
	sum := 0.0
	for i, tok := range tokens {
		v, ok := valences[tok]
		if !ok {
			continue
		}
		boost := 0.0
		negated := false
		for back := 1; back <= negationScope && i-back >= 0; back++ {
			prev := tokens[i-back]
			if b, ok := boosters[prev]; ok {
				switch back {
				case 2:
					b *= boosterDecay2
				case 3:
					b *= boosterDecay3
				}
				boost += b
			}
			if negators[prev] {
				negated = true
			}
		}
		if v > 0 {
			v += boost
		} else {
			v -= boost
		}
		if negated {
			v *= negationFactor
		}
		sum += v
	}
	if sum == 0 {
		return 0
	}
	compound := sum / math.Sqrt(sum*sum+normalizerAlpha)
	return clampScore(compound)
}

func clampScore(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// tokenize splits text into lowercase word tokens, keeping apostrophes so
// contractions like "isn't" survive as single tokens.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\'' {
			current.WriteRune(r)
		} else if current.Len() > 0 {
			tokens = append(tokens, strings.Trim(current.String(), "'"))
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, strings.Trim(current.String(), "'"))
	}
	return tokens
}

var negators = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"isn't": true, "wasn't": true, "aren't": true, "weren't": true,
	"don't": true, "doesn't": true, "didn't": true, "won't": true,
	"can't": true, "cannot": true, "couldn't": true, "without": true,
	"hardly": true, "barely": true,
}

var boosters = map[string]float64{
	"very": 0.293, "extremely": 0.293, "hugely": 0.293, "huge": 0.293,
	"massive": 0.293, "massively": 0.293, "sharply": 0.293, "significantly": 0.293,
	"strongly": 0.293, "really": 0.193,
	"slightly": -0.293, "somewhat": -0.293, "marginally": -0.293,
	"modestly": -0.293, "barely": -0.293,
}

// Valence lexicon tuned for financial headlines.
var valences = map[string]float64{
	// positive
	"soar": 3.1, "soars": 3.1, "soared": 3.1, "soaring": 3.1,
	"surge": 2.9, "surges": 2.9, "surged": 2.9, "surging": 2.9,
	"rally": 2.3, "rallies": 2.3, "rallied": 2.3,
	"jump": 2.2, "jumps": 2.2, "jumped": 2.2,
	"climb": 1.8, "climbs": 1.8, "climbed": 1.8,
	"gain": 1.6, "gains": 1.6, "gained": 1.6,
	"rise": 1.5, "rises": 1.5, "rose": 1.5, "rising": 1.5,
	"rebound": 1.8, "rebounds": 1.8, "rebounded": 1.8,
	"beat": 1.9, "beats": 1.9, "tops": 1.7, "exceeds": 1.7,
	"upgrade": 2.0, "upgrades": 2.0, "upgraded": 2.0,
	"record": 1.6, "bullish": 2.4, "breakout": 1.8,
	"growth": 1.5, "grew": 1.4, "profit": 1.6, "profits": 1.6, "profitable": 1.7,
	"strong": 1.7, "strength": 1.5, "robust": 1.7, "solid": 1.4,
	"success": 2.0, "successful": 2.0, "win": 1.9, "wins": 1.9, "winning": 1.9,
	"good": 1.5, "great": 2.3, "excellent": 2.8, "best": 2.6,
	"optimistic": 1.8, "upbeat": 1.8,
	// negative
	"plunge": -3.1, "plunges": -3.1, "plunged": -3.1, "plunging": -3.1,
	"plummet": -3.2, "plummets": -3.2, "plummeted": -3.2,
	"tumble": -2.6, "tumbles": -2.6, "tumbled": -2.6,
	"sink": -2.3, "sinks": -2.3, "sank": -2.3,
	"slump": -2.4, "slumps": -2.4, "slumped": -2.4,
	"crash": -3.0, "crashes": -3.0, "crashed": -3.0,
	"drop": -1.8, "drops": -1.8, "dropped": -1.8,
	"fall": -1.6, "falls": -1.6, "fell": -1.6, "falling": -1.6,
	"slide": -1.7, "slides": -1.7, "slid": -1.7,
	"decline": -1.6, "declines": -1.6, "declined": -1.6,
	"loss": -1.7, "losses": -1.7, "lose": -1.7, "loses": -1.7,
	"miss": -1.6, "misses": -1.6, "missed": -1.6,
	"downgrade": -1.9, "downgrades": -1.9, "downgraded": -1.9,
	"sell": -0.9, "selloff": -2.2, "bearish": -2.4,
	"weak": -1.6, "weakness": -1.5, "poor": -1.8, "worst": -2.6,
	"concern": -1.3, "concerns": -1.3, "worry": -1.5, "worries": -1.5,
	"fear": -1.8, "fears": -1.8, "risk": -1.1, "risks": -1.1,
	"warning": -1.6, "warns": -1.6, "cut": -1.2, "cuts": -1.2,
	"layoff": -2.0, "layoffs": -2.0, "lawsuit": -1.8, "investigation": -1.5,
	"tariff": -1.0, "tariffs": -1.0, "recession": -2.4, "bankruptcy": -3.3,
	"default": -2.2, "debt": -1.1,
	"problem": -1.4, "problems": -1.4, "crisis": -2.5, "trouble": -1.8,
	"bad": -1.6, "terrible": -2.7,
}
