package sentiment

import (
	"regexp"
	"strings"
)

// Keyword tier: financial-domain word lists matched with explicit word
// boundaries, so "regains" never counts as "gains" and "uprising" never
// counts as "rising". Multi-word phrases are matched by containment.

type keywordLexicon struct {
	positive   []*regexp.Regexp
	negative   []*regexp.Regexp
	posPhrases []string
	negPhrases []string
}

func newKeywordLexicon() *keywordLexicon {
	lex := &keywordLexicon{}
	for _, w := range positiveKeywords {
		if strings.Contains(w, " ") {
			lex.posPhrases = append(lex.posPhrases, w)
			continue
		}
		lex.positive = append(lex.positive, wordPattern(w))
	}
	for _, w := range negativeKeywords {
		if strings.Contains(w, " ") {
			lex.negPhrases = append(lex.negPhrases, w)
			continue
		}
		lex.negative = append(lex.negative, wordPattern(w))
	}
	return lex
}

func wordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
}

// score returns (positiveHits - negativeHits) / max(totalHits, 1) over the
// lowercased text.
func (l *keywordLexicon) score(lower string) float64 {
	pos := countHits(lower, l.positive, l.posPhrases)
	neg := countHits(lower, l.negative, l.negPhrases)
	total := pos + neg
	if total < 1 {
		total = 1
	}
	return float64(pos-neg) / float64(total)
}

func countHits(lower string, patterns []*regexp.Regexp, phrases []string) int {
	hits := 0
	for _, re := range patterns {
		hits += len(re.FindAllStringIndex(lower, -1))
	}
	for _, p := range phrases {
		hits += strings.Count(lower, p)
	}
	return hits
}

// Headline-oriented financial sentiment terms. Inflected forms are listed
// explicitly because matching is whole-word only.
var positiveKeywords = []string{
	"soar", "soars", "soared", "soaring",
	"surge", "surges", "surged", "surging",
	"rally", "rallies", "rallied",
	"jump", "jumps", "jumped",
	"climb", "climbs", "climbed",
	"gain", "gains", "gained",
	"rise", "rises", "rose", "rising",
	"rebound", "rebounds", "rebounded",
	"beat", "beats", "tops", "exceeds", "outperform", "outperforms",
	"upgrade", "upgrades", "upgraded",
	"record", "breakout", "bullish", "buy",
	"growth", "grew", "profit", "profitable", "profits",
	"strong", "strength", "robust", "solid",
	"success", "successful", "win", "wins", "winning",
	"optimistic", "upbeat", "momentum",
	"all-time high", "better than expected", "raises guidance",
}

var negativeKeywords = []string{
	"plunge", "plunges", "plunged", "plunging",
	"plummet", "plummets", "plummeted",
	"tumble", "tumbles", "tumbled",
	"sink", "sinks", "sank",
	"slump", "slumps", "slumped",
	"crash", "crashes", "crashed",
	"drop", "drops", "dropped",
	"fall", "falls", "fell", "falling",
	"slide", "slides", "slid",
	"decline", "declines", "declined",
	"loss", "losses", "lose", "loses",
	"miss", "misses", "missed",
	"downgrade", "downgrades", "downgraded",
	"sell", "sells", "selloff", "sell-off", "bearish",
	"weak", "weakness", "poor", "worst",
	"concern", "concerns", "worry", "worries", "fear", "fears",
	"risk", "risks", "warning", "warns",
	"cut", "cuts", "layoff", "layoffs",
	"lawsuit", "investigation", "probe", "recall",
	"tariff", "tariffs", "recession", "bankruptcy", "default", "debt",
	"problem", "problems", "crisis", "trouble", "struggles",
	"worse than expected", "lowers guidance", "falls short",
}
