// Package risk turns terrain scores and hazard keywords into a readable explanation.
package risk

import (
	"strings"

	"golang.org/x/text/language"
)

// Scores are the terrain inputs of one hazard record. A nil score means the
// survey did not cover it.
type Scores struct {
	Elev  *float64
	Slope *float64
	River *float64
}

// Clause identifies one fixed sentence of an explanation.
type Clause int

const (
	ClauseHighFlood Clause = iota
	ClausePossibleInundation
	ClauseLandslideDanger
	ClauseHeavyRainCaution
	ClauseLowRisk
	ClauseModerateRisk
	ClauseScoresMissing
	ClauseFloodKeyword
	ClauseLandslideKeyword
	ClauseTsunamiKeyword
	ClauseNoMatch
)

type terrainRule struct {
	matches func(elev, slope float64) bool
	clause  Clause
}

// terrainRules is evaluated top to bottom; the first match wins.
var terrainRules = []terrainRule{
	{func(elev, slope float64) bool { return elev >= 25 && slope <= 10 }, ClauseHighFlood},
	{func(elev, slope float64) bool { return elev >= 18 && slope <= 15 }, ClausePossibleInundation},
	{func(_, slope float64) bool { return slope >= 20 }, ClauseLandslideDanger},
	{func(_, slope float64) bool { return slope >= 12 }, ClauseHeavyRainCaution},
	{func(elev, slope float64) bool { return elev <= 13 && slope <= 10 }, ClauseLowRisk},
	{func(float64, float64) bool { return true }, ClauseModerateRisk},
}

type keywordRule struct {
	keywords []string // matched as substrings; ASCII keywords ignore case
	clause   Clause
}

// keywordRules are all applied, in order.
var keywordRules = []keywordRule{
	{[]string{"洪水", "flood"}, ClauseFloodKeyword},
	{[]string{"土砂", "崩壊", "landslide", "collapse"}, ClauseLandslideKeyword},
	{[]string{"津波", "tsunami"}, ClauseTsunamiKeyword},
}

// Clauses returns the ordered clauses explaining a record. The terrain clause
// is always first; an empty description only means no keyword clauses.
func Clauses(scores Scores, description string) []Clause {
	clauses := make([]Clause, 0, 4)
	clauses = append(clauses, terrainClause(scores))

	lowered := strings.ToLower(description)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				clauses = append(clauses, rule.clause)

				break
			}
		}
	}

	return clauses
}

func terrainClause(scores Scores) Clause {
	if scores.Elev == nil || scores.Slope == nil || *scores.Elev == 0 || *scores.Slope == 0 {
		return ClauseScoresMissing
	}

	elev, slope := *scores.Elev, *scores.Slope
	for _, rule := range terrainRules {
		if rule.matches(elev, slope) {
			return rule.clause
		}
	}

	return ClauseModerateRisk
}

// Explainer renders clauses with a phrasebook.
type Explainer struct {
	book *Phrasebook
}

// NewExplainer returns an explainer for tag, falling back to Japanese.
func NewExplainer(tag language.Tag) *Explainer {
	return &Explainer{book: PhrasebookFor(tag)}
}

// Explain builds the explanation for a hazard record. The result depends
// only on the arguments and the explainer's phrasebook.
func (e *Explainer) Explain(scores Scores, description string) string {
	return e.book.Render(Clauses(scores, description))
}

// NoMatch is the message shown when no record lies within range.
func (e *Explainer) NoMatch() string {
	return e.book.Render([]Clause{ClauseNoMatch})
}

// Language reports the phrasebook language.
func (e *Explainer) Language() language.Tag {
	return e.book.Tag
}
