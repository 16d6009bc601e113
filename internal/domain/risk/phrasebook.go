package risk

import (
	"strings"

	"golang.org/x/text/language"
)

// Phrasebook holds the sentence for every clause in one language.
type Phrasebook struct {
	Tag       language.Tag
	Separator string
	Sentences map[Clause]string
}

// Render joins the sentences of clauses in order.
func (p *Phrasebook) Render(clauses []Clause) string {
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		parts = append(parts, p.Sentences[c])
	}

	return strings.Join(parts, p.Separator)
}

var japanese = &Phrasebook{
	Tag: language.Japanese,
	Sentences: map[Clause]string{
		ClauseHighFlood:          "標高が低く、海や河川に近い地域で洪水リスクが高い傾向にあります。",
		ClausePossibleInundation: "標高がやや低く、浸水被害の可能性があります。",
		ClauseLandslideDanger:    "傾斜が急で、土砂災害の危険があります。",
		ClauseHeavyRainCaution:   "やや傾斜地にあり、雨量が多いときは土砂崩れに注意が必要です。",
		ClauseLowRisk:            "高台に位置し、比較的安定した地形です。災害リスクは低めです。",
		ClauseModerateRisk:       "特定の災害リスクは中程度です。",
		ClauseScoresMissing:      "地形スコア情報が未登録のため、簡易的な評価です。",
		ClauseFloodKeyword:       "洪水ハザードマップ上では浸水可能性が示されています。",
		ClauseLandslideKeyword:   "土砂崩れ・斜面崩壊の危険も考えられます。",
		ClauseTsunamiKeyword:     "津波の可能性があり、注意が必要です。",
		ClauseNoMatch:            "一致する地点が見つかりませんでした。",
	},
}

var english = &Phrasebook{
	Tag:       language.English,
	Separator: " ",
	Sentences: map[Clause]string{
		ClauseHighFlood:          "Low elevation close to the sea or rivers; flood risk tends to be high.",
		ClausePossibleInundation: "Slightly low elevation; inundation damage is possible.",
		ClauseLandslideDanger:    "Steep slope; there is a danger of landslides.",
		ClauseHeavyRainCaution:   "Moderately sloped ground; watch for landslides in heavy rain.",
		ClauseLowRisk:            "Elevated, relatively stable terrain; disaster risk is low.",
		ClauseModerateRisk:       "The specific disaster risk is moderate.",
		ClauseScoresMissing:      "Terrain scores are not registered, so this is a simplified assessment.",
		ClauseFloodKeyword:       "The flood hazard map indicates possible inundation.",
		ClauseLandslideKeyword:   "Landslides and slope collapse are also possible.",
		ClauseTsunamiKeyword:     "A tsunami is possible; please take care.",
		ClauseNoMatch:            "No matching location was found.",
	},
}

var (
	phrasebooks = []*Phrasebook{japanese, english}
	matcher     = language.NewMatcher([]language.Tag{language.Japanese, language.English})
)

// PhrasebookFor returns the best phrasebook for tag. Japanese is the default.
func PhrasebookFor(tag language.Tag) *Phrasebook {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return japanese
	}

	return phrasebooks[idx]
}

// ParseAcceptLanguage picks a tag from an Accept-Language header, falling
// back to def when the header is empty or unparsable.
func ParseAcceptLanguage(header string, def language.Tag) language.Tag {
	if header == "" {
		return def
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return def
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return def
	}

	return phrasebooks[idx].Tag
}
