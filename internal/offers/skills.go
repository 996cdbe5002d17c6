package offers

import (
	"math"
	"sort"
	"strings"
)

// SoftSkill is a weighted behavioural skill detected by keyword.
type SoftSkill struct {
	Name     string
	Label    string
	Weight   float64
	Keywords []string
}

// defaultWeight applies to skills missing from SoftSkills.
const defaultWeight = 0.1

// SoftSkills lists the detected skills in display order.
var SoftSkills = []SoftSkill{
	{
		Name: "communication", Label: "Communication", Weight: 0.2,
		Keywords: []string{"communication", "présentation", "écoute", "expression", "dialogue", "rédaction", "oral", "écrit", "relationnel", "contact"},
	},
	{
		Name: "leadership", Label: "Leadership", Weight: 0.18,
		Keywords: []string{"leadership", "management", "encadrement", "direction", "guide", "chef", "responsable", "manager", "animateur", "coordinateur"},
	},
	{
		Name: "travail_equipe", Label: "Travail d'équipe", Weight: 0.16,
		Keywords: []string{"équipe", "collaboration", "coopération", "collectif", "partenariat", "groupe", "team", "collaboratif", "ensemble", "solidaire"},
	},
	{
		Name: "adaptabilite", Label: "Adaptabilité", Weight: 0.14,
		Keywords: []string{"adaptation", "flexibilité", "polyvalence", "évolution", "changement", "flexible", "polyvalent", "évolutif", "mobile", "agile"},
	},
	{
		Name: "creativite", Label: "Créativité", Weight: 0.12,
		Keywords: []string{"créativité", "innovation", "imagination", "original", "inventif", "créatif", "innovant", "créatrice", "inspiration", "artistique"},
	},
	{
		Name: "resolution_problemes", Label: "Résolution de problèmes", Weight: 0.1,
		Keywords: []string{"résolution", "problème", "solution", "analyse", "diagnostic", "résoudre", "analyser", "diagnostiquer", "investiguer", "dépannage"},
	},
	{
		Name: "organisation", Label: "Organisation", Weight: 0.1,
		Keywords: []string{"organisation", "planification", "gestion", "structure", "méthode", "organisé", "planifier", "gérer", "structurer", "méthodique"},
	},
}

var skillIndex = func() map[string]SoftSkill {
	idx := make(map[string]SoftSkill, len(SoftSkills))
	for _, s := range SoftSkills {
		idx[s.Name] = s
	}
	return idx
}()

// SkillProfile maps skill names to their share of keyword hits, in percent.
type SkillProfile map[string]float64

// SkillScore is one entry of a SkillProfile, for ordered display.
type SkillScore struct {
	Name    string
	Label   string
	Percent float64
}

// Sorted returns the profile's entries by descending percentage, then name.
func (p SkillProfile) Sorted() []SkillScore {
	out := make([]SkillScore, 0, len(p))
	for name, pct := range p {
		label := name
		if s, ok := skillIndex[name]; ok {
			label = s.Label
		}
		out = append(out, SkillScore{Name: name, Label: label, Percent: pct})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ExtractSoftSkills counts, for each skill, how many of its keywords occur
// in text (case-insensitive substring match, once per keyword). Each skill's
// count is returned as a percentage of all hits. No hits yields an empty profile.
func ExtractSoftSkills(text string) SkillProfile {
	lower := strings.ToLower(text)

	counts := make(map[string]int)
	total := 0
	for _, skill := range SoftSkills {
		for _, kw := range skill.Keywords {
			if strings.Contains(lower, kw) {
				counts[skill.Name]++
				total++
			}
		}
	}

	profile := make(SkillProfile, len(counts))
	if total == 0 {
		return profile
	}
	for name, n := range counts {
		profile[name] = float64(n) / float64(total) * 100
	}
	return profile
}

// MatchingRate scores how well cv covers job: the weighted mean over the
// job's skills of min(cv/job, 1), as a percentage rounded to two decimals.
// A job without skills scores 0.
func MatchingRate(cv, job SkillProfile) float64 {
	if len(job) == 0 {
		return 0
	}

	var score, weights float64
	for name, jobPct := range job {
		weight := defaultWeight
		if s, ok := skillIndex[name]; ok {
			weight = s.Weight
		}

		ratio := 0.0
		if jobPct > 0 {
			ratio = math.Min(cv[name]/jobPct, 1)
		}

		score += ratio * weight
		weights += weight
	}

	if weights == 0 {
		return 0
	}
	return round2(score / weights * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
