package offers

import "strings"

// MatchResult reports how a CV's soft skills cover an offer's.
type MatchResult struct {
	OfferID     string       `json:"offer_id"`
	OfferTitle  string       `json:"offer_title"`
	Rate        float64      `json:"matching_rate"`
	CVSkills    SkillProfile `json:"cv_skills"`
	OfferSkills SkillProfile `json:"offer_skills"`
}

// Analyze extracts the soft skills of cvText and of the offer and scores them.
func Analyze(offer Offer, cvText string) (*MatchResult, error) {
	if strings.TrimSpace(cvText) == "" {
		return nil, ErrEmptyCV
	}

	cv := ExtractSoftSkills(cvText)
	job := ExtractSoftSkills(offer.PlainText())

	return &MatchResult{
		OfferID:     offer.ID,
		OfferTitle:  offer.Title,
		Rate:        MatchingRate(cv, job),
		CVSkills:    cv,
		OfferSkills: job,
	}, nil
}
