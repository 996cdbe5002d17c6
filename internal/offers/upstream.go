package offers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// upstreamOffer is one entry of an offer search response.
type upstreamOffer struct {
	ID                 string `json:"id"`
	Intitule           string `json:"intitule"`
	Description        string `json:"description"`
	DateCreation       string `json:"dateCreation"`
	RomeCode           string `json:"romeCode"`
	RomeLibelle        string `json:"romeLibelle"`
	TypeContrat        string `json:"typeContrat"`
	TypeContratLibelle string `json:"typeContratLibelle"`
	Entreprise         struct {
		Nom string `json:"nom"`
	} `json:"entreprise"`
	LieuTravail struct {
		Libelle string `json:"libelle"`
	} `json:"lieuTravail"`
	OrigineOffre struct {
		URLOrigine string `json:"urlOrigine"`
	} `json:"origineOffre"`
}

type upstreamResponse struct {
	Resultats []upstreamOffer `json:"resultats"`
}

// DecodeUpstream reads an offer search response ({"resultats": [...]}) and
// converts each entry. Entries without an ID are skipped.
func DecodeUpstream(r io.Reader) ([]Offer, error) {
	var resp upstreamResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}

	offers := make([]Offer, 0, len(resp.Resultats))
	for _, u := range resp.Resultats {
		if strings.TrimSpace(u.ID) == "" {
			continue
		}
		o, err := u.offer()
		if err != nil {
			return nil, fmt.Errorf("offer %q: %w", u.ID, err)
		}
		offers = append(offers, o)
	}
	return offers, nil
}

func (u upstreamOffer) offer() (Offer, error) {
	o := Offer{
		ID:           strings.TrimSpace(u.ID),
		Title:        strings.TrimSpace(u.Intitule),
		Description:  u.Description,
		Company:      u.Entreprise.Nom,
		Location:     u.LieuTravail.Libelle,
		ContractType: u.TypeContratLibelle,
		RomeCode:     u.RomeCode,
		RomeLabel:    u.RomeLibelle,
		URL:          u.OrigineOffre.URLOrigine,
	}
	if o.ContractType == "" {
		o.ContractType = u.TypeContrat
	}

	if u.DateCreation != "" {
		t, err := time.Parse(time.RFC3339, u.DateCreation)
		if err != nil {
			return Offer{}, fmt.Errorf("date %q: %w", u.DateCreation, err)
		}
		t = t.UTC()
		o.PublishedAt = &t
	}

	return o, nil
}
