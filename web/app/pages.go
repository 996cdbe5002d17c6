package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/offer-board/internal/offers"
	"github.com/JaimeStill/offer-board/pkg/pagination"
	"github.com/JaimeStill/offer-board/pkg/web"
)

const (
	excerptLength  = 220
	defaultMaxForm = 256 << 10
)

type pages struct {
	sys        offers.System
	templates  *web.TemplateSet
	pagination pagination.Config
	maxForm    int64
	logger     *slog.Logger
}

type homeModel struct {
	Search   string
	Result   *pagination.PageResult[offers.Offer]
	Excerpts map[string]string
	PrevURL  string
	NextURL  string
}

type offerModel struct {
	Offer  *offers.Offer
	Skills []offers.SkillScore
	CVText string
	Match  *offers.MatchResult
	Error  string
}

func (p *pages) home(r *http.Request, _ web.Params) (any, error) {
	values := r.URL.Query()
	page := pagination.PageRequestFromQuery(values, p.pagination)
	filters := offers.FiltersFromQuery(values)

	result, err := p.sys.List(r.Context(), page, filters)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}

	m := &homeModel{
		Search:   strings.TrimSpace(values.Get("search")),
		Result:   result,
		Excerpts: make(map[string]string, len(result.Data)),
	}
	for _, o := range result.Data {
		m.Excerpts[o.ID] = o.Excerpt(excerptLength)
	}
	m.PrevURL = result.PrevQuery(values)
	m.NextURL = result.NextQuery(values)
	return m, nil
}

func (p *pages) offer(r *http.Request, params web.Params) (any, error) {
	o, err := p.find(r, params.Get("id"))
	if err != nil {
		return nil, err
	}
	return &offerModel{
		Offer:  o,
		Skills: offers.ExtractSoftSkills(o.PlainText()).Sorted(),
	}, nil
}

// match handles the CV form posted from the offer page and renders the
// offer with the matching result.
func (p *pages) match(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	limit := p.maxForm
	if limit <= 0 {
		limit = defaultMaxForm
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseForm(); err != nil {
		p.logger.Warn("cv form rejected", "id", id, "error", err)
		status := http.StatusBadRequest
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			status = http.StatusRequestEntityTooLarge
		}
		p.templates.RenderError(w, layout, status)
		return
	}

	o, err := p.find(r, id)
	if err != nil {
		p.fail(w, err)
		return
	}

	m := &offerModel{
		Offer:  o,
		Skills: offers.ExtractSoftSkills(o.PlainText()).Sorted(),
		CVText: r.PostFormValue("cv_text"),
	}

	status := http.StatusOK
	result, err := p.sys.Match(r.Context(), id, m.CVText)
	switch {
	case errors.Is(err, offers.ErrEmptyCV):
		m.Error = "Collez le texte de votre CV pour calculer la correspondance."
		status = http.StatusUnprocessableEntity
	case errors.Is(err, offers.ErrNotFound):
		p.fail(w, fmt.Errorf("%w: %w", web.ErrNotFound, err))
		return
	case err != nil:
		p.fail(w, err)
		return
	default:
		m.Match = result
	}

	data := p.templates.View("offer-detail")
	data.Params = web.Params{"id": id}
	data.Data = m

	if err := p.templates.RenderStatus(w, layout, "offer-detail", status, data); err != nil {
		p.logger.Error("view render failed", "view", "offer-detail", "error", err)
		p.templates.RenderError(w, layout, http.StatusInternalServerError)
	}
}

func (p *pages) find(r *http.Request, id string) (*offers.Offer, error) {
	o, err := p.sys.Find(r.Context(), id)
	if err != nil {
		if errors.Is(err, offers.ErrNotFound) || errors.Is(err, offers.ErrInvalidID) {
			return nil, fmt.Errorf("%w: %w", web.ErrNotFound, err)
		}
		return nil, fmt.Errorf("find offer %s: %w", id, err)
	}
	return o, nil
}

func (p *pages) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, web.ErrNotFound) {
		p.templates.RenderError(w, layout, http.StatusNotFound)
		return
	}
	p.logger.Error("cv match failed", "error", err)
	p.templates.RenderError(w, layout, http.StatusInternalServerError)
}
