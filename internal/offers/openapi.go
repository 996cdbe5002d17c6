package offers

import "github.com/JaimeStill/offer-board/pkg/openapi"

const idPattern = "^[A-Za-z0-9_-]{1,32}$"

type spec struct {
	List  *openapi.Operation
	Find  *openapi.Operation
	Save  *openapi.Operation
	Match *openapi.Operation
}

// Spec contains OpenAPI operation definitions for all offer endpoints.
var Spec = spec{
	List: &openapi.Operation{
		OperationID: "listOffers",
		Summary:     "List offers",
		Description: "Returns a paginated list of offers, newest first unless sorted otherwise",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Matches title, company, or description", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending", false),
			openapi.QueryParam("contract_type", "string", "Filter by contract type (exact)", false),
			openapi.QueryParam("location", "string", "Filter by location (contains)", false),
			openapi.QueryParam("rome_code", "string", "Filter by ROME code (exact)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of offers", "OfferPageResult"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	Find: &openapi.Operation{
		OperationID: "findOffer",
		Summary:     "Find offer by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Upstream offer identifier", idPattern),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Offer", "Offer"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Save: &openapi.Operation{
		OperationID: "saveOffer",
		Summary:     "Create or replace offer",
		Description: "Stores the offer under the path ID. An ID in the body is ignored",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Upstream offer identifier", idPattern),
		},
		RequestBody: openapi.RequestBodyJSON("Offer", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Stored offer", "Offer"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Match: &openapi.Operation{
		OperationID: "matchOffer",
		Summary:     "Match a CV against an offer",
		Description: "Scores the soft skills found in the CV text against those of the offer",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Upstream offer identifier", idPattern),
		},
		RequestBody: openapi.RequestBodyJSON("MatchRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Matching result", "MatchResult"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas referenced by the offer operations.
func (spec) Schemas() map[string]*openapi.Schema {
	timestamp := &openapi.Schema{Type: "string", Format: "date-time"}
	percent := &openapi.Schema{Type: "number", Description: "Share of keyword hits, in percent"}

	return map[string]*openapi.Schema{
		"Offer": openapi.Object(map[string]*openapi.Schema{
			"id":            {Type: "string", Pattern: idPattern, Description: "Upstream offer identifier"},
			"title":         openapi.Prop("string", "Job title"),
			"description":   openapi.Prop("string", "Offer description, possibly HTML"),
			"company":       openapi.Prop("string", "Hiring company"),
			"location":      openapi.Prop("string", "Work location"),
			"contract_type": openapi.Prop("string", "Contract type label"),
			"rome_code":     openapi.Prop("string", "ROME occupation code"),
			"rome_label":    openapi.Prop("string", "ROME occupation label"),
			"url":           openapi.Prop("string", "Upstream offer page"),
			"published_at":  timestamp,
			"created_at":    timestamp,
			"updated_at":    timestamp,
		}, "id", "title"),
		"OfferPageResult": openapi.Object(map[string]*openapi.Schema{
			"data":        openapi.ArrayOf(openapi.SchemaRef("Offer")),
			"total":       openapi.Prop("integer", "Total number of matching offers"),
			"page":        openapi.Prop("integer", "Current page"),
			"page_size":   openapi.Prop("integer", "Results per page"),
			"total_pages": openapi.Prop("integer", "Total number of pages"),
		}, "data", "total", "page", "page_size", "total_pages"),
		"MatchRequest": openapi.Object(map[string]*openapi.Schema{
			"cv_text": openapi.Prop("string", "Plain text of the CV"),
		}, "cv_text"),
		"SkillProfile": {
			Type:        "object",
			Description: "Soft skill names mapped to their share of keyword hits",
			Additional:  percent,
		},
		"MatchResult": openapi.Object(map[string]*openapi.Schema{
			"offer_id":      openapi.Prop("string", "Matched offer"),
			"offer_title":   openapi.Prop("string", "Title of the matched offer"),
			"matching_rate": {Type: "number", Description: "Overlap of the two skill profiles, 0 to 100"},
			"cv_skills":     openapi.SchemaRef("SkillProfile"),
			"offer_skills":  openapi.SchemaRef("SkillProfile"),
		}, "offer_id", "offer_title", "matching_rate", "cv_skills", "offer_skills"),
	}
}
