package rest

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dojo-forms/internal/domain"
	"github.com/heartmarshall/dojo-forms/internal/reference"
	formsvc "github.com/heartmarshall/dojo-forms/internal/service/form"
)

// formRequest is the body of POST /forms and PUT /forms/{id}.
type formRequest struct {
	Name         string  `json:"name"`
	RankType     string  `json:"rankType"`
	RankNumber   int     `json:"rankNumber"`
	BeltColor    *string `json:"beltColor"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	ReferenceURL *string `json:"referenceUrl"`
	Learned      bool    `json:"learned"`
}

func (req formRequest) createInput() formsvc.CreateFormInput {
	return formsvc.CreateFormInput{
		Name:         req.Name,
		RankType:     domain.RankType(req.RankType),
		RankNumber:   req.RankNumber,
		BeltColor:    req.BeltColor,
		Category:     domain.Category(req.Category),
		Description:  req.Description,
		ReferenceURL: req.ReferenceURL,
		Learned:      req.Learned,
	}
}

func (req formRequest) updateInput(id uuid.UUID) formsvc.UpdateFormInput {
	in := req.createInput()
	return formsvc.UpdateFormInput{
		ID:           id,
		Name:         in.Name,
		RankType:     in.RankType,
		RankNumber:   in.RankNumber,
		BeltColor:    in.BeltColor,
		Category:     in.Category,
		Description:  in.Description,
		ReferenceURL: in.ReferenceURL,
		Learned:      in.Learned,
	}
}

// deleteRequest is the optional body of DELETE /forms/{id}.
type deleteRequest struct {
	Hard flag `json:"hard"`
}

// flag accepts the loose spellings HTML forms and scripts send for a
// boolean: true, "true", "1", 1, "on".
type flag bool

func (f *flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flag(parseFlag(s))
		return nil
	}
	*f = flag(parseFlag(string(data)))
	return nil
}

func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// parseOptionalBool reads a tri-state query parameter. ok is false when the
// value is present but unparseable.
func parseOptionalBool(s string) (v *bool, ok bool) {
	if s == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, false
	}
	return &b, true
}

type formResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	RankType     string     `json:"rankType"`
	RankNumber   int        `json:"rankNumber"`
	RankLabel    string     `json:"rankLabel"`
	BeltColor    *string    `json:"beltColor"`
	Category     string     `json:"category"`
	Description  string     `json:"description"`
	ReferenceURL *string    `json:"referenceUrl"`
	Learned      bool       `json:"learned"`
	State        string     `json:"state"`
	DeletedAt    *time.Time `json:"deletedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func toFormResponse(f *domain.Form) formResponse {
	return formResponse{
		ID:           f.ID.String(),
		Name:         f.Name,
		RankType:     f.RankType.String(),
		RankNumber:   f.RankNumber,
		RankLabel:    reference.Label(f.RankType, f.RankNumber),
		BeltColor:    f.BeltColor,
		Category:     f.Category.String(),
		Description:  f.Description,
		ReferenceURL: f.ReferenceURL,
		Learned:      f.Learned,
		State:        f.State().String(),
		DeletedAt:    f.DeletedAt,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func toFormList(forms []domain.Form) []formResponse {
	out := make([]formResponse, len(forms))
	for i := range forms {
		out[i] = toFormResponse(&forms[i])
	}
	return out
}

type auditResponse struct {
	ID        string         `json:"id"`
	FormID    string         `json:"formId"`
	ActorID   *string        `json:"actorId"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toAuditList(records []domain.AuditRecord) []auditResponse {
	out := make([]auditResponse, len(records))
	for i, rec := range records {
		var actor *string
		if rec.ActorID != nil {
			s := rec.ActorID.String()
			actor = &s
		}
		out[i] = auditResponse{
			ID:        rec.ID.String(),
			FormID:    rec.FormID.String(),
			ActorID:   actor,
			Action:    rec.Action.String(),
			Changes:   rec.Changes,
			CreatedAt: rec.CreatedAt,
		}
	}
	return out
}

type barColorResponse struct {
	Top    string `json:"top"`
	Bottom string `json:"bottom,omitempty"`
}

type chartResponse struct {
	Labels  []string           `json:"labels"`
	Counts  []int              `json:"counts"`
	Colors  []barColorResponse `json:"colors"`
	Borders []string           `json:"borders"`
	Total   int                `json:"total"`
}

func toChartResponse(c domain.ChartData) chartResponse {
	colors := make([]barColorResponse, len(c.Colors))
	for i, col := range c.Colors {
		colors[i] = barColorResponse{Top: col.Top, Bottom: col.Bottom}
	}
	return chartResponse{
		Labels:  c.Labels,
		Counts:  c.Counts,
		Colors:  colors,
		Borders: c.Borders,
		Total:   c.Total,
	}
}

type newFormPageResponse struct {
	Names           []string         `json:"names"`
	Chart           chartResponse    `json:"chart"`
	KyuRequirements map[int][]string `json:"kyuRequirements"`
	DanRequirements map[int][]string `json:"danRequirements"`
	KyuChips        map[int]string   `json:"kyuChips"`
}

func toNewFormPageResponse(p *formsvc.NewFormPage) newFormPageResponse {
	return newFormPageResponse{
		Names:           p.Names,
		Chart:           toChartResponse(p.Chart),
		KyuRequirements: p.KyuRequirements,
		DanRequirements: p.DanRequirements,
		KyuChips:        p.KyuChips,
	}
}
