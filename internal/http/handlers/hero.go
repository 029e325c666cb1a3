package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Owhab/nexacms-sub002/internal/http/response"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/security"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/validation"
	"github.com/Owhab/nexacms-sub002/internal/platform/apierr"
	"github.com/Owhab/nexacms-sub002/internal/services"
)

type HeroHandler struct {
	hero services.HeroService
}

func NewHeroHandler(hero services.HeroService) *HeroHandler {
	return &HeroHandler{hero: hero}
}

type fieldView struct {
	ID       string           `json:"id"`
	Label    string           `json:"label"`
	Type     schema.FieldType `json:"type"`
	Required bool             `json:"required"`
	Options  []string         `json:"options,omitempty"`
	Min      *float64         `json:"min,omitempty"`
	Max      *float64         `json:"max,omitempty"`
}

type variantView struct {
	Variant     schema.Variant `json:"variant"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Complex     bool           `json:"complex"`
	Fields      []fieldView    `json:"fields"`
}

func toVariantView(d schema.VariantDefinition) variantView {
	v := variantView{
		Variant:     d.Variant,
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Complex:     d.Complex,
		Fields:      make([]fieldView, 0, len(d.Fields)),
	}
	for _, f := range d.Fields {
		v.Fields = append(v.Fields, fieldView{
			ID:       f.ID,
			Label:    f.Label,
			Type:     f.Type,
			Required: f.Required,
			Options:  f.Options,
			Min:      f.Min,
			Max:      f.Max,
		})
	}
	return v
}

// respondHeroError renders blocked writes with both finding lists; everything
// else goes through the generic error mapping.
func respondHeroError(c *gin.Context, err error, extra gin.H) {
	var vf *services.ValidationFailedError
	if errors.As(err, &vf) {
		body := gin.H{
			"error":    services.CodeValidationFailed,
			"message":  vf.Error(),
			"errors":   nonNil(vf.Result.Errors),
			"warnings": nonNil(vf.Result.Warnings),
		}
		for k, v := range extra {
			body[k] = v
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, body)
		return
	}
	response.RespondAPIError(c, err)
}

func nonNil(list []validation.ValidationError) []validation.ValidationError {
	if list == nil {
		return []validation.ValidationError{}
	}
	return list
}

func (h *HeroHandler) Variants(c *gin.Context) {
	defs := h.hero.Variants()
	out := make([]variantView, 0, len(defs))
	for _, d := range defs {
		out = append(out, toVariantView(d))
	}
	response.RespondOK(c, gin.H{"variants": out})
}

func (h *HeroHandler) Compatibility(c *gin.Context) {
	outcome, err := h.hero.Compatibility(c.Query("from"), c.Query("to"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, outcome)
}

// Validate accepts a single record or an array of records.
func (h *HeroHandler) Validate(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		response.RespondError(c, http.StatusBadRequest, CodeInvalidRequest, fmt.Errorf("malformed JSON body: %w", err))
		return
	}

	switch v := body.(type) {
	case []any:
		results, err := h.hero.ValidateBatch(c.Request.Context(), v)
		if err != nil {
			response.RespondAPIError(c, err)
			return
		}
		response.RespondOK(c, gin.H{"results": results})
	default:
		res, err := h.hero.Validate(c.Request.Context(), v)
		if err != nil {
			response.RespondAPIError(c, err)
			return
		}
		response.RespondOK(c, res)
	}
}

func (h *HeroHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.RespondError(c, http.StatusBadRequest, CodeInvalidRequest,
				fmt.Errorf("invalid limit %q", raw),
				apierr.Detail{Field: "limit", Message: "must be a non-negative integer"})
			return
		}
		limit = n
	}
	rows, err := h.hero.List(c.Request.Context(), c.Query("variant"), limit)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"sections": rows})
}

func (h *HeroHandler) Get(c *gin.Context) {
	rec, err := h.hero.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"section": rec})
}

func (h *HeroHandler) Put(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}
	rec, res, err := h.hero.Save(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		respondHeroError(c, err, nil)
		return
	}
	response.RespondOK(c, gin.H{"section": rec, "warnings": nonNil(res.Warnings)})
}

func (h *HeroHandler) PatchField(c *gin.Context) {
	var req struct {
		Path  string `json:"path" binding:"required"`
		Value any    `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, CodeInvalidRequest, err,
			apierr.Detail{Field: "path", Message: "path is required"})
		return
	}
	rec, res, err := h.hero.UpdateField(c.Request.Context(), c.Param("id"), req.Path, req.Value)
	if err != nil {
		respondHeroError(c, err, nil)
		return
	}
	body := gin.H{"section": rec, "warnings": nonNil(res.Warnings)}
	// Echo the stored value, which may differ from the request after sanitizing.
	if v, err := schema.FieldValue(rec.Props, req.Path); err == nil {
		body["value"] = v
	}
	response.RespondOK(c, body)
}

func (h *HeroHandler) Migrate(c *gin.Context) {
	var req struct {
		TargetVariant string `json:"targetVariant" binding:"required"`
		Strategy      string `json:"strategy"`
		Apply         bool   `json:"apply"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, CodeInvalidRequest, err,
			apierr.Detail{Field: "targetVariant", Message: "targetVariant is required"})
		return
	}
	outcome, err := h.hero.Migrate(c.Request.Context(), c.Param("id"), services.MigrateInput{
		TargetVariant: req.TargetVariant,
		Strategy:      req.Strategy,
		Apply:         req.Apply,
	})
	if err != nil {
		var extra gin.H
		if outcome != nil && outcome.Result != nil {
			extra = gin.H{"migration": outcome.Result}
		}
		respondHeroError(c, err, extra)
		return
	}
	response.RespondOK(c, outcome)
}

func (h *HeroHandler) Duplicate(c *gin.Context) {
	var req struct {
		ID              string  `json:"id"`
		TitlePrefix     *string `json:"titlePrefix"`
		PreserveMedia   *bool   `json:"preserveMedia"`
		PreserveButtons *bool   `json:"preserveButtons"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.RespondError(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}
	rec, err := h.hero.Duplicate(c.Request.Context(), c.Param("id"), services.DuplicateInput{
		ID:              req.ID,
		TitlePrefix:     req.TitlePrefix,
		PreserveMedia:   req.PreserveMedia,
		PreserveButtons: req.PreserveButtons,
	})
	if err != nil {
		respondHeroError(c, err, nil)
		return
	}
	response.RespondCreated(c, gin.H{"section": rec})
}

func (h *HeroHandler) ValidateMedia(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, CodeInvalidRequest, err,
			apierr.Detail{Field: "file", Message: "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, CodeInvalidRequest, err,
			apierr.Detail{Field: "file", Message: "file could not be read"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, CodeInvalidRequest, err,
			apierr.Detail{Field: "file", Message: "file could not be read"})
		return
	}
	res, err := h.hero.ValidateMedia(c.Request.Context(), security.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Data:        data,
	}, c.PostForm("mediaType"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}
