package fiber

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"proposal-insights-service/internal/editor/core/domain"
	"proposal-insights-service/internal/editor/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type FieldSetUseCase interface {
	Load(ctx context.Context, slideID string) ([]domain.FieldDef, error)
	Save(ctx context.Context, slideID string, fields []domain.FieldDef) error
}

type FieldHandler struct {
	uc FieldSetUseCase
}

func NewFieldHandler(uc FieldSetUseCase) *FieldHandler {
	return &FieldHandler{uc: uc}
}

// sampleValues is the fixed catalog of representative strings the preview
// substitutes for auto-fill bound fields.
var sampleValues = map[string]string{
	domain.AutoFillClientName:  "Alex & Sam Carter",
	domain.AutoFillAdviserName: "Jordan Reid",
	domain.AutoFillFirmName:    "Harbourline Wealth",
	domain.AutoFillDate:        "12 March 2026",
	domain.AutoFillSituation:   "Approaching retirement with a concentrated employer shareholding and two investment properties.",
	domain.AutoFillObjectives:  "Generate sustainable income of $90k p.a. while preserving capital in real terms.",
	domain.AutoFillFocus:       "Diversification, tax-effective drawdown, and estate planning.",
}

// GetFields godoc
// @Summary Load a slide's field definitions
// @Tags Fields
// @Produce json
// @Param slideID path string true "Slide id"
// @Success 200 {object} FieldsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /slides/{slideID}/fields [get]
func (h *FieldHandler) GetFields(c *fiber.Ctx) error {
	fields, err := h.uc.Load(c.UserContext(), c.Params("slideID"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(FieldsResponse{Fields: fromDomain(fields)})
}

// SaveFields godoc
// @Summary Atomically replace a slide's field definitions
// @Description The posted set fully replaces the stored set; nothing is written on validation failure
// @Tags Fields
// @Accept json
// @Produce json
// @Param slideID path string true "Slide id"
// @Param request body SaveFieldsRequest true "Field set"
// @Success 200 {object} SaveFieldsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} SaveFieldsResponse
// @Router /slides/{slideID}/fields [put]
func (h *FieldHandler) SaveFields(c *fiber.Ctx) error {
	var req SaveFieldsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	err := h.uc.Save(c.UserContext(), c.Params("slideID"), toDomain(req.Fields))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSlideID),
			errors.Is(err, usecase.ErrInvalidFieldSet):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_field_set",
				Message: err.Error(),
			})
		default:
			// Persistence failure: the message travels verbatim so the
			// editor can show it and let the user retry.
			return c.Status(http.StatusInternalServerError).JSON(SaveFieldsResponse{
				Success: false,
				Error:   err.Error(),
			})
		}
	}

	return c.Status(http.StatusOK).JSON(SaveFieldsResponse{Success: true})
}

// Preview godoc
// @Summary Resolve preview content for a field set
// @Description Projects values (or auto-fill samples, or label placeholders) onto posted fields
// @Tags Fields
// @Accept json
// @Produce json
// @Param request body PreviewRequest true "Fields and values"
// @Success 200 {object} PreviewResponse
// @Failure 400 {object} ErrorResponse
// @Router /preview [post]
func (h *FieldHandler) Preview(c *fiber.Ctx) error {
	var raw struct {
		Fields json.RawMessage   `json:"fields"`
		Values map[string]string `json:"values"`
	}
	if err := c.BodyParser(&raw); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	// The field list may come straight out of an external store; a
	// non-array shape is treated as an empty set, not an error.
	var dtos []FieldDTO
	if len(raw.Fields) > 0 {
		if err := json.Unmarshal(raw.Fields, &dtos); err != nil {
			dtos = nil
		}
	}

	projected := usecase.BuildPreviewProjection(toDomain(dtos), raw.Values, sampleValues)

	resp := PreviewResponse{Fields: make([]ProjectedFieldDTO, 0, len(projected))}
	for _, p := range projected {
		resp.Fields = append(resp.Fields, ProjectedFieldDTO{
			FieldID:     p.FieldID,
			X:           p.X,
			Y:           p.Y,
			Width:       p.Width,
			Height:      p.Height,
			Text:        p.Text,
			Placeholder: p.Placeholder,
			Rows:        p.Rows,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidSlideID):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_slide",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
