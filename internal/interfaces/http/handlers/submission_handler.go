package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"corpsite.backend/internal/domain/entities"
	domainerrors "corpsite.backend/internal/domain/errors"
	"corpsite.backend/internal/interfaces/http/response"
	"corpsite.backend/internal/usecases"
	"corpsite.backend/pkg/utils"
)

// SubmissionHandler exposes one form-backed kind as list, create and delete.
type SubmissionHandler[E any] struct {
	pipeline *usecases.SubmissionPipeline[E]
	created  func(record *E) gin.H
}

// NewSubmissionHandler creates a handler; created builds the 201 body.
func NewSubmissionHandler[E any](pipeline *usecases.SubmissionPipeline[E], created func(record *E) gin.H) *SubmissionHandler[E] {
	return &SubmissionHandler[E]{pipeline: pipeline, created: created}
}

func NewApplicationHandler(p *usecases.SubmissionPipeline[entities.Application]) *SubmissionHandler[entities.Application] {
	return NewSubmissionHandler(p, func(*entities.Application) gin.H {
		return gin.H{"message": "Application submitted successfully"}
	})
}

func NewContactHandler(p *usecases.SubmissionPipeline[entities.ContactMessage]) *SubmissionHandler[entities.ContactMessage] {
	return NewSubmissionHandler(p, func(*entities.ContactMessage) gin.H {
		return gin.H{"message": "Contact saved"}
	})
}

func NewInquiryHandler(p *usecases.SubmissionPipeline[entities.Inquiry]) *SubmissionHandler[entities.Inquiry] {
	return NewSubmissionHandler(p, func(*entities.Inquiry) gin.H {
		return gin.H{"message": "Inquiry submitted successfully"}
	})
}

func NewHackathonHandler(p *usecases.SubmissionPipeline[entities.HackathonTeam]) *SubmissionHandler[entities.HackathonTeam] {
	return NewSubmissionHandler(p, func(team *entities.HackathonTeam) gin.H {
		return gin.H{"message": "Hackathon registration successful", "team_id": team.ID}
	})
}

// List returns every record of the kind, newest first
// GET /api/<kind>/
func (h *SubmissionHandler[E]) List(c *gin.Context) {
	records, err := h.pipeline.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

// Create validates, stores and announces one submission
// POST /api/<kind>/
func (h *SubmissionHandler[E]) Create(c *gin.Context) {
	record, err := h.pipeline.Submit(c.Request.Context(), bindRequest(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, h.created(record))
}

// Delete removes one record by id
// DELETE /api/<kind>/:id/
func (h *SubmissionHandler[E]) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, domainerrors.NotFound(h.pipeline.Kind()+" not found"))
		return
	}
	if err := h.pipeline.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// bindRequest binds by content type. An empty body still runs the field
// rules so the caller sees every missing field.
func bindRequest(c *gin.Context) usecases.BindFunc {
	return func(form any) error {
		err := c.ShouldBind(form)
		if errors.Is(err, io.EOF) {
			return binding.Validator.ValidateStruct(form)
		}
		return err
	}
}
