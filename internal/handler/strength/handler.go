package strength

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/passcheck/internal/middleware"
	strengthService "github.com/jwalitptl/passcheck/internal/service/strength"
	apperrors "github.com/jwalitptl/passcheck/pkg/errors"
	"github.com/jwalitptl/passcheck/pkg/httputil"
)

// EvaluateRequest carries the password to score. A pointer keeps the empty
// password valid while still rejecting a missing field.
type EvaluateRequest struct {
	Password *string `json:"password" binding:"required"`
}

// GenerateRequest selects the generated length; zero means the default
type GenerateRequest struct {
	Length int `json:"length" binding:"omitempty,min=4,max=128"`
}

type Handler struct {
	svc *strengthService.Service
}

func NewHandler(svc *strengthService.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	strength := r.Group("/strength")
	strength.Use(middleware.NoStore())
	{
		strength.POST("/evaluate", h.Evaluate)
		strength.POST("/generate", h.Generate)
		strength.GET("/requirements", h.Requirements)
	}
}

func (h *Handler) Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if !bind(c, &req, false) {
		return
	}

	httputil.RespondWithSuccess(c, h.svc.Evaluate(c.Request.Context(), *req.Password))
}

func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if !bind(c, &req, true) {
		return
	}

	out, err := h.svc.Generate(c.Request.Context(), req.Length)
	if err != nil {
		_ = c.Error(err)
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, out)
}

func (h *Handler) Requirements(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.svc.Requirements())
}

// bind decodes the JSON body into req and writes the 400 response on failure.
// With optional set an empty body leaves req at its zero value.
func bind(c *gin.Context, req interface{}, optional bool) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	if optional && errors.Is(err, io.EOF) {
		return true
	}

	if fields, ok := middleware.ValidationErrors(err); ok {
		httputil.RespondWithValidation(c, fields)
		return false
	}

	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, httputil.NewErrorResponse("request body too large"))
		return false
	}

	httputil.RespondWithError(c, apperrors.BadRequest("invalid request body", err))
	return false
}
