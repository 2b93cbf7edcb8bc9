package handler

import (
	"context"
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/tubeblog/errors"
	blogDTO "github.com/johnquangdev/tubeblog/internal/adapter/dto/blog"
	"github.com/johnquangdev/tubeblog/internal/adapter/dto/common"
	"github.com/johnquangdev/tubeblog/internal/adapter/presenter"
	"github.com/johnquangdev/tubeblog/internal/domain/entities"
	httpmw "github.com/johnquangdev/tubeblog/internal/infrastructure/http/middleware"
	blogUsecase "github.com/johnquangdev/tubeblog/internal/usecase/blog"
	usecaseErrors "github.com/johnquangdev/tubeblog/internal/usecase/errors"
)

// BlogService is the blog use case as seen by the HTTP layer
type BlogService interface {
	Generate(ctx context.Context, userID uuid.UUID, link string) (*blogUsecase.GenerationResult, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entities.BlogArticle, int64, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*entities.BlogArticle, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Export(ctx context.Context, userID, id uuid.UUID) (*blogUsecase.ExportResult, error)
}

// Blog handles blog-related HTTP requests
type Blog struct {
	blogService BlogService
	logger      *zap.Logger
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService BlogService, logger *zap.Logger) *Blog {
	return &Blog{
		blogService: blogService,
		logger:      logger,
	}
}

// Generate handles POST /blogs/generate
// @Summary      Generate a blog article from a YouTube video
// @Description  Uses the video's captions when available, otherwise downloads and transcribes the audio
// @Tags         Blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      blog.GenerateRequest  true  "YouTube link"
// @Success      201      {object}  blog.GenerateResponse
// @Failure      400      {object}  common.ErrorResponse  "Invalid link"
// @Failure      401      {object}  common.ErrorResponse  "Not authenticated"
// @Failure      404      {object}  common.ErrorResponse  "No audio/transcript available"
// @Failure      429      {object}  common.ErrorResponse  "Rate limited"
// @Failure      500      {object}  common.ErrorResponse  "Generation failed"
// @Failure      503      {object}  common.ErrorResponse  "AI service not configured"
// @Router       /blogs/generate [post]
func (h *Blog) Generate(c echo.Context) error {
	userID, ok := httpmw.UserIDFrom(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	var req blogDTO.GenerateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.blogService.Generate(c.Request().Context(), userID, req.Link)
	if err != nil {
		return HandleError(h.logger, c, blogError(err, ""))
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToGenerateResponse(result))
}

// List handles GET /blogs
// @Summary      List my blog articles
// @Description  Returns the caller's articles, newest first
// @Tags         Blogs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  blog.ListResponse
// @Failure      401  {object}  common.ErrorResponse
// @Router       /blogs [get]
func (h *Blog) List(c echo.Context) error {
	userID, ok := httpmw.UserIDFrom(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	articles, count, err := h.blogService.List(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToListResponse(articles, count))
}

// Get handles GET /blogs/:id
// @Summary      Get a blog article
// @Tags         Blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blog ID (UUID)"
// @Success      200  {object}  blog.BlogResponse
// @Failure      400  {object}  common.ErrorResponse  "Invalid blog ID"
// @Failure      403  {object}  common.ErrorResponse  "Access denied"
// @Failure      404  {object}  common.ErrorResponse  "Blog not found"
// @Router       /blogs/{id} [get]
func (h *Blog) Get(c echo.Context) error {
	userID, blogID, err := h.ownerAndID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	article, err := h.blogService.Get(c.Request().Context(), userID, blogID)
	if err != nil {
		return HandleError(h.logger, c, blogError(err, blogID.String()))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToBlogResponse(article))
}

// Delete handles DELETE /blogs/:id
// @Summary      Delete a blog article
// @Tags         Blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blog ID (UUID)"
// @Success      200  {object}  common.MessageResponse
// @Failure      403  {object}  common.ErrorResponse  "Access denied"
// @Failure      404  {object}  common.ErrorResponse  "Blog not found"
// @Router       /blogs/{id} [delete]
func (h *Blog) Delete(c echo.Context) error {
	userID, blogID, err := h.ownerAndID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.blogService.Delete(c.Request().Context(), userID, blogID); err != nil {
		return HandleError(h.logger, c, blogError(err, blogID.String()))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, common.MessageResponse{Message: "Blog deleted successfully"})
}

// Export handles POST /blogs/:id/export
// @Summary      Export a blog article as markdown
// @Description  Uploads the article to object storage and returns a presigned download URL
// @Tags         Blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blog ID (UUID)"
// @Success      200  {object}  blog.ExportResponse
// @Failure      403  {object}  common.ErrorResponse  "Access denied"
// @Failure      404  {object}  common.ErrorResponse  "Blog not found"
// @Failure      503  {object}  common.ErrorResponse  "Storage not configured"
// @Router       /blogs/{id}/export [post]
func (h *Blog) Export(c echo.Context) error {
	userID, blogID, err := h.ownerAndID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.blogService.Export(c.Request().Context(), userID, blogID)
	if err != nil {
		return HandleError(h.logger, c, blogError(err, blogID.String()))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToExportResponse(blogID.String(), result))
}

func (h *Blog) ownerAndID(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := httpmw.UserIDFrom(c)
	if !ok {
		return uuid.Nil, uuid.Nil, errors.ErrUnauthenticated()
	}

	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.ErrInvalidArgument("blog ID must be a valid UUID")
	}
	return userID, blogID, nil
}

// blogError maps blog use case errors to API errors
func blogError(err error, blogID string) error {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrInvalidVideoURL):
		return errors.ErrInvalidVideoURL()
	case stdErrors.Is(err, usecaseErrors.ErrNoTranscript):
		return errors.ErrNoTranscript()
	case stdErrors.Is(err, usecaseErrors.ErrTranscriberNotConfigured):
		return errors.ErrAIServiceUnavailable("AssemblyAI")
	case stdErrors.Is(err, usecaseErrors.ErrGeneratorNotConfigured):
		return errors.ErrAIServiceUnavailable("LLM")
	case stdErrors.Is(err, usecaseErrors.ErrTranscriptionFailed):
		return errors.ErrTranscriptionFailed(causeAfter(err, usecaseErrors.ErrTranscriptionFailed))
	case stdErrors.Is(err, usecaseErrors.ErrGenerationFailed):
		return errors.ErrGenerationFailed(causeAfter(err, usecaseErrors.ErrGenerationFailed))
	case stdErrors.Is(err, usecaseErrors.ErrBlogNotFound):
		return errors.ErrBlogNotFound(blogID)
	case stdErrors.Is(err, usecaseErrors.ErrAccessDenied):
		return errors.ErrBlogAccessDenied(blogID)
	case stdErrors.Is(err, usecaseErrors.ErrStorageNotConfigured):
		return errors.ErrStorageNotConfigured()
	case stdErrors.Is(err, usecaseErrors.ErrExportFailed):
		return errors.ErrBlogExportFailed(err)
	default:
		return errors.ErrInternal(err)
	}
}
