package handler

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/tubeblog/errors"
	blogDTO "github.com/johnquangdev/tubeblog/internal/adapter/dto/blog"
	"github.com/johnquangdev/tubeblog/internal/adapter/dto/common"
	"github.com/johnquangdev/tubeblog/internal/domain/entities"
	"github.com/johnquangdev/tubeblog/internal/usecase/auth"
	blogUsecase "github.com/johnquangdev/tubeblog/internal/usecase/blog"
	usecaseErrors "github.com/johnquangdev/tubeblog/internal/usecase/errors"
	"github.com/johnquangdev/tubeblog/pkg/config"
	pkgvalidator "github.com/johnquangdev/tubeblog/pkg/validator"
)

type fakeBlogService struct {
	generateErr error
	getErr      error
	article     *entities.BlogArticle
	lastLink    string
}

func (f *fakeBlogService) Generate(ctx context.Context, userID uuid.UUID, link string) (*blogUsecase.GenerationResult, error) {
	f.lastLink = link
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	meta := entities.VideoMetadata{Title: "Talk", Channel: "Chan", Duration: "3m 0s"}
	article := entities.NewBlogArticle(userID, link, "dQw4w9WgXcQ", entities.MethodFastCaptions, "# Title\n\nBody text", meta, 0.95)
	return &blogUsecase.GenerationResult{Article: article, Metadata: meta}, nil
}

func (f *fakeBlogService) List(ctx context.Context, userID uuid.UUID) ([]*entities.BlogArticle, int64, error) {
	if f.article == nil {
		return nil, 0, nil
	}
	return []*entities.BlogArticle{f.article}, 1, nil
}

func (f *fakeBlogService) Get(ctx context.Context, userID, id uuid.UUID) (*entities.BlogArticle, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.article, nil
}

func (f *fakeBlogService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return f.getErr
}

func (f *fakeBlogService) Export(ctx context.Context, userID, id uuid.UUID) (*blogUsecase.ExportResult, error) {
	return nil, usecaseErrors.ErrStorageNotConfigured
}

type fakeAuthService struct {
	user *entities.User
}

func (f *fakeAuthService) Signup(ctx context.Context, username, email, password string) (*auth.AuthResult, error) {
	if username == f.user.Username {
		return nil, fmt.Errorf("%w: username %q", usecaseErrors.ErrAlreadyExists, username)
	}
	return &auth.AuthResult{User: entities.NewUser(username, email, "hash"), AccessToken: "a", RefreshToken: "r", ExpiresIn: 900}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (*auth.AuthResult, error) {
	if password != "correct-horse" {
		return nil, usecaseErrors.ErrInvalidCredentials
	}
	return &auth.AuthResult{User: f.user, AccessToken: "a", RefreshToken: "r", ExpiresIn: 900}, nil
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (*auth.AuthResult, error) {
	return nil, fmt.Errorf("%w: expired", usecaseErrors.ErrTokenInvalid)
}

func (f *fakeAuthService) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return f.user, nil
}

type fakeTokenValidator struct {
	user *entities.User
}

func (f *fakeTokenValidator) ValidateAccessToken(ctx context.Context, token string) (*entities.User, error) {
	if token != "valid" {
		return nil, usecaseErrors.ErrTokenInvalid
	}
	return f.user, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func newTestServer(t *testing.T, blogs *fakeBlogService) (*echo.Echo, *Router) {
	t.Helper()
	user := entities.NewUser("alice", "alice@example.com", "hash")
	logger := zap.NewNop()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Environment:           "test",
			GenerateRatePerMinute: 60,
			GenerateBurst:         10,
		},
	}

	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = HTTPErrorHandler(logger)

	rt := NewRouter(cfg,
		NewAuth(&fakeAuthService{user: user}, logger),
		NewBlogHandler(blogs, logger),
		&fakeTokenValidator{user: user},
		logger,
	)
	rt.Setup(e)
	return e, rt
}

func do(e *echo.Echo, method, path, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer valid")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) common.ErrorResponse {
	t.Helper()
	var body common.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestBlog_Generate(t *testing.T) {
	blogs := &fakeBlogService{}
	e, _ := newTestServer(t, blogs)

	rec := do(e, http.MethodPost, "/v1/blogs/generate", `{"link":"https://youtu.be/dQw4w9WgXcQ"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp blogDTO.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "fast_captions", resp.Method)
	assert.Equal(t, "Talk", resp.Metadata.Title)
	assert.Nil(t, resp.Metadata.SpeakersDetected)
	assert.NotEmpty(t, resp.BlogID)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", blogs.lastLink)
}

func TestBlog_Generate_RequiresAuth(t *testing.T) {
	e, _ := newTestServer(t, &fakeBlogService{})

	rec := do(e, http.MethodPost, "/v1/blogs/generate", `{"link":"https://youtu.be/x"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, int32(errors.ErrorCode_UNAUTHENTICATED), decodeError(t, rec).Code)
}

func TestBlog_Generate_ValidationFailure(t *testing.T) {
	e, _ := newTestServer(t, &fakeBlogService{})

	rec := do(e, http.MethodPost, "/v1/blogs/generate", `{}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "Validation failed", body.Error)
	assert.Contains(t, body.Details, "link")
}

func TestBlog_Generate_LinkTooLong(t *testing.T) {
	blogs := &fakeBlogService{}
	e, _ := newTestServer(t, blogs)

	link := "https://youtu.be/dQw4w9WgXcQ?t=" + strings.Repeat("1", 480)
	rec := do(e, http.MethodPost, "/v1/blogs/generate", `{"link":"`+link+`"}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "max", decodeError(t, rec).Details["link"])
	assert.Empty(t, blogs.lastLink)
}

func TestBlog_Generate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    errors.ErrorCode
		message string
	}{
		{"invalid url", usecaseErrors.ErrInvalidVideoURL, http.StatusBadRequest, errors.ErrorCode_BLOG_INVALID_VIDEO_URL, "Invalid YouTube URL"},
		{"no transcript", usecaseErrors.ErrNoTranscript, http.StatusNotFound, errors.ErrorCode_BLOG_NO_TRANSCRIPT, "No audio/transcript available"},
		{"transcriber missing", usecaseErrors.ErrTranscriberNotConfigured, http.StatusServiceUnavailable, errors.ErrorCode_AI_SERVICE_UNAVAILABLE, "AssemblyAI is not configured"},
		{"generator missing", usecaseErrors.ErrGeneratorNotConfigured, http.StatusServiceUnavailable, errors.ErrorCode_AI_SERVICE_UNAVAILABLE, "LLM is not configured"},
		{
			"transcription failed",
			fmt.Errorf("%w: %w", usecaseErrors.ErrTranscriptionFailed, stdErrors.New("upstream timeout")),
			http.StatusInternalServerError, errors.ErrorCode_BLOG_TRANSCRIPTION,
			"Full transcription failed: upstream timeout",
		},
		{
			"generation failed",
			fmt.Errorf("%w: %w", usecaseErrors.ErrGenerationFailed, stdErrors.New("quota exceeded")),
			http.StatusInternalServerError, errors.ErrorCode_BLOG_GENERATION_FAILED,
			"Full transcription failed: quota exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestServer(t, &fakeBlogService{generateErr: tt.err})

			rec := do(e, http.MethodPost, "/v1/blogs/generate", `{"link":"https://youtu.be/dQw4w9WgXcQ"}`, true)
			assert.Equal(t, tt.status, rec.Code)

			body := decodeError(t, rec)
			assert.Equal(t, int32(tt.code), body.Code)
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestBlog_GetListDelete(t *testing.T) {
	owner := uuid.New()
	article := entities.NewBlogArticle(owner, "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", entities.MethodFastCaptions, "one two three", entities.UnknownVideoMetadata(), 0.95)
	blogs := &fakeBlogService{article: article}
	e, _ := newTestServer(t, blogs)

	t.Run("list", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/v1/blogs", "", true)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp blogDTO.ListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.Count)
		require.Len(t, resp.Blogs, 1)
		assert.Equal(t, article.ID.String(), resp.Blogs[0].ID)
	})

	t.Run("get", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/v1/blogs/"+article.ID.String(), "", true)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp blogDTO.BlogResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.WordCount)
	})

	t.Run("bad id", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/v1/blogs/not-a-uuid", "", true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := do(e, http.MethodDelete, "/v1/blogs/"+article.ID.String(), "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Blog deleted successfully"}`, rec.Body.String())
	})
}

func TestBlog_OwnershipErrors(t *testing.T) {
	id := uuid.New().String()

	e, _ := newTestServer(t, &fakeBlogService{getErr: usecaseErrors.ErrAccessDenied})
	rec := do(e, http.MethodGet, "/v1/blogs/"+id, "", true)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, id, decodeError(t, rec).Details["blog_id"])

	e, _ = newTestServer(t, &fakeBlogService{getErr: usecaseErrors.ErrBlogNotFound})
	rec = do(e, http.MethodDelete, "/v1/blogs/"+id, "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Blog not found", decodeError(t, rec).Error)
}

func TestBlog_Export_StorageDisabled(t *testing.T) {
	e, _ := newTestServer(t, &fakeBlogService{})

	rec := do(e, http.MethodPost, "/v1/blogs/"+uuid.New().String()+"/export", "", true)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, int32(errors.ErrorCode_STORAGE_NOT_CONFIGURED), decodeError(t, rec).Code)
}

func TestAuth_Endpoints(t *testing.T) {
	e, _ := newTestServer(t, &fakeBlogService{})

	t.Run("signup", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/v1/auth/signup", `{"username":"bob","password":"correct-horse"}`, false)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"access_token":"a"`)
	})

	t.Run("signup duplicate", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/v1/auth/signup", `{"username":"alice","password":"correct-horse"}`, false)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "alice", decodeError(t, rec).Details["username"])
	})

	t.Run("signup short password", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/v1/auth/signup", `{"username":"carol","password":"short"}`, false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Details, "password")
	})

	t.Run("login wrong password", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/v1/auth/login", `{"username":"alice","password":"nope"}`, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, int32(errors.ErrorCode_AUTH_INVALID_CREDENTIALS), decodeError(t, rec).Code)
	})

	t.Run("refresh invalid", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/v1/auth/refresh", `{"refresh_token":"stale"}`, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, int32(errors.ErrorCode_AUTH_INVALID_REFRESH_TOKEN), decodeError(t, rec).Code)
	})

	t.Run("me", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/v1/auth/me", "", true)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	})
}

func TestHealthCheck(t *testing.T) {
	e, rt := newTestServer(t, &fakeBlogService{})

	rec := do(e, http.MethodGet, "/health", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","environment":"test"}`, rec.Body.String())

	rt.AddHealthCheck("storage", fakePinger{err: stdErrors.New("connection refused")})
	rec = do(e, http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","environment":"test","checks":{"storage":"unavailable"}}`, rec.Body.String())
}

func TestHTTPErrorHandler_UnknownRoute(t *testing.T) {
	e, _ := newTestServer(t, &fakeBlogService{})

	rec := do(e, http.MethodGet, "/v1/nothing-here", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int32(errors.ErrorCode_NOT_FOUND), decodeError(t, rec).Code)
}
