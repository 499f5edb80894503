package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpize/internal/middleware"
	"helpize/internal/models"
	"helpize/internal/repositories/interfaces"
	"helpize/internal/services"
	"helpize/internal/utils"
	"helpize/internal/validators"
	"helpize/pkg/logger"
)

type PageHandler struct {
	authService     services.AuthService
	alertService    services.AlertService
	resourceService services.ResourceService
	blogService     services.BlogService
	sessions        *middleware.SessionManager
	logger          *logger.Logger
}

func NewPageHandler(
	authService services.AuthService,
	alertService services.AlertService,
	resourceService services.ResourceService,
	blogService services.BlogService,
	sessions *middleware.SessionManager,
	log *logger.Logger,
) *PageHandler {
	return &PageHandler{
		authService:     authService,
		alertService:    alertService,
		resourceService: resourceService,
		blogService:     blogService,
		sessions:        sessions,
		logger:          log,
	}
}

func (h *PageHandler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "home.html", gin.H{"Title": "Home"})
}

func (h *PageHandler) About(c *gin.Context) {
	h.render(c, http.StatusOK, "about.html", gin.H{"Title": "About"})
}

func (h *PageHandler) Contact(c *gin.Context) {
	h.render(c, http.StatusOK, "contact.html", gin.H{"Title": "Contact"})
}

func (h *PageHandler) SOSForm(c *gin.Context) {
	h.render(c, http.StatusOK, "sos.html", gin.H{"Title": "SOS"})
}

// SubmitSOS records an alert tagged with the session user, if any.
func (h *PageHandler) SubmitSOS(c *gin.Context) {
	if h.bodyTooLarge(c) {
		return
	}

	var reporter *string
	if email, ok := middleware.CurrentUser(c); ok {
		reporter = utils.StringPtr(email)
	}

	_, err := h.alertService.Create(c.Request.Context(), c.PostForm("location"), c.PostForm("message"), reporter)
	if err != nil {
		h.fail(c, err)
		return
	}

	middleware.AddFlash(c, utils.FlashSOSSent)
	c.Redirect(http.StatusFound, "/")
}

func (h *PageHandler) LoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{"Title": "Login", "Email": ""})
}

func (h *PageHandler) Login(c *gin.Context) {
	var request validators.LoginRequest
	if err := c.ShouldBind(&request); err != nil {
		if h.tooLarge(c, err) {
			return
		}
	}

	user, err := h.authService.Login(c.Request.Context(), &request)
	if errors.Is(err, services.ErrInvalidCredentials) {
		middleware.AddFlash(c, utils.FlashInvalidCredentials)
		h.render(c, http.StatusOK, "login.html", gin.H{"Title": "Login", "Email": request.Email})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.sessions.SetSession(c, user.Email); err != nil {
		h.fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *PageHandler) SignupForm(c *gin.Context) {
	h.renderSignup(c, http.StatusOK, &validators.SignupRequest{}, nil)
}

func (h *PageHandler) Signup(c *gin.Context) {
	var request validators.SignupRequest
	if err := c.ShouldBind(&request); err != nil {
		if h.tooLarge(c, err) {
			return
		}
	}

	user, err := h.authService.Signup(c.Request.Context(), &request)

	var validationErrors validators.ValidationErrors
	switch {
	case errors.Is(err, services.ErrDuplicateEmail):
		middleware.AddFlash(c, utils.FlashEmailRegistered)
		c.Redirect(http.StatusFound, "/signup")
		return
	case errors.As(err, &validationErrors):
		request.Password = ""
		h.renderSignup(c, http.StatusBadRequest, &request, validationErrors)
		return
	case err != nil:
		h.fail(c, err)
		return
	}

	if err := h.sessions.SetSession(c, user.Email); err != nil {
		h.fail(c, err)
		return
	}

	middleware.AddFlash(c, utils.FlashSignupSuccess)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Dashboard shows the session user's profile and their alerts. Routed behind
// middleware.LoginRequired.
func (h *PageHandler) Dashboard(c *gin.Context) {
	email, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	profile, err := h.authService.GetProfile(ctx, email)
	if err != nil && !errors.Is(err, services.ErrUserNotFound) {
		h.fail(c, err)
		return
	}

	alerts, err := h.alertService.ListByUser(ctx, email)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.render(c, http.StatusOK, "dashboard.html", gin.H{
		"Title":   "Dashboard",
		"Profile": profile,
		"Alerts":  alerts,
	})
}

func (h *PageHandler) Logout(c *gin.Context) {
	if email, ok := middleware.CurrentUser(c); ok {
		h.logger.LogUserAction(utils.MaskEmail(email), utils.EventUserLogout, nil)
	}
	h.sessions.ClearSession(c)
	c.Redirect(http.StatusFound, "/")
}

// Resources lists the catalogue filtered by ?category. A POST first stores
// the uploaded "file" field.
func (h *PageHandler) Resources(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Request.Method == http.MethodPost {
		if !h.storeUpload(c) {
			return
		}
	}

	category := c.Query("category")
	resources, err := h.resourceService.List(ctx, category)
	if err != nil {
		h.fail(c, err)
		return
	}

	uploads, err := h.resourceService.ListUploads(ctx)
	if err != nil {
		h.logger.WithContext(ctx).WithError(err).Warn("Failed to list uploads")
	}

	h.render(c, http.StatusOK, "resources.html", gin.H{
		"Title":     "Resources",
		"Category":  category,
		"Resources": resources,
		"Uploads":   uploads,
	})
}

// storeUpload returns false once a response has been written.
func (h *PageHandler) storeUpload(c *gin.Context) bool {
	header, err := c.FormFile("file")
	if err != nil {
		if h.tooLarge(c, err) {
			return false
		}
		middleware.AddFlash(c, utils.FlashNoFile)
		return true
	}

	file, err := header.Open()
	if err != nil {
		h.fail(c, err)
		return false
	}
	defer file.Close()

	_, err = h.resourceService.Upload(c.Request.Context(), header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	switch {
	case errors.Is(err, services.ErrInvalidFilename):
		middleware.AddFlash(c, utils.FlashInvalidFilename)
	case err != nil:
		h.fail(c, err)
		return false
	default:
		middleware.AddFlash(c, utils.FlashFileUploaded)
	}
	return true
}

func (h *PageHandler) Blog(c *gin.Context) {
	posts, err := h.blogService.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "blog.html", gin.H{"Title": "Blog", "Posts": posts})
}

// BlogPost renders a single post. Unknown or malformed ids are a 404.
func (h *PageHandler) BlogPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.NotFound(c)
		return
	}

	post, err := h.blogService.Get(c.Request.Context(), id)
	if errors.Is(err, interfaces.ErrNotFound) {
		h.NotFound(c)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "blog.html", gin.H{"Title": post.Title, "Posts": []*models.BlogPost{post}})
}

func (h *PageHandler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "error.html", gin.H{
		"Title":   "Page not found",
		"Message": "The page you were looking for does not exist.",
	})
}

func (h *PageHandler) renderSignup(c *gin.Context, status int, form *validators.SignupRequest, errs validators.ValidationErrors) {
	h.render(c, status, "signup.html", gin.H{"Title": "Sign up", "Form": form, "Errors": errs})
}

func (h *PageHandler) render(c *gin.Context, status int, name string, data gin.H) {
	email, _ := middleware.CurrentUser(c)
	data["User"] = email
	data["Flashes"] = middleware.Flashes(c)
	c.HTML(status, name, data)
}

func (h *PageHandler) fail(c *gin.Context, err error) {
	h.logger.WithContext(c.Request.Context()).WithError(err).
		WithField("path", c.Request.URL.Path).Error("Request failed")

	h.render(c, http.StatusInternalServerError, "error.html", gin.H{
		"Title":   "Something went wrong",
		"Message": utils.FlashSomethingWrong,
	})
}

// bodyTooLarge parses the form and writes 413 if the body exceeded the limit.
func (h *PageHandler) bodyTooLarge(c *gin.Context) bool {
	if err := c.Request.ParseForm(); err != nil {
		return h.tooLarge(c, err)
	}
	return false
}

func (h *PageHandler) tooLarge(c *gin.Context, err error) bool {
	if !middleware.IsRequestTooLarge(err) {
		return false
	}
	h.logger.WithContext(c.Request.Context()).LogSecurityEvent("request_too_large", "low", map[string]interface{}{
		"path": c.Request.URL.Path,
	})
	utils.RequestTooLargeResponse(c)
	return true
}
