package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpize/internal/utils"
	"helpize/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func cookieNamed(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSession_RoundTrip(t *testing.T) {
	sessions := NewSessionManager("secret", time.Hour, false, logger.NewNop())

	router := gin.New()
	router.Use(sessions.LoadSession())
	router.GET("/login", func(c *gin.Context) {
		require.NoError(t, sessions.SetSession(c, "a@b.c"))
		c.Status(http.StatusNoContent)
	})
	router.GET("/private", LoginRequired("/login"), func(c *gin.Context) {
		email, _ := CurrentUser(c)
		c.String(http.StatusOK, email)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	session := cookieNamed(w.Result(), utils.SessionCookieName)
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(session)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@b.c", w.Body.String())
}

func TestSession_TamperedCookieIsAnonymous(t *testing.T) {
	sessions := NewSessionManager("secret", time.Hour, false, logger.NewNop())
	forged, err := utils.GenerateSessionToken("a@b.c", "other-secret", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.Use(sessions.LoadSession())
	router.GET("/", func(c *gin.Context) {
		_, ok := CurrentUser(c)
		c.String(http.StatusOK, "%v", ok)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: forged})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "false", w.Body.String())
	cleared := cookieNamed(w.Result(), utils.SessionCookieName)
	require.NotNil(t, cleared)
	assert.True(t, cleared.MaxAge < 0)
}

func TestFlash_SurvivesRedirectOnce(t *testing.T) {
	router := gin.New()
	router.POST("/act", func(c *gin.Context) {
		AddFlash(c, "first")
		AddFlash(c, "second")
		c.Redirect(http.StatusFound, "/")
	})
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, strings.Join(Flashes(c), "|"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/act", nil))
	flash := cookieNamed(w.Result(), utils.FlashCookieName)
	require.NotNil(t, flash)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(flash)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "first|second", w.Body.String())
	assert.True(t, cookieNamed(w.Result(), utils.FlashCookieName).MaxAge < 0)
}

func TestAddFlash_SingleCookiePerResponse(t *testing.T) {
	router := gin.New()
	router.POST("/act", func(c *gin.Context) {
		c.SetCookie("other", "keep", 60, "/", "", false, true)
		AddFlash(c, "first")
		AddFlash(c, "second")
		AddFlash(c, "third")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/act", nil))

	var flashes int
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == utils.FlashCookieName {
			flashes++
		}
	}
	assert.Equal(t, 1, flashes)
	assert.NotNil(t, cookieNamed(w.Result(), "other"))
}

func TestMaxBodySize(t *testing.T) {
	router := gin.New()
	router.Use(MaxBodySize(8))
	router.POST("/", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		if IsRequestTooLarge(err) {
			utils.RequestTooLargeResponse(c)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("tiny")))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("far too large")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("far too large"))
	req.ContentLength = -1
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(requestIDKey)) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "given")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "given", w.Body.String())
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware([]string{"https://helpize.org"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://helpize.org")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://helpize.org", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://other.org")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
