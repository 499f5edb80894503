package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpize/internal/utils"
)

const pendingFlashesKey = "pending_flashes"

// AddFlash queues a one-shot message for the next page the browser renders.
func AddFlash(c *gin.Context, message string) {
	pending := append(pendingFlashes(c), message)
	c.Set(pendingFlashesKey, pending)

	data, err := json.Marshal(pending)
	if err != nil {
		return
	}

	writeFlashCookie(c, base64.RawURLEncoding.EncodeToString(data), 300)
}

// Flashes returns queued messages and clears them.
func Flashes(c *gin.Context) []string {
	pending := pendingFlashes(c)
	var messages []string

	raw, err := c.Cookie(utils.FlashCookieName)
	hasCookie := err == nil && raw != ""
	if hasCookie {
		if data, err := base64.RawURLEncoding.DecodeString(raw); err == nil {
			_ = json.Unmarshal(data, &messages)
		}
	}
	messages = append(messages, pending...)

	if hasCookie || len(pending) > 0 {
		writeFlashCookie(c, "", -1)
	}

	c.Set(pendingFlashesKey, []string(nil))
	return messages
}

func pendingFlashes(c *gin.Context) []string {
	if v, ok := c.Get(pendingFlashesKey); ok {
		if messages, ok := v.([]string); ok {
			return messages
		}
	}
	return nil
}

// writeFlashCookie replaces any flash cookie already queued on the response,
// so each response carries at most one.
func writeFlashCookie(c *gin.Context, value string, maxAge int) {
	header := c.Writer.Header()
	prefix := utils.FlashCookieName + "="
	var kept []string
	for _, v := range header.Values("Set-Cookie") {
		if !strings.HasPrefix(v, prefix) {
			kept = append(kept, v)
		}
	}
	header.Del("Set-Cookie")
	for _, v := range kept {
		header.Add("Set-Cookie", v)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.FlashCookieName, value, maxAge, "/", "", false, true)
}
