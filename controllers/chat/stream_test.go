package chatControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat/stream/", func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
	}, ChatStreamHandler(nil))
	return r
}

func postChat(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat/stream/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// sseFrames splits a response body into its data payloads.
func sseFrames(t *testing.T, body string) []map[string]interface{} {
	t.Helper()
	var frames []map[string]interface{}
	for _, block := range strings.Split(body, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		require.True(t, strings.HasPrefix(block, "data: "), "frame %q", block)
		data := strings.TrimPrefix(block, "data: ")
		if data == "[DONE]" {
			frames = append(frames, map[string]interface{}{"done": true})
			continue
		}
		var frame map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(data), &frame))
		frames = append(frames, frame)
	}
	return frames
}

func TestChatStreamRejectsInvalidJSON(t *testing.T) {
	r := chatRouter("")
	w := postChat(r, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid JSON in request body")
}

func TestChatStreamRejectsEmptyMessage(t *testing.T) {
	r := chatRouter("")
	w := postChat(r, `{"message": "   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No message provided")
}

func TestChatStreamGreetingCannedReply(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	r := chatRouter("")

	w := postChat(r, `{"message": "hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	frames := sseFrames(t, w.Body.String())
	require.Len(t, frames, 3)
	assert.Equal(t, "intent_detected", frames[0]["type"])
	assert.Equal(t, "greeting", frames[0]["intent"])
	assert.Contains(t, frames[1]["content"], "Welcome to Sweet Dessert")
	assert.Equal(t, true, frames[2]["done"])
}

func TestChatStreamCheckoutRequiresAuth(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	r := chatRouter("")

	w := postChat(r, `{"message": "I want to checkout"}`)
	require.Equal(t, http.StatusOK, w.Code)

	frames := sseFrames(t, w.Body.String())
	require.GreaterOrEqual(t, len(frames), 2)
	assert.Equal(t, "checkout", frames[0]["intent"])
	assert.Equal(t, "auth_required", frames[1]["type"])
	assert.Equal(t, "Please sign in to proceed to checkout", frames[1]["message"])
}

func TestChatStreamCheckoutRedirectsWhenAuthenticated(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	r := chatRouter("user-1")

	w := postChat(r, `{"message": "proceed to payment"}`)
	require.Equal(t, http.StatusOK, w.Code)

	frames := sseFrames(t, w.Body.String())
	require.GreaterOrEqual(t, len(frames), 2)
	assert.Equal(t, "redirect_checkout", frames[1]["type"])
}

func TestChatStreamRelaysUpstreamDeltas(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer rk_test", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, true, payload["stream"])

		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte(": keep-alive\n\n"))
		w.Write([]byte(`data: {"choices":[{"delta":{"content":"Hello "}}]}` + "\n\n"))
		w.Write([]byte(`data: {"choices":[{"delta":{"content":"there!"}}]}` + "\n\n"))
		w.Write([]byte("data: [DONE]\n\n"))
	}))
	defer upstream.Close()

	old := OpenRouterURL
	OpenRouterURL = upstream.URL
	defer func() { OpenRouterURL = old }()

	r := chatRouter("")
	w := postChat(r, `{"message": "hello", "api_key": "rk_test"}`)
	require.Equal(t, http.StatusOK, w.Code)

	frames := sseFrames(t, w.Body.String())
	require.Len(t, frames, 4)
	assert.Equal(t, "intent_detected", frames[0]["type"])
	assert.Equal(t, "Hello ", frames[1]["content"])
	assert.Equal(t, "there!", frames[2]["content"])
	assert.Equal(t, true, frames[3]["done"])
}

func TestChatStreamFallsBackWhenUpstreamSendsNothing(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data: [DONE]\n\n"))
	}))
	defer upstream.Close()

	old := OpenRouterURL
	OpenRouterURL = upstream.URL
	defer func() { OpenRouterURL = old }()

	r := chatRouter("")
	w := postChat(r, `{"message": "hello", "api_key": "rk_test"}`)
	require.Equal(t, http.StatusOK, w.Code)

	frames := sseFrames(t, w.Body.String())
	require.Len(t, frames, 3)
	assert.Equal(t, "I can help you with our desserts! What would you like to know?", frames[1]["content"])
}

func TestChatStreamReportsUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	old := OpenRouterURL
	OpenRouterURL = upstream.URL
	defer func() { OpenRouterURL = old }()

	r := chatRouter("")
	w := postChat(r, `{"message": "hello", "api_key": "rk_test"}`)
	require.Equal(t, http.StatusOK, w.Code)

	frames := sseFrames(t, w.Body.String())
	require.Len(t, frames, 2)
	assert.Equal(t, "Failed to connect to AI service. Please try again.", frames[1]["error"])
}
