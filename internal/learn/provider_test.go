package learn

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/saulo-duarte/learnai-lambda/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

const testModel = "gemini-test"

// fakeGemini answers generateContent calls with a canned status and body and
// records the last request it saw.
type fakeGemini struct {
	status int
	body   string
	delay  time.Duration

	path   string
	apiKey string
	req    map[string]interface{}
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.path = r.URL.Path
	f.apiKey = r.Header.Get("x-goog-api-key")
	_ = json.NewDecoder(r.Body).Decode(&f.req)

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = w.Write([]byte(f.body))
}

func newTestGeminiProvider(t *testing.T, fake *fakeGemini, cfg config.ModelConfig) *geminiProvider {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  srv.Client(),
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	require.NoError(t, err)

	cfg.Name = testModel
	return newGeminiProvider(client, cfg)
}

func candidateBody(text string) string {
	return `{"candidates":[{"content":{"role":"model","parts":[{"text":` +
		mustJSON(text) + `}]},"finishReason":"STOP"}]}`
}

func mustJSON(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestGeminiProvider_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		fake := &fakeGemini{status: http.StatusOK, body: candidateBody("He goes to school.")}
		p := newTestGeminiProvider(t, fake, config.ModelConfig{Timeout: 5 * time.Second})

		got, err := p.Generate(ctx, `Sentence: "He go to school."`)
		require.NoError(t, err)

		assert.Equal(t, "He goes to school.", got)
		assert.True(t, strings.HasSuffix(fake.path, "models/"+testModel+":generateContent"), fake.path)
		assert.Equal(t, "test-key", fake.apiKey)
		assert.Contains(t, mustJSON(fake.req["contents"]), "He go to school.")
	})

	t.Run("temperature is sent", func(t *testing.T) {
		temp := float32(0.25)
		fake := &fakeGemini{status: http.StatusOK, body: candidateBody("ok")}
		p := newTestGeminiProvider(t, fake, config.ModelConfig{Timeout: 5 * time.Second, Temperature: &temp})

		_, err := p.Generate(ctx, "instruction")
		require.NoError(t, err)

		genConfig, ok := fake.req["generationConfig"].(map[string]interface{})
		require.True(t, ok, "generationConfig missing from request")
		assert.InDelta(t, 0.25, genConfig["temperature"], 0.0001)
	})

	t.Run("blank text", func(t *testing.T) {
		fake := &fakeGemini{status: http.StatusOK, body: candidateBody("  \n ")}
		p := newTestGeminiProvider(t, fake, config.ModelConfig{Timeout: 5 * time.Second})

		_, err := p.Generate(ctx, "instruction")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("no candidates", func(t *testing.T) {
		fake := &fakeGemini{status: http.StatusOK, body: `{"candidates":[]}`}
		p := newTestGeminiProvider(t, fake, config.ModelConfig{Timeout: 5 * time.Second})

		_, err := p.Generate(ctx, "instruction")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("api error", func(t *testing.T) {
		fake := &fakeGemini{
			status: http.StatusForbidden,
			body:   `{"error":{"code":403,"message":"API key not valid.","status":"PERMISSION_DENIED"}}`,
		}
		p := newTestGeminiProvider(t, fake, config.ModelConfig{Timeout: 5 * time.Second})

		_, err := p.Generate(ctx, "instruction")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmptyResponse)
		assert.ErrorContains(t, err, "generate content")
		assert.ErrorContains(t, err, "403")
	})

	t.Run("timeout", func(t *testing.T) {
		fake := &fakeGemini{status: http.StatusOK, body: candidateBody("late"), delay: 2 * time.Second}
		p := newTestGeminiProvider(t, fake, config.ModelConfig{Timeout: 100 * time.Millisecond})

		start := time.Now()
		_, err := p.Generate(ctx, "instruction")
		require.Error(t, err)
		assert.ErrorContains(t, err, "context deadline exceeded")
		assert.Less(t, time.Since(start), time.Second)
	})
}

func TestNewGeminiProvider_UsesConfig(t *testing.T) {
	temp := float32(0.5)
	p, err := NewGeminiProvider(context.Background(), config.ModelConfig{
		APIKey:      "k",
		Name:        "gemini-2.0-flash",
		Timeout:     7 * time.Second,
		Temperature: &temp,
		BaseURL:     "http://127.0.0.1:1",
	})
	require.NoError(t, err)

	gp, ok := p.(*geminiProvider)
	require.True(t, ok)
	assert.Equal(t, "gemini-2.0-flash", gp.model)
	assert.Equal(t, 7*time.Second, gp.timeout)
	assert.Equal(t, &temp, gp.temperature)
}
