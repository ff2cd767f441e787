package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// recordedRequest is a Discord REST call captured by the mock transport
type recordedRequest struct {
	Method string
	Path   string
	Body   []byte
}

// TestContext holds a Discord session whose REST calls are captured
type TestContext struct {
	Session *discordgo.Session

	mu       sync.Mutex
	requests []recordedRequest
	// Respond overrides the body returned for a request path containing the key
	Respond map[string]string
	// Status overrides the status code for a request path containing the key
	Status map[string]int
}

// SetupTestContext creates a session with intercepted HTTP and a known bot user
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}
	session.State.User = &discordgo.User{ID: "bot-id", Username: "closetbot", Bot: true}

	tc := &TestContext{Session: session, Respond: map[string]string{}, Status: map[string]int{}}
	session.Client = &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			tc.mu.Lock()
			tc.requests = append(tc.requests, recordedRequest{Method: req.Method, Path: req.URL.Path, Body: body})
			tc.mu.Unlock()

			resp := "{}"
			for key, v := range tc.Respond {
				if strings.Contains(req.URL.Path, key) {
					resp = v
				}
			}
			status := http.StatusOK
			for key, code := range tc.Status {
				if strings.Contains(req.URL.Path, key) {
					status = code
				}
			}
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(bytes.NewBufferString(resp)),
				Header:     http.Header{"Content-Type": []string{"application/json"}},
			}, nil
		},
	}}
	return tc
}

// Requests returns the captured calls
func (tc *TestContext) Requests() []recordedRequest {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return append([]recordedRequest(nil), tc.requests...)
}

// SentMessages returns the contents posted with ChannelMessageSend
func (tc *TestContext) SentMessages(t *testing.T) []string {
	t.Helper()
	var out []string
	for _, r := range tc.Requests() {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.Path, "/messages") {
			continue
		}
		var msg discordgo.MessageSend
		if err := json.Unmarshal(r.Body, &msg); err != nil {
			t.Fatalf("decode message: %v", err)
		}
		out = append(out, msg.Content)
	}
	return out
}

// InteractionDeferrals returns the response types sent to interaction callbacks
func (tc *TestContext) InteractionDeferrals(t *testing.T) []discordgo.InteractionResponseType {
	t.Helper()
	var out []discordgo.InteractionResponseType
	for _, r := range tc.Requests() {
		if !strings.HasSuffix(r.Path, "/callback") {
			continue
		}
		var resp discordgo.InteractionResponse
		if err := json.Unmarshal(r.Body, &resp); err != nil {
			t.Fatalf("decode interaction response: %v", err)
		}
		out = append(out, resp.Type)
	}
	return out
}

// InteractionEdits returns the contents written into deferred responses
func (tc *TestContext) InteractionEdits(t *testing.T) []string {
	t.Helper()
	var out []string
	for _, r := range tc.Requests() {
		if r.Method != http.MethodPatch || !strings.HasSuffix(r.Path, "/messages/@original") {
			continue
		}
		var edit discordgo.WebhookEdit
		if err := json.Unmarshal(r.Body, &edit); err != nil {
			t.Fatalf("decode interaction edit: %v", err)
		}
		if edit.Content != nil {
			out = append(out, *edit.Content)
		}
	}
	return out
}
