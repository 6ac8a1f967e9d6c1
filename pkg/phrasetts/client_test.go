package phrasetts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"github.com/shouni/go-phrase-tts/pkg/phrasetts/api"
	"github.com/shouni/go-phrase-tts/pkg/phrasetts/voice"
)

var fakeMP3 = []byte("ID3\x04\x00\x00\x00\x00\x00\x00fake-audio")

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
	return NewClient(srv.URL, 5*time.Second, ts, opts...)
}

func writeSynthesizeResponse(w http.ResponseWriter, audioContent []byte) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(api.SynthesizeResponse{AudioContent: audioContent})
}

func TestClientSynthesize(t *testing.T) {
	var got api.SynthesizeRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/v1/text:synthesize" {
			t.Errorf("path = %s, want /v1/text:synthesize", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		writeSynthesizeResponse(w, fakeMP3)
	})

	req := NewSynthesisRequest("Hej", voice.DefaultSelection(), 500*time.Millisecond)
	data, err := client.Synthesize(context.Background(), req)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if string(data) != string(fakeMP3) {
		t.Errorf("audio = %q, want %q", data, fakeMP3)
	}
	if got.Input.SSML != `<speak>Hej <break time="500ms"/></speak>` {
		t.Errorf("ssml = %q", got.Input.SSML)
	}
	if got.Input.Text != "" {
		t.Errorf("text input should be empty, got %q", got.Input.Text)
	}
	if got.Voice.LanguageCode != "da-DK" || got.Voice.Name != "da-DK-Wavenet-A" || got.Voice.SsmlGender != "FEMALE" {
		t.Errorf("voice = %+v", got.Voice)
	}
	if got.AudioConfig.AudioEncoding != "MP3" {
		t.Errorf("audioEncoding = %q, want MP3", got.AudioConfig.AudioEncoding)
	}
}

func TestClientSynthesizeErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":400,"message":"invalid ssml"}}`, http.StatusBadRequest)
	})

	_, err := client.Synthesize(context.Background(), NewSynthesisRequest("Hej", voice.DefaultSelection(), 0))

	var netErr *api.ErrAPINetwork
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *api.ErrAPINetwork, got %v", err)
	}
	if netErr.Endpoint != "/v1/text:synthesize" {
		t.Errorf("Endpoint = %q", netErr.Endpoint)
	}
}

func TestClientSynthesizeDoesNotRetryServerError(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			writeSynthesizeResponse(w, fakeMP3)
			return
		}
		http.Error(w, "backend unavailable", http.StatusServiceUnavailable)
	})

	start := time.Now()
	_, err := client.Synthesize(context.Background(), NewSynthesisRequest("Hej", voice.DefaultSelection(), 0))

	var netErr *api.ErrAPINetwork
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *api.ErrAPINetwork, got %v", err)
	}
	if calls != 1 {
		t.Errorf("server called %d times, want 1", calls)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Synthesize took %v, expected an immediate failure", elapsed)
	}
}

func TestClientSynthesizeInvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.Synthesize(context.Background(), NewSynthesisRequest("Hej", voice.DefaultSelection(), 0))

	var jsonErr *api.ErrInvalidJSON
	if !errors.As(err, &jsonErr) {
		t.Fatalf("expected *api.ErrInvalidJSON, got %v", err)
	}
}

func TestClientSynthesizeEmptyAudio(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.Synthesize(context.Background(), NewSynthesisRequest("Hej", voice.DefaultSelection(), 0))

	var noData *ErrNoAudioData
	if !errors.As(err, &noData) {
		t.Fatalf("expected *ErrNoAudioData, got %v", err)
	}
}

func TestClientSynthesizeRejectsNonMP3(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeSynthesizeResponse(w, []byte("RIFF\x24\x00\x00\x00WAVE"))
	})

	_, err := client.Synthesize(context.Background(), NewSynthesisRequest("Hej", voice.DefaultSelection(), 0))

	var invalid *ErrInvalidAudio
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *ErrInvalidAudio, got %v", err)
	}
	if invalid.Encoding != "MP3" {
		t.Errorf("Encoding = %q", invalid.Encoding)
	}
}

func TestClientListVoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/v1/voices" {
			t.Errorf("path = %s, want /v1/voices", r.URL.Path)
		}
		if lc := r.URL.Query().Get("languageCode"); lc != "da-DK" {
			t.Errorf("languageCode = %q", lc)
		}
		_, _ = w.Write([]byte(`{"voices":[{"languageCodes":["da-DK"],"name":"da-DK-Wavenet-A","ssmlGender":"FEMALE"}]}`))
	})

	v, err := voice.LoadVoice(context.Background(), client, voice.DefaultSelection())
	if err != nil {
		t.Fatalf("LoadVoice: %v", err)
	}
	if v.Name != "da-DK-Wavenet-A" {
		t.Errorf("Name = %q", v.Name)
	}
}

func TestClientWithoutTokenSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("unexpected Authorization header %q", auth)
		}
		writeSynthesizeResponse(w, fakeMP3)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nil)
	if _, err := client.Synthesize(context.Background(), NewSynthesisRequest("Hej", voice.DefaultSelection(), 0)); err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
}

func TestClientTokenError(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", time.Second, failingTokenSource{})

	_, err := client.Synthesize(context.Background(), NewSynthesisRequest("Hej", voice.DefaultSelection(), 0))

	var netErr *api.ErrAPINetwork
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *api.ErrAPINetwork, got %v", err)
	}
	if !errors.Is(err, errTokenUnavailable) {
		t.Errorf("expected wrapped token error, got %v", err)
	}
}

func TestWithMinInterval(t *testing.T) {
	if c := NewClient("", time.Second, nil); c.limiter != nil {
		t.Error("limiter should be nil by default")
	}
	if c := NewClient("", time.Second, nil, WithMinInterval(0)); c.limiter != nil {
		t.Error("limiter should be nil for zero interval")
	}

	c := NewClient("", time.Second, nil, WithMinInterval(time.Second))
	if c.limiter == nil {
		t.Fatal("limiter should be set")
	}
	if c.apiURL != defaultAPIURL {
		t.Errorf("apiURL = %q, want %q", c.apiURL, defaultAPIURL)
	}

	// 1件目は即時に許可され、2件目はキャンセル済みコンテキストで待機に失敗する
	if err := c.wait(context.Background(), "/test"); err != nil {
		t.Fatalf("first wait: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.wait(ctx, "/test"); err == nil {
		t.Error("expected error waiting with cancelled context")
	}
}

var errTokenUnavailable = errors.New("token unavailable")

type failingTokenSource struct{}

func (failingTokenSource) Token() (*oauth2.Token, error) {
	return nil, errTokenUnavailable
}
