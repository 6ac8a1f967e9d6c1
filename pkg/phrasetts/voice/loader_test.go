package voice

import (
	"context"
	"errors"
	"testing"

	"github.com/shouni/go-phrase-tts/pkg/phrasetts/api"
)

type stubVoiceClient struct {
	body         string
	err          error
	languageCode string
}

func (s *stubVoiceClient) ListVoices(_ context.Context, languageCode string) ([]byte, error) {
	s.languageCode = languageCode
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.body), nil
}

const voicesBody = `{"voices":[
	{"languageCodes":["da-DK"],"name":"da-DK-Standard-A","ssmlGender":"FEMALE","naturalSampleRateHertz":24000},
	{"languageCodes":["da-DK"],"name":"da-DK-Wavenet-A","ssmlGender":"FEMALE","naturalSampleRateHertz":24000},
	{"languageCodes":["nb-NO"],"name":"nb-NO-Wavenet-A","ssmlGender":"FEMALE","naturalSampleRateHertz":24000}
]}`

func TestLoadVoiceFindsConfiguredVoice(t *testing.T) {
	client := &stubVoiceClient{body: voicesBody}

	v, err := LoadVoice(context.Background(), client, DefaultSelection())
	if err != nil {
		t.Fatalf("LoadVoice: %v", err)
	}

	if client.languageCode != "da-DK" {
		t.Errorf("ListVoices called with %q, want da-DK", client.languageCode)
	}
	if v.Name != "da-DK-Wavenet-A" {
		t.Errorf("Name = %q, want da-DK-Wavenet-A", v.Name)
	}
	if v.NaturalSampleRateHertz != 24000 {
		t.Errorf("NaturalSampleRateHertz = %d, want 24000", v.NaturalSampleRateHertz)
	}
}

func TestLoadVoiceNotFound(t *testing.T) {
	client := &stubVoiceClient{body: voicesBody}
	sel := Selection{LanguageCode: "da-DK", Name: "nb-NO-Wavenet-A", Gender: GenderFemale}

	_, err := LoadVoice(context.Background(), client, sel)

	var notFound *ErrVoiceNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *ErrVoiceNotFound, got %v", err)
	}
	if notFound.Available != 2 {
		t.Errorf("Available = %d, want 2", notFound.Available)
	}
}

func TestLoadVoiceWithoutNameAcceptsAnyVoiceOfLanguage(t *testing.T) {
	client := &stubVoiceClient{body: voicesBody}

	v, err := LoadVoice(context.Background(), client, Selection{LanguageCode: "nb-NO"})
	if err != nil {
		t.Fatalf("LoadVoice: %v", err)
	}
	if v.Name != "nb-NO-Wavenet-A" {
		t.Errorf("Name = %q, want nb-NO-Wavenet-A", v.Name)
	}
}

func TestLoadVoiceInvalidJSON(t *testing.T) {
	client := &stubVoiceClient{body: "not json"}

	_, err := LoadVoice(context.Background(), client, DefaultSelection())

	var jsonErr *api.ErrInvalidJSON
	if !errors.As(err, &jsonErr) {
		t.Fatalf("expected *api.ErrInvalidJSON, got %v", err)
	}
}

func TestLoadVoicePropagatesClientError(t *testing.T) {
	want := errors.New("boom")
	client := &stubVoiceClient{err: want}

	_, err := LoadVoice(context.Background(), client, DefaultSelection())
	if !errors.Is(err, want) {
		t.Fatalf("expected client error, got %v", err)
	}
}

func TestLoadVoiceRejectsEmptyLanguage(t *testing.T) {
	_, err := LoadVoice(context.Background(), &stubVoiceClient{body: voicesBody}, Selection{Name: "x"})

	var selErr *ErrInvalidSelection
	if !errors.As(err, &selErr) {
		t.Fatalf("expected *ErrInvalidSelection, got %v", err)
	}
}
