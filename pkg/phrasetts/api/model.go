package api

// ----------------------------------------------------------------------
// データモデル (Cloud Text-to-Speech REST v1)
// ----------------------------------------------------------------------

// SynthesizeRequest は /v1/text:synthesize API のリクエスト本体です。
type SynthesizeRequest struct {
	Input       SynthesisInput       `json:"input"`
	Voice       VoiceSelectionParams `json:"voice"`
	AudioConfig AudioConfig          `json:"audioConfig"`
}

// SynthesisInput はテキストまたは SSML のどちらか一方を保持します。
type SynthesisInput struct {
	Text string `json:"text,omitempty"`
	SSML string `json:"ssml,omitempty"`
}

// VoiceSelectionParams は使用する言語・音声・性別の指定です。
type VoiceSelectionParams struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name,omitempty"`
	SsmlGender   string `json:"ssmlGender,omitempty"`
}

// AudioConfig は出力音声の形式です。
type AudioConfig struct {
	AudioEncoding string `json:"audioEncoding"`
}

// SynthesizeResponse は /v1/text:synthesize API の応答です。
// audioContent は base64 文字列で返り、encoding/json が []byte へ復号します。
type SynthesizeResponse struct {
	AudioContent []byte `json:"audioContent"`
}

// ListVoicesResponse は /v1/voices API の応答です。
type ListVoicesResponse struct {
	Voices []VoiceInfo `json:"voices"`
}

// VoiceInfo は /v1/voices が返す音声1件分の情報です。
type VoiceInfo struct {
	LanguageCodes          []string `json:"languageCodes"`
	Name                   string   `json:"name"`
	SsmlGender             string   `json:"ssmlGender"`
	NaturalSampleRateHertz int      `json:"naturalSampleRateHertz"`
}
