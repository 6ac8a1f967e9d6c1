package voice

import "context"

// ----------------------------------------------------------------------
// インターフェース定義
// ----------------------------------------------------------------------

// VoiceClient は /v1/voices エンドポイントを呼び出す能力を抽象化するインターフェースです。
// phrasetts.Client がこれを満たします。
type VoiceClient interface {
	ListVoices(ctx context.Context, languageCode string) ([]byte, error)
}

// ----------------------------------------------------------------------
// 構造体定義
// ----------------------------------------------------------------------

// Selection は合成リクエストに付与する固定の音声設定です。
type Selection struct {
	LanguageCode string // 例: "da-DK"
	Name         string // 例: "da-DK-Wavenet-A"
	Gender       string // 例: "FEMALE"
}

// DefaultSelection は既定の音声設定を返します。
func DefaultSelection() Selection {
	return Selection{
		LanguageCode: DefaultLanguageCode,
		Name:         DefaultVoiceName,
		Gender:       DefaultGender,
	}
}

// Validate は必須項目の存在を確認します。Name と Gender は省略可能です。
func (s Selection) Validate() error {
	if s.LanguageCode == "" {
		return &ErrInvalidSelection{Field: "LanguageCode"}
	}
	return nil
}

// Voice はサービスから取得した、検証済みの音声情報です。
type Voice struct {
	Name                   string
	LanguageCodes          []string
	Gender                 string
	NaturalSampleRateHertz int
}
