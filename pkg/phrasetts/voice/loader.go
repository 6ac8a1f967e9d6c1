package voice

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shouni/go-phrase-tts/pkg/phrasetts/api"
)

// ----------------------------------------------------------------------
// ロードロジック
// ----------------------------------------------------------------------

// LoadVoice は /v1/voices エンドポイントから音声一覧を取得し、
// sel.Name の音声が sel.LanguageCode で利用できることを確認します。
// sel.Name が空の場合はサービス側の自動選択に任せるため、一覧が空でなければ成功とします。
func LoadVoice(ctx context.Context, client VoiceClient, sel Selection) (*Voice, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	// 1. API呼び出し
	bodyBytes, err := client.ListVoices(ctx, sel.LanguageCode)
	if err != nil {
		return nil, err
	}

	// 2. JSONデコード
	var resp api.ListVoicesResponse
	if err := json.Unmarshal(bodyBytes, &resp); err != nil {
		return nil, &api.ErrInvalidJSON{Details: "/v1/voices 応答", WrappedErr: err}
	}

	// 3. 言語で絞り込み、名前で検索
	available := 0
	for _, v := range resp.Voices {
		if !supportsLanguage(v, sel.LanguageCode) {
			continue
		}
		available++

		if sel.Name != "" && v.Name != sel.Name {
			continue
		}

		if sel.Gender != "" && v.SsmlGender != "" && v.SsmlGender != sel.Gender {
			slog.WarnContext(ctx, "音声の性別ヒントが設定と一致しません。サービスの値が優先されます。",
				"voice", v.Name, "configured_gender", sel.Gender, "voice_gender", v.SsmlGender)
		}

		slog.InfoContext(ctx, "音声設定を確認しました", "voice", v.Name, "language", sel.LanguageCode,
			"sample_rate_hz", v.NaturalSampleRateHertz)

		return &Voice{
			Name:                   v.Name,
			LanguageCodes:          v.LanguageCodes,
			Gender:                 v.SsmlGender,
			NaturalSampleRateHertz: v.NaturalSampleRateHertz,
		}, nil
	}

	return nil, &ErrVoiceNotFound{Name: sel.Name, LanguageCode: sel.LanguageCode, Available: available}
}

func supportsLanguage(v api.VoiceInfo, languageCode string) bool {
	for _, code := range v.LanguageCodes {
		if code == languageCode {
			return true
		}
	}
	return false
}
