package voice

// ----------------------------------------------------------------------
// 既定の音声設定
// ----------------------------------------------------------------------

const (
	DefaultLanguageCode = "da-DK"
	// 高品質な WaveNet 音声
	DefaultVoiceName = "da-DK-Wavenet-A"
	DefaultGender    = GenderFemale
)

// SSML の性別ヒント (Cloud Text-to-Speech の SsmlVoiceGender と一致させる)
const (
	GenderUnspecified = "SSML_VOICE_GENDER_UNSPECIFIED"
	GenderMale        = "MALE"
	GenderFemale      = "FEMALE"
	GenderNeutral     = "NEUTRAL"
)

// 出力エンコーディング。出力ファイルは .mp3 固定のため MP3 のみを扱う。
const EncodingMP3 = "MP3"
