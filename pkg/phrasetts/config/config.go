package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config はバッチ実行全体の設定です。
// 既定値はすべて固定値として運用できるように設定されており、環境変数で上書きできます。
type Config struct {
	InputFile       string `envDefault:"words.txt"                          env:"PHRASETTS_INPUT_FILE"`
	OutputDir       string `envDefault:"audioFiles"                         env:"PHRASETTS_OUTPUT_DIR"`
	ManifestFile    string `envDefault:"audioList.txt"                      env:"PHRASETTS_MANIFEST_FILE"`
	CredentialsFile string `envDefault:"google-credentials.json"            env:"PHRASETTS_CREDENTIALS_FILE"`
	APIURL          string `envDefault:"https://texttospeech.googleapis.com" env:"PHRASETTS_API_URL"`

	LanguageCode string `envDefault:"da-DK"           env:"PHRASETTS_LANGUAGE_CODE"`
	VoiceName    string `envDefault:"da-DK-Wavenet-A" env:"PHRASETTS_VOICE_NAME"`
	VoiceGender  string `envDefault:"FEMALE"          env:"PHRASETTS_VOICE_GENDER"`
	VerifyVoice  bool   `envDefault:"false"           env:"PHRASETTS_VERIFY_VOICE"`

	// フレーズ末尾に挿入する無音の長さ。0 以下で無音を挿入しない。
	Pause time.Duration `envDefault:"500ms" env:"PHRASETTS_PAUSE"`
	// 1回の合成呼び出しのタイムアウト
	RequestTimeout time.Duration `envDefault:"60s" env:"PHRASETTS_REQUEST_TIMEOUT"`
	// リクエスト間の最小間隔。0 で間隔を空けない。
	MinRequestInterval time.Duration `envDefault:"0s" env:"PHRASETTS_MIN_REQUEST_INTERVAL"`

	LogLevel string `envDefault:"info" env:"PHRASETTS_LOG_LEVEL"`
}

// Load はカレントディレクトリの .env (存在する場合) を読み込み、環境変数から Config を構築します。
func Load() (Config, error) {
	// .env は任意
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("設定の読み込みに失敗しました: %w", err)
	}

	return cfg, nil
}

// SlogLevel は LogLevel を slog.Level に変換します。不明な値は Info として扱います。
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
