package phrasetts

import (
	"context"
	"log/slog"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/shouni/go-phrase-tts/pkg/phrasetts/config"
	"github.com/shouni/go-phrase-tts/pkg/phrasetts/parser"
	"github.com/shouni/go-phrase-tts/pkg/phrasetts/voice"
)

// ----------------------------------------------------------------------
// Factory 関数
// ----------------------------------------------------------------------

// NewEngineExecutor は、認証情報ファイルの読み込み、クライアントの初期化、音声設定の確認を行い、
// EngineExecutorインターフェースを実装した具象型を組み立てて返します。
// ctx はトークン更新に使われるため、実行全体と同じ寿命のものを渡してください。
func NewEngineExecutor(ctx context.Context, cfg config.Config) (EngineExecutor, error) {
	// 1. 認証情報の読み込み (欠落は致命的)
	credJSON, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, &ErrStartup{
			Stage:      "認証情報の読み込み",
			WrappedErr: &parser.ErrFileAccess{Path: cfg.CredentialsFile, WrappedErr: err},
		}
	}

	creds, err := google.CredentialsFromJSON(ctx, credJSON, CloudPlatformScope)
	if err != nil {
		return nil, &ErrStartup{Stage: "認証情報の解析", WrappedErr: err}
	}
	slog.InfoContext(ctx, "認証情報を読み込みました", "path", cfg.CredentialsFile, "project_id", creds.ProjectID)

	return newEngineExecutor(ctx, cfg, creds.TokenSource)
}

// newEngineExecutor はトークンソースを受け取り、Engine を組み立てます。
func newEngineExecutor(ctx context.Context, cfg config.Config, ts oauth2.TokenSource) (EngineExecutor, error) {
	// 2. クライアントの初期化
	client := NewClient(cfg.APIURL, cfg.RequestTimeout, ts, WithMinInterval(cfg.MinRequestInterval))

	sel := voice.Selection{
		LanguageCode: cfg.LanguageCode,
		Name:         cfg.VoiceName,
		Gender:       cfg.VoiceGender,
	}
	if err := sel.Validate(); err != nil {
		return nil, &ErrStartup{Stage: "音声設定の検証", WrappedErr: err}
	}

	// 3. 音声設定の確認 (任意)
	if cfg.VerifyVoice {
		slog.InfoContext(ctx, "音声一覧を取得して音声設定を確認中...", "language", sel.LanguageCode, "voice", sel.Name)
		if _, err := voice.LoadVoice(ctx, client, sel); err != nil {
			return nil, &ErrStartup{Stage: "音声設定の確認", WrappedErr: err}
		}
	} else {
		slog.WarnContext(ctx, "音声設定の確認をスキップします", "voice", sel.Name)
	}

	// 4. Engineの組み立て
	engineConfig := EngineConfig{
		OutputDir:      cfg.OutputDir,
		ManifestPath:   cfg.ManifestFile,
		Voice:          sel,
		Pause:          cfg.Pause,
		RequestTimeout: cfg.RequestTimeout,
	}
	engine := NewEngine(client, engineConfig)

	slog.InfoContext(ctx, "Executorの初期化が完了しました。",
		"api_url", client.apiURL,
		"pause", cfg.Pause.String(),
		"request_timeout", cfg.RequestTimeout.String(),
		"min_request_interval", cfg.MinRequestInterval.String())

	return engine, nil
}
