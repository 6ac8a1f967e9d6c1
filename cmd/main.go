package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rs/xid"

	"github.com/shouni/go-phrase-tts/pkg/phrasetts"
	"github.com/shouni/go-phrase-tts/pkg/phrasetts/config"
	"github.com/shouni/go-phrase-tts/pkg/phrasetts/parser"
)

// executorFactory は設定から EngineExecutor を組み立てる関数です。
type executorFactory func(ctx context.Context, cfg config.Config) (phrasetts.EngineExecutor, error)

func main() {
	os.Exit(run(config.Load, phrasetts.NewEngineExecutor))
}

// run は1回のバッチ実行を行い、終了コードを返します。
// マニフェストが書き込まれれば、全フレーズが失敗していても 0 を返します。
func run(loadConfig func() (config.Config, error), newExecutor executorFactory) int {
	// 設定の読み込み (.env と環境変数。未設定の項目は既定値)
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました。", "error", err)
		return 1
	}

	// ログ設定
	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      cfg.SlogLevel(),
		TimeFormat: time.TimeOnly,
	})).With("run_id", xid.New().String()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. 入力の読み込み (失敗は致命的)
	phrases, err := parser.ReadPhrases(cfg.InputFile)
	if err != nil {
		slog.Error("入力ファイルの読み込みに失敗しました。", "error", err)
		return 1
	}
	slog.Info("入力ファイルを読み込みました。", "path", cfg.InputFile, "phrases", len(phrases))

	// 2. Executorの初期化 (認証情報の欠落は致命的)
	executor, err := newExecutor(ctx, cfg)
	if err != nil {
		slog.Error("Executorの初期化に失敗しました。", "error", err)
		slog.Error("認証情報ファイルのパスと音声設定を確認してください。", "credentials", cfg.CredentialsFile)
		return 1
	}

	// 3. 音声合成の実行
	report, err := executor.Execute(ctx, phrases)
	if err != nil {
		slog.Error("音声合成の実行に失敗しました。", "error", err)
		return 1
	}

	absPath, _ := filepath.Abs(report.ManifestPath)
	slog.Info(fmt.Sprintf("✅ 処理が完了しました。マニフェスト: %s", absPath),
		"succeeded", report.Succeeded(), "failed", report.Failed())

	return 0
}
