package phrasetts

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/shouni/go-phrase-tts/pkg/phrasetts/audio"
	"github.com/shouni/go-phrase-tts/pkg/phrasetts/voice"
)

type Engine struct {
	synth  Synthesizer
	config EngineConfig
}

type EngineConfig struct {
	OutputDir    string
	ManifestPath string
	Voice        voice.Selection
	// フレーズ末尾の無音。1ms 未満なら無音を挿入しない (既定値での補完は行わない)。
	Pause          time.Duration
	RequestTimeout time.Duration
}

// ----------------------------------------------------------------------
// Executeメソッド用のオプション定義 (Functional Options Pattern)
// ----------------------------------------------------------------------

// ExecuteConfig は Execute メソッドの実行中に適用されるオプション設定を保持する
type ExecuteConfig struct {
	Pause time.Duration
}

// ExecuteOption はオプションを適用するための関数シグネチャ
type ExecuteOption func(*ExecuteConfig)

// WithPause は、この Execute 呼び出しに限りフレーズ末尾の無音の長さを上書きするオプション
func WithPause(d time.Duration) ExecuteOption {
	return func(cfg *ExecuteConfig) {
		cfg.Pause = d
	}
}

// NewEngine は新しい Engine インスタンスを作成し、依存関係を注入します。
func NewEngine(synth Synthesizer, config EngineConfig) *Engine {
	if config.OutputDir == "" {
		config.OutputDir = DefaultOutputDir
	}
	if config.ManifestPath == "" {
		config.ManifestPath = DefaultManifestPath
	}
	if config.RequestTimeout == 0 {
		config.RequestTimeout = DefaultRequestTimeout
	}
	if config.Voice.LanguageCode == "" {
		config.Voice = voice.DefaultSelection()
	}

	return &Engine{
		synth:  synth,
		config: config,
	}
}

// ----------------------------------------------------------------------
// ヘルパー関数
// ----------------------------------------------------------------------

// processPhrase は単一のフレーズを合成し、音声ファイルとして書き込みます。
func (e *Engine) processPhrase(ctx context.Context, index int, phrase string, cfg *ExecuteConfig) ItemResult {
	result := ItemResult{Index: index, Phrase: phrase}

	// 1. ファイル名の決定
	name := SanitizeFilename(phrase)
	if name == "" {
		result.Err = &ErrEmptyFilename{Phrase: phrase}
		return result
	}
	result.FileName = name + audio.FileExtension
	result.Path = filepath.Join(e.config.OutputDir, result.FileName)

	// 2. 音声合成 (1呼び出しごとにタイムアウトを設定)
	req := NewSynthesisRequest(phrase, e.config.Voice, cfg.Pause)

	callCtx, cancel := context.WithTimeout(ctx, e.config.RequestTimeout)
	defer cancel()

	data, err := e.synth.Synthesize(callCtx, req)
	if err != nil {
		result.Err = &ErrSynthesis{Phrase: phrase, WrappedErr: err}
		return result
	}

	// 3. ファイルへの書き込み (同名ファイルは上書き)
	if err := os.WriteFile(result.Path, data, filePerm); err != nil {
		result.Err = &ErrFileWrite{Path: result.Path, WrappedErr: err}
		return result
	}
	result.Size = len(data)

	return result
}

// ----------------------------------------------------------------------
// メイン処理 (Execute メソッド)
// ----------------------------------------------------------------------

// Execute はフレーズを入力順に1件ずつ合成して音声ファイルを書き込み、最後にマニフェストを書き込みます。
// フレーズ単位の失敗はログに記録して Report に残し、処理を継続します。
// 返されるエラーは、出力ディレクトリの作成失敗、マニフェストの書き込み失敗、
// またはコンテキストのキャンセルのいずれかです。
func (e *Engine) Execute(ctx context.Context, phrases []string, opts ...ExecuteOption) (*Report, error) {
	// 1. デフォルト設定の初期化とオプションの適用
	cfg := &ExecuteConfig{Pause: e.config.Pause}
	for _, opt := range opts {
		opt(cfg)
	}

	// 2. 出力ディレクトリの準備
	if err := os.MkdirAll(e.config.OutputDir, dirPerm); err != nil {
		return nil, &ErrFileWrite{Path: e.config.OutputDir, WrappedErr: err}
	}

	report := &Report{
		Items:        make([]ItemResult, 0, len(phrases)),
		ManifestPath: e.config.ManifestPath,
	}

	slog.InfoContext(ctx, "音声合成バッチ処理開始",
		"total_phrases", len(phrases),
		"output_dir", e.config.OutputDir,
		"voice", e.config.Voice.Name)

	// 3. フレーズごとの逐次処理
	for i, phrase := range phrases {
		if ctx.Err() != nil {
			slog.WarnContext(ctx, "バッチ処理ループがコンテキストキャンセルにより終了しました。",
				"processed", i, "remaining", len(phrases)-i)
			break
		}

		result := e.processPhrase(ctx, i, phrase, cfg)
		if result.OK() {
			slog.InfoContext(ctx, "音声ファイルを生成しました",
				"index", i, "path", result.Path, "size", humanize.Bytes(uint64(result.Size)))
		} else {
			slog.ErrorContext(ctx, "フレーズの処理に失敗したためスキップします",
				"index", i, "phrase", phrase, "error", result.Err)
		}
		report.Items = append(report.Items, result)
	}

	// 4. マニフェストの書き込み
	entries := report.Entries()
	if err := WriteManifest(e.config.ManifestPath, entries); err != nil {
		return report, err
	}
	slog.InfoContext(ctx, "マニフェストを書き込みました", "path", e.config.ManifestPath, "entries", len(entries))

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("処理が中断されました (%d/%d 件処理済み): %w", len(report.Items), len(phrases), err)
	}

	return report, nil
}
