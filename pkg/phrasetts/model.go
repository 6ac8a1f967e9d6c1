package phrasetts

import (
	"context"
	"time"

	"github.com/shouni/go-phrase-tts/pkg/phrasetts/voice"
)

// ----------------------------------------------------------------------
// インターフェース
// ----------------------------------------------------------------------

// EngineExecutor は、フレーズ列を音声ファイルとマニフェストに変換するための契約を定義します。
type EngineExecutor interface {
	Execute(ctx context.Context, phrases []string, opts ...ExecuteOption) (*Report, error)
}

// Synthesizer は1件の合成リクエストを音声データに変換します。Client がこれを満たします。
type Synthesizer interface {
	Synthesize(ctx context.Context, req SynthesisRequest) ([]byte, error)
}

// ----------------------------------------------------------------------
// データモデル
// ----------------------------------------------------------------------

// SynthesisRequest はフレーズと固定の音声設定から、フレーズごとに組み立てられます。
type SynthesisRequest struct {
	Phrase        string
	SSML          string
	Voice         voice.Selection
	AudioEncoding string
}

// NewSynthesisRequest は phrase を SSML で包み、末尾に pause の無音を付けたリクエストを作成します。
func NewSynthesisRequest(phrase string, sel voice.Selection, pause time.Duration) SynthesisRequest {
	return SynthesisRequest{
		Phrase:        phrase,
		SSML:          BuildSSML(phrase, pause),
		Voice:         sel,
		AudioEncoding: voice.EncodingMP3,
	}
}

// ItemResult は1フレーズの処理結果です。Err が nil なら成功です。
type ItemResult struct {
	Index    int    // 入力中の位置 (0 始まり)
	Phrase   string
	FileName string // 例: "hej.mp3"
	Path     string
	Size     int
	Err      error
}

// OK はフレーズが音声ファイルとして書き込まれたかを返します。
func (r ItemResult) OK() bool {
	return r.Err == nil
}

// Report は1回の実行結果です。Items は処理した順に並びます。
type Report struct {
	Items        []ItemResult
	ManifestPath string
}

// Succeeded は成功したフレーズ数を返します。
func (r *Report) Succeeded() int {
	n := 0
	for _, item := range r.Items {
		if item.OK() {
			n++
		}
	}
	return n
}

// Failed は失敗したフレーズ数を返します。
func (r *Report) Failed() int {
	return len(r.Items) - r.Succeeded()
}

// Entries は成功したフレーズのマニフェスト行を入力順に返します。
func (r *Report) Entries() []string {
	entries := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		if item.OK() {
			entries = append(entries, FormatManifestEntry(item.FileName))
		}
	}
	return entries
}

// Errors は失敗したフレーズのエラーを入力順に返します。
func (r *Report) Errors() []error {
	var errs []error
	for _, item := range r.Items {
		if !item.OK() {
			errs = append(errs, item.Err)
		}
	}
	return errs
}
