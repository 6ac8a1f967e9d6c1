package phrasetts

import (
	"fmt"
)

// ----------------------------------------------------------------------
// 起動時エラー (factory.go で利用)
// ----------------------------------------------------------------------

// ErrStartup は処理開始前に発生した致命的なエラーです (認証情報の欠落、音声設定の不備など)。
type ErrStartup struct {
	Stage      string // 例: "認証情報の読み込み"
	WrappedErr error
}

func (e *ErrStartup) Error() string {
	return fmt.Sprintf("起動に失敗しました (%s): %v", e.Stage, e.WrappedErr)
}

func (e *ErrStartup) Unwrap() error {
	return e.WrappedErr
}

// ----------------------------------------------------------------------
// フレーズ単位のエラー (engine.go で利用)
// ----------------------------------------------------------------------

// ErrSynthesis は1フレーズの音声合成呼び出しが失敗したことを示します。
// 該当フレーズはスキップされ、処理は継続します。
type ErrSynthesis struct {
	Phrase     string
	WrappedErr error
}

func (e *ErrSynthesis) Error() string {
	return fmt.Sprintf("フレーズ %q の音声合成に失敗しました: %v", e.Phrase, e.WrappedErr)
}

func (e *ErrSynthesis) Unwrap() error {
	return e.WrappedErr
}

// ErrFileWrite は音声ファイル、出力ディレクトリ、またはマニフェストの書き込み失敗を示します。
type ErrFileWrite struct {
	Path       string
	WrappedErr error
}

func (e *ErrFileWrite) Error() string {
	return fmt.Sprintf("ファイルの書き込みに失敗しました (%s): %v", e.Path, e.WrappedErr)
}

func (e *ErrFileWrite) Unwrap() error {
	return e.WrappedErr
}

// ErrEmptyFilename はフレーズをファイル名に変換した結果が空になったことを示します。
type ErrEmptyFilename struct {
	Phrase string
}

func (e *ErrEmptyFilename) Error() string {
	return fmt.Sprintf("フレーズ %q から有効なファイル名を生成できません", e.Phrase)
}

// ----------------------------------------------------------------------
// 音声データのエラー (client.go で利用)
// ----------------------------------------------------------------------

// ErrNoAudioData は合成応答に音声データが含まれていなかったことを示します。
type ErrNoAudioData struct{}

func (e *ErrNoAudioData) Error() string {
	return "合成応答に音声データが含まれていません"
}

// ErrInvalidAudio は応答の音声データが要求したエンコーディングとして解釈できないことを示します。
type ErrInvalidAudio struct {
	Encoding string
	Size     int
}

func (e *ErrInvalidAudio) Error() string {
	return fmt.Sprintf("音声データが %s 形式ではありません (%dバイト)", e.Encoding, e.Size)
}
