package parser

import "fmt"

// ErrFileAccess は入力ファイルを開けない、または読み取れないことを示します。
// フレーズが1件も得られないため、実行全体にとって致命的なエラーです。
type ErrFileAccess struct {
	Path       string
	WrappedErr error
}

func (e *ErrFileAccess) Error() string {
	return fmt.Sprintf("入力ファイルにアクセスできません (%s): %v", e.Path, e.WrappedErr)
}

func (e *ErrFileAccess) Unwrap() error {
	return e.WrappedErr
}
