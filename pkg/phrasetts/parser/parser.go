package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"
)

// Parser は、入力から音声合成対象のフレーズ列を取り出すインターフェースです。
type Parser interface {
	Parse(r io.Reader) ([]string, error)
}

// ----------------------------------------------------------------------
// lineParser 構造体（Parser インターフェースの実装）
// ----------------------------------------------------------------------

// lineParser は改行区切りのテキストを1行1フレーズとして解析します。
type lineParser struct{}

// NewParser は lineParser インスタンスを生成します。
func NewParser() *lineParser {
	return &lineParser{}
}

// Parse は各行の前後の空白と BOM を取り除き、空行を捨てたフレーズを入力順に返します。
// CRLF 改行の '\r' も同様に除去されます。行の長さに上限はありません。
func (p *lineParser) Parse(r io.Reader) ([]string, error) {
	reader := bufio.NewReaderSize(r, readerBufferSize)

	var phrases []string
	skipped := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("入力の読み取りに失敗しました: %w", err)
		}

		if trimmed := trimLine(line); trimmed != "" {
			phrases = append(phrases, trimmed)
		} else if line != "" {
			skipped++
		}

		if err != nil {
			break
		}
	}

	slog.Debug("入力の解析が完了しました", "phrases", len(phrases), "blank_lines", skipped)

	return phrases, nil
}

// trimLine は前後の空白文字と BOM を取り除きます。
func trimLine(line string) string {
	return strings.TrimFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == byteOrderMark
	})
}

// ----------------------------------------------------------------------
// ファイル読み込み
// ----------------------------------------------------------------------

// ReadPhrases は path のファイルを開き、フレーズ列を返します。
// ファイルを開けない、または読み取れない場合は *ErrFileAccess を返します。
func ReadPhrases(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ErrFileAccess{Path: path, WrappedErr: err}
	}
	defer f.Close()

	phrases, err := NewParser().Parse(f)
	if err != nil {
		return nil, &ErrFileAccess{Path: path, WrappedErr: err}
	}

	return phrases, nil
}
