package phrasetts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FormatManifestEntry は生成したファイル名を参照タグ `[sound:<fileName>]` に整形します。
func FormatManifestEntry(fileName string) string {
	return fmt.Sprintf(manifestEntryFormat, fileName)
}

// WriteManifest は entries を改行で連結し、UTF-8 テキストとして path に書き込みます。
// 既存のマニフェストは上書きされます。末尾に改行は付きません。
func WriteManifest(path string, entries []string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return &ErrFileWrite{Path: dir, WrappedErr: err}
		}
	}

	content := strings.Join(entries, manifestSeparator)
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return &ErrFileWrite{Path: path, WrappedErr: err}
	}
	return nil
}
