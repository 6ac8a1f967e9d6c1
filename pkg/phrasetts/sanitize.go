package phrasetts

import (
	"regexp"
	"strings"
)

var (
	// 小文字ラテン文字 (デンマーク語の æ ø å を含む)、数字、空白、アンダースコア以外
	reDisallowedRunes = regexp.MustCompile(`[^a-zæøå0-9 _]`)
	// 空白・アンダースコアの連続
	reSeparatorRun = regexp.MustCompile(`[ _]+`)
)

// SanitizeFilename はフレーズをファイルシステム上で安全なトークンに変換します。
// 出力は [a-zæøå0-9_] のみで構成され、先頭と末尾にアンダースコアは付きません。
// 変換済みの文字列に再適用しても結果は変わりません。
func SanitizeFilename(text string) string {
	s := strings.ToLower(text)
	s = reDisallowedRunes.ReplaceAllString(s, "")
	s = reSeparatorRun.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
