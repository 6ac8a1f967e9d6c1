package phrasetts

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// BuildSSML は phrase を <speak> 要素で包み、末尾に pause の長さの <break> を付けます。
// phrase 内の XML 特殊文字はエスケープされます。pause が 1ms 未満なら <break> は付きません。
func BuildSSML(phrase string, pause time.Duration) string {
	var b strings.Builder
	b.WriteString("<speak>")
	// strings.Builder への書き込みは失敗しない
	_ = xml.EscapeText(&b, []byte(phrase))
	if pause >= time.Millisecond {
		fmt.Fprintf(&b, ` <break time="%dms"/>`, pause.Milliseconds())
	}
	b.WriteString("</speak>")
	return b.String()
}
