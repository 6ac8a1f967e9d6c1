package voice

import "fmt"

// ErrVoiceNotFound は設定された音声がサービスの音声一覧に存在しないことを示します。
type ErrVoiceNotFound struct {
	Name         string
	LanguageCode string
	Available    int // 同じ言語で利用可能な音声の数
}

func (e *ErrVoiceNotFound) Error() string {
	return fmt.Sprintf("音声 '%s' が言語 %s の音声一覧に見つかりません (利用可能: %d 件)", e.Name, e.LanguageCode, e.Available)
}

// ErrInvalidSelection は音声設定の必須項目が空であることを示します。
type ErrInvalidSelection struct {
	Field string
}

func (e *ErrInvalidSelection) Error() string {
	return fmt.Sprintf("音声設定の必須フィールド '%s' が空です", e.Field)
}
