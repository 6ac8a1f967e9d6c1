package audio

// IsMP3 は data が ID3v2 タグ、または MPEG オーディオフレームの同期ワードで始まるかを判定します。
func IsMP3(data []byte) bool {
	if len(data) < MinPayloadSize {
		return false
	}

	if string(data[:ID3TagIDSize]) == ID3TagID {
		return true
	}

	return data[0] == FrameSyncFirstByte && data[1]&FrameSyncSecondMask == FrameSyncSecondMask
}
