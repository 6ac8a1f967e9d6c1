package audio

// ----------------------------------------------------------------------
// MP3 ヘッダー定数
// ----------------------------------------------------------------------

const (
	// ID3v2 タグの識別子 ("ID3")
	ID3TagID     = "ID3"
	ID3TagIDSize = 3

	// MPEG オーディオフレームヘッダーのサイズ (4バイト)
	FrameHeaderSize = 4
	// フレーム同期ワードは先頭 11 ビットがすべて 1
	FrameSyncFirstByte  = 0xFF
	FrameSyncSecondMask = 0xE0
)

// MinPayloadSize は有効な MP3 データとみなす最小バイト数です。
const MinPayloadSize = FrameHeaderSize

// FileExtension は出力ファイルの拡張子です。
const FileExtension = ".mp3"
