package phrasetts

import "time"

// ----------------------------------------------------------------------
// 接続先・認証
// ----------------------------------------------------------------------

const (
	defaultAPIURL = "https://texttospeech.googleapis.com"
	// サービスアカウント認証で要求するスコープ
	CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)

// ----------------------------------------------------------------------
// エンジン処理定数
// ----------------------------------------------------------------------

const (
	DefaultOutputDir      = "audioFiles"
	DefaultManifestPath   = "audioList.txt"
	DefaultPause          = 500 * time.Millisecond
	DefaultRequestTimeout = 60 * time.Second

	// マニフェストの参照タグ書式 (Anki のサウンドタグ)
	manifestEntryFormat = "[sound:%s]"
	manifestSeparator   = "\n"

	dirPerm  = 0o755
	filePerm = 0o644
)
