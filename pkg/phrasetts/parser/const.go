package parser

const (
	// 読み取りバッファの初期サイズ。行の長さに上限は設けない。
	readerBufferSize = 64 * 1024
	// UTF-8 の BOM (Windows のエディタが先頭に付けることがある)
	byteOrderMark = '\uFEFF'
)
