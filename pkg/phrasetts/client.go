package phrasetts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/shouni/go-phrase-tts/pkg/phrasetts/api"
	"github.com/shouni/go-phrase-tts/pkg/phrasetts/audio"
	"github.com/shouni/go-phrase-tts/pkg/phrasetts/voice"
)

// ----------------------------------------------------------------------
// クライアント構造体とコンストラクタ
// ----------------------------------------------------------------------

// Client は Cloud Text-to-Speech REST API へのリクエストを処理するクライアントです。
// 通信とステータスチェックは httpkit.Client に任せます。失敗したフレーズはスキップするため、リトライは行いません。
type Client struct {
	client      *httpkit.Client
	apiURL      string
	tokenSource oauth2.TokenSource
	limiter     *rate.Limiter // nil の場合は間隔を空けない
}

// ClientOption は Client の任意設定を適用する関数です。
type ClientOption func(*Client)

// WithMinInterval はリクエスト間に最低 d の間隔を空けます。d が 0 以下なら何もしません。
func WithMinInterval(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// NewClient は新しいClientインスタンスを初期化します。
// ts が nil の場合は Authorization ヘッダーを付与しません。
// 一時的なエラー (5xx など) も再送せず、1回の失敗をそのまま呼び出し元に返します。
func NewClient(apiURL string, timeout time.Duration, ts oauth2.TokenSource, opts ...ClientOption) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	c := &Client{
		client:      httpkit.New(timeout, httpkit.WithMaxRetries(0)),
		apiURL:      apiURL,
		tokenSource: ts,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ----------------------------------------------------------------------
// ヘルパー
// ----------------------------------------------------------------------

// buildURL はベースURLとエンドポイントを結合し、エラー処理を行います。
func (c *Client) buildURL(endpoint string) (*url.URL, error) {
	u, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, &api.ErrAPINetwork{Endpoint: endpoint, WrappedErr: fmt.Errorf("API URLのパース失敗: %w", err)}
	}

	return u.JoinPath(endpoint), nil
}

// authorize はトークンソースから取得したアクセストークンをリクエストに設定します。
func (c *Client) authorize(req *http.Request, endpoint string) error {
	if c.tokenSource == nil {
		return nil
	}

	token, err := c.tokenSource.Token()
	if err != nil {
		return &api.ErrAPINetwork{Endpoint: endpoint, WrappedErr: fmt.Errorf("アクセストークンの取得失敗: %w", err)}
	}
	token.SetAuthHeader(req)
	return nil
}

// wait は最小間隔が設定されている場合、次のリクエストが許可されるまで待機します。
func (c *Client) wait(ctx context.Context, endpoint string) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return &api.ErrAPINetwork{Endpoint: endpoint, WrappedErr: err}
	}
	return nil
}

// ----------------------------------------------------------------------
// API呼び出しロジック
// ----------------------------------------------------------------------

// Synthesize は /v1/text:synthesize APIを呼び出し、復号済みの音声データを返します。
func (c *Client) Synthesize(ctx context.Context, sr SynthesisRequest) ([]byte, error) {
	const endpoint = "/v1/text:synthesize"

	// 1. URLとリクエスト本体の構築
	u, err := c.buildURL(endpoint)
	if err != nil {
		return nil, err
	}

	encoding := sr.AudioEncoding
	if encoding == "" {
		encoding = voice.EncodingMP3
	}

	body, err := json.Marshal(api.SynthesizeRequest{
		Input: api.SynthesisInput{SSML: sr.SSML},
		Voice: api.VoiceSelectionParams{
			LanguageCode: sr.Voice.LanguageCode,
			Name:         sr.Voice.Name,
			SsmlGender:   sr.Voice.Gender,
		},
		AudioConfig: api.AudioConfig{AudioEncoding: encoding},
	})
	if err != nil {
		return nil, &api.ErrInvalidJSON{Details: fmt.Sprintf("%s リクエストのエンコード", endpoint), WrappedErr: err}
	}

	if err := c.wait(ctx, endpoint); err != nil {
		return nil, err
	}

	// 2. リクエストの構築とヘッダー設定
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, &api.ErrAPINetwork{Endpoint: endpoint, WrappedErr: fmt.Errorf("リクエスト構築失敗: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json")
	if err := c.authorize(req, endpoint); err != nil {
		return nil, err
	}

	// 3. リクエスト実行
	// c.client.DoRequest() がステータスチェックとボディ読み取りを処理
	respBytes, err := c.client.DoRequest(req)
	if err != nil {
		return nil, &api.ErrAPINetwork{Endpoint: endpoint, WrappedErr: err}
	}

	var resp api.SynthesizeResponse
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		return nil, &api.ErrInvalidJSON{Details: fmt.Sprintf("%s 応答JSONのデコード", endpoint), WrappedErr: err}
	}

	// 4. データ検証
	if len(resp.AudioContent) == 0 {
		return nil, &ErrNoAudioData{}
	}
	if encoding == voice.EncodingMP3 && !audio.IsMP3(resp.AudioContent) {
		return nil, &ErrInvalidAudio{Encoding: encoding, Size: len(resp.AudioContent)}
	}

	return resp.AudioContent, nil
}

// ListVoices は /v1/voices APIを呼び出し、languageCode で利用可能な音声一覧（JSONバイトスライス）を返します。
func (c *Client) ListVoices(ctx context.Context, languageCode string) ([]byte, error) {
	const endpoint = "/v1/voices"

	u, err := c.buildURL(endpoint)
	if err != nil {
		return nil, err
	}
	if languageCode != "" {
		q := u.Query()
		q.Set("languageCode", languageCode)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &api.ErrAPINetwork{Endpoint: endpoint, WrappedErr: fmt.Errorf("リクエスト構築失敗: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if err := c.authorize(req, endpoint); err != nil {
		return nil, err
	}

	bodyBytes, err := c.client.DoRequest(req)
	if err != nil {
		return nil, &api.ErrAPINetwork{Endpoint: endpoint, WrappedErr: err}
	}

	return bodyBytes, nil
}
