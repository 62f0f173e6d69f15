package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"ergg/internal/config"

	"github.com/valyala/fasthttp"
)

// NewsClient reads the official site's post feed. It needs no key.
type NewsClient struct {
	baseURL string
	client  *fasthttp.Client
}

func NewNewsClient(cfg *config.Config) *NewsClient {
	return &NewsClient{
		baseURL: strings.TrimRight(cfg.NewsBaseURL, "/"),
		client:  newHTTPClient(),
	}
}

type Post struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Image     string `json:"image"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
}

// ErrUnexpectedFormat means the feed body was valid JSON but held no post list.
var ErrUnexpectedFormat = errors.New("unexpected API response format")

func (c *NewsClient) GetPosts(ctx context.Context, postType string, page int) ([]Post, error) {
	u := fmt.Sprintf("%s/%s?page=%d", c.baseURL, url.PathEscape(postType), page)
	body, err := fetch(ctx, c.client, u, nil)
	if err != nil {
		return nil, err
	}
	return parsePosts(body)
}

// parsePosts accepts {"data": [...]}, {"posts": [...]} or a bare array.
func parsePosts(body []byte) ([]Post, error) {
	var posts []Post
	if bytes.HasPrefix(bytes.TrimSpace(body), []byte("[")) {
		if err := json.Unmarshal(body, &posts); err != nil {
			return nil, fmt.Errorf("failed to decode news posts: %w", err)
		}
		return posts, nil
	}

	var wrapped struct {
		Data  json.RawMessage `json:"data"`
		Posts json.RawMessage `json:"posts"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}

	for _, raw := range []json.RawMessage{wrapped.Data, wrapped.Posts} {
		if len(raw) == 0 || raw[0] != '[' {
			continue
		}
		if err := json.Unmarshal(raw, &posts); err != nil {
			return nil, fmt.Errorf("failed to decode news posts: %w", err)
		}
		return posts, nil
	}

	return nil, ErrUnexpectedFormat
}
