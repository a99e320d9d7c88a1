// Package clova wraps the HyperCLOVA X chat-completions API for
// summarization, content classification and free-text Q&A.
package clova

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wonny/fintel/backend/pkg/config"
	"github.com/wonny/fintel/backend/pkg/httputil"
	"github.com/wonny/fintel/backend/pkg/logger"
	"github.com/wonny/fintel/backend/pkg/redis"
)

const chatCompletionsPath = "/v3/chat/completions"

// Client handles communication with CLOVA Studio
// ⭐ SSOT: HyperCLOVA 호출은 이 클라이언트에서만
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	cfg        config.ClovaConfig
	cache      *redis.Cache
}

// NewClient creates a new CLOVA Studio client.
// 요약/분류 결과는 입력 텍스트 해시로 메모이즈
func NewClient(cfg config.ClovaConfig, cache *redis.Cache, log *logger.Logger) *Client {
	return &Client{
		httpClient: httputil.NewWithTimeout(log, 10*time.Second).DisableRetry(),
		logger:     log,
		cfg:        cfg,
		cache:      cache,
	}
}

// message is one chat turn
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the chat-completions request body
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"maxTokens,omitempty"`
}

// chatResponse is the chat-completions response envelope
type chatResponse struct {
	Result struct {
		Choices []struct {
			Message message `json:"message"`
		} `json:"choices"`
	} `json:"result"`
}

// complete performs one chat-completions round trip and returns the first
// choice content
func (c *Client) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	body := chatRequest{
		Model: c.cfg.Model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.7,
		MaxTokens:   maxTokens,
	}

	fullURL := c.cfg.BaseURL + chatCompletionsPath
	resp, err := c.httpClient.PostJSON(ctx, fullURL, body, map[string]string{
		"Authorization":                "Bearer " + c.cfg.APIKey,
		"X-NCP-CLOVASTUDIO-REQUEST-ID": uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("clova request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("clova returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("clova decode failed: %w", err)
	}

	if len(parsed.Result.Choices) == 0 {
		return "", fmt.Errorf("clova returned no choices")
	}

	return parsed.Result.Choices[0].Message.Content, nil
}

// Summarize condenses text to at most maxLength characters.
// 실패 시 원문을 잘라서 반환 — 표시용이므로 어떤 문자열이든 유효한 폴백
func (c *Client) Summarize(ctx context.Context, text string, maxLength int) string {
	cacheKey := redis.TextKey("summary", text)

	var cached string
	if found, _ := c.cache.Get(ctx, cacheKey, &cached); found {
		return cached
	}

	system := fmt.Sprintf("아래 금융 뉴스를 %d자 이내로 요약해줘. 요약문만 출력해.", maxLength)
	summary, err := c.complete(ctx, system, text, 500)
	if err != nil {
		c.logger.WithError(err).Warn("Summarize failed, falling back to truncation")
		return Truncate(text, maxLength)
	}

	if err := c.cache.Set(ctx, cacheKey, summary, redis.TTLSummary); err != nil {
		c.logger.WithError(err).Debug("Summary cache store failed")
	}
	return summary
}

// Classification is the content classifier output.
// 핵심 로직은 Themes만 소비한다
type Classification struct {
	Risk   string   `json:"risk"`
	Themes []string `json:"themes"`
	Period string   `json:"period"`
}

const classifySystem = `금융 뉴스의 테마, 위험도, 투자기간을 분류해줘.
JSON만 출력: {"risk":"안정|중립|공격","themes":["..."],"period":"단기|중기|장기"}`

// Classify extracts thematic tags from text.
// 실패하거나 태그가 없으면 빈 목록 — 오류가 아니다
func (c *Client) Classify(ctx context.Context, text string) Classification {
	cacheKey := redis.TextKey("themes", text)

	var cached Classification
	if found, _ := c.cache.Get(ctx, cacheKey, &cached); found {
		return cached
	}

	content, err := c.complete(ctx, classifySystem, text, 300)
	if err != nil {
		c.logger.WithError(err).Warn("Classify failed, returning empty themes")
		return Classification{}
	}

	var parsed Classification
	if err := json.Unmarshal([]byte(cleanJSON(content)), &parsed); err != nil {
		c.logger.WithError(err).Warn("Classify response not parseable")
		return Classification{}
	}

	if err := c.cache.Set(ctx, cacheKey, parsed, redis.TTLThemes); err != nil {
		c.logger.WithError(err).Debug("Classification cache store failed")
	}
	return parsed
}

const advisorSystem = "당신은 금융 투자 어드바이저 AI입니다. 사용자 질문에 맞춰 답해주세요."

// Complete answers a free-text prompt.
// 실패 시 사용자에게 보여줄 오류 문자열을 반환하고 에러는 전파하지 않는다
func (c *Client) Complete(ctx context.Context, prompt string) string {
	answer, err := c.complete(ctx, advisorSystem, prompt, 1200)
	if err != nil {
		c.logger.WithError(err).Error("Chat completion failed")
		return "죄송합니다. 지금은 답변을 생성할 수 없습니다. 잠시 후 다시 시도해주세요."
	}
	return answer
}

// Truncate cuts text to at most maxLength runes, appending an ellipsis.
// 한글이 잘리지 않도록 rune 단위로 자른다
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}

// cleanJSON strips markdown code fences the model sometimes wraps around
// JSON output
func cleanJSON(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
