package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"

	"resume-structurer-go/internal/logger"
)

const (
	defaultOpenAIAPIURL    = "https://api.openai.com/v1/chat/completions"
	defaultOpenAIModelName = "gpt-3.5-turbo"
)

// --- OpenAI兼容的请求/响应结构 ---

type OpenAIToolFunctionParams struct {
	Type       string         `json:"type"` // 通常为 "object"
	Properties map[string]any `json:"properties"`
	Required   []string       `json:"required,omitempty"`
}

type OpenAIFunction struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Parameters  OpenAIToolFunctionParams `json:"parameters"`
}

type OpenAITool struct {
	Type     string         `json:"type"` // 固定为 "function"
	Function OpenAIFunction `json:"function"`
}

type OpenAIChatCompletionRequest struct {
	Model       string            `json:"model"`
	Messages    []*schema.Message `json:"messages"` // eino的schema.Message与OpenAI的role/content兼容
	Temperature float64           `json:"temperature"`
	MaxTokens   int               `json:"max_tokens,omitempty"`
	Tools       []OpenAITool      `json:"tools,omitempty"`
}

type OpenAIMessage struct {
	Role      string               `json:"role"`
	Content   *string              `json:"content"` // 有tool_calls时content可能为null
	ToolCalls []OpenAIToolCallData `json:"tool_calls,omitempty"`
}

type OpenAIToolCallData struct {
	Id       string `json:"id"`
	Type     string `json:"type"` // 应为 "function"
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"` // 参数的JSON字符串
	} `json:"function"`
}

type OpenAIChatChoice struct {
	Index        int           `json:"index"`
	Message      OpenAIMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type OpenAICompletionResponse struct {
	Id      string             `json:"id"`
	Object  string             `json:"object"`
	Created int64              `json:"created"`
	Model   string             `json:"model"`
	Choices []OpenAIChatChoice `json:"choices"`
}

// OpenAIChatModel 通过OpenAI兼容的chat-completions接口实现
// model.ToolCallingChatModel，用作简历结构化的模型客户端。
type OpenAIChatModel struct {
	apiKey      string
	modelName   string
	apiURL      string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
	boundTools  []OpenAITool
	logger      zerolog.Logger
}

// OpenAIModelOption 模型客户端的配置选项
type OpenAIModelOption func(*OpenAIChatModel)

// WithTemperature 设置采样温度（结构化抽取建议低温）
func WithTemperature(t float64) OpenAIModelOption {
	return func(m *OpenAIChatModel) {
		m.temperature = t
	}
}

// WithMaxTokens 设置生成长度上限
func WithMaxTokens(n int) OpenAIModelOption {
	return func(m *OpenAIChatModel) {
		if n > 0 {
			m.maxTokens = n
		}
	}
}

// WithHTTPTimeout 设置单次请求的HTTP超时
func WithHTTPTimeout(d time.Duration) OpenAIModelOption {
	return func(m *OpenAIChatModel) {
		if d > 0 {
			m.httpClient.Timeout = d
		}
	}
}

// NewOpenAIChatModel 创建一个新的 OpenAIChatModel 实例
func NewOpenAIChatModel(apiKey, modelName, apiURL string, options ...OpenAIModelOption) (*OpenAIChatModel, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("API 密钥不能为空")
	}

	mn := modelName
	if strings.TrimSpace(mn) == "" {
		mn = defaultOpenAIModelName
	}

	url := apiURL
	if strings.TrimSpace(url) == "" {
		url = defaultOpenAIAPIURL
	}

	m := &OpenAIChatModel{
		apiKey:      apiKey,
		modelName:   mn,
		apiURL:      url,
		temperature: 0.1,
		maxTokens:   4000,
		httpClient:  &http.Client{Timeout: 90 * time.Second},
		boundTools:  make([]OpenAITool, 0),
		logger:      logger.Logger.With().Str("component", "openai_model").Logger(),
	}

	for _, option := range options {
		option(m)
	}

	m.logger.Info().
		Str("api_url", m.apiURL).
		Str("model", m.modelName).
		Float64("temperature", m.temperature).
		Int("max_tokens", m.maxTokens).
		Msg("OpenAI兼容模型客户端初始化完成")

	return m, nil
}

// Generate 实现 model.BaseChatModel 接口
func (m *OpenAIChatModel) Generate(ctx context.Context, messages []*schema.Message, options ...model.Option) (*schema.Message, error) {
	// 工具配置通过WithTools/BindTools处理，其余通用选项此处不消费
	for _, opt := range options {
		_ = opt
	}

	reqPayload := OpenAIChatCompletionRequest{
		Model:       m.modelName,
		Messages:    messages,
		Temperature: m.temperature,
		MaxTokens:   m.maxTokens,
	}
	if len(m.boundTools) > 0 {
		reqPayload.Tools = m.boundTools
	}

	jsonData, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, fmt.Errorf("序列化请求体失败: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("创建 HTTP 请求失败: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+m.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	m.logger.Debug().
		Str("model", m.modelName).
		Int("messages", len(messages)).
		Msg("发送chat-completions请求")

	httpResp, err := m.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("发送 HTTP 请求失败: %w", err)
	}
	defer httpResp.Body.Close()

	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应体失败: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API 请求失败，状态 %s: %s", httpResp.Status, string(bodyBytes))
	}

	var openAIResp OpenAICompletionResponse
	if err := json.Unmarshal(bodyBytes, &openAIResp); err != nil {
		return nil, fmt.Errorf("反序列化 API 响应失败: %w", err)
	}

	if len(openAIResp.Choices) == 0 {
		return nil, fmt.Errorf("从 API 收到空选项: %s", string(bodyBytes))
	}

	apiMessage := openAIResp.Choices[0].Message
	responseContent := ""
	if apiMessage.Content != nil {
		responseContent = *apiMessage.Content
	}

	resultMessage := &schema.Message{
		Role:    schema.RoleType(apiMessage.Role),
		Content: responseContent,
	}

	if len(apiMessage.ToolCalls) > 0 {
		resultMessage.ToolCalls = make([]schema.ToolCall, len(apiMessage.ToolCalls))
		for i, tc := range apiMessage.ToolCalls {
			resultMessage.ToolCalls[i] = schema.ToolCall{
				ID: tc.Id,
				Function: schema.FunctionCall{
					Name:      tc.Function.Name,
					Arguments: tc.Function.Arguments,
				},
			}
		}
	}

	if resultMessage.Role == "" {
		resultMessage.Role = schema.RoleType("assistant")
	}

	return resultMessage, nil
}

// Stream 实现 model.BaseChatModel 接口。结构化抽取是单次短输出
// 场景，不需要流式返回。
func (m *OpenAIChatModel) Stream(ctx context.Context, messages []*schema.Message, options ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, fmt.Errorf("OpenAIChatModel 的 Stream 方法未实现")
}

// BindTools 实现 model.ChatModel 接口。简历结构化不绑定任何工具，
// 这里仅按ToolInfo的名称和描述透传空参数schema。
func (m *OpenAIChatModel) BindTools(tools []*schema.ToolInfo) error {
	m.boundTools = make([]OpenAITool, 0, len(tools))
	for _, toolInfo := range tools {
		if toolInfo == nil {
			continue
		}
		m.boundTools = append(m.boundTools, OpenAITool{
			Type: "function",
			Function: OpenAIFunction{
				Name:        toolInfo.Name,
				Description: toolInfo.Desc,
				Parameters: OpenAIToolFunctionParams{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
		})
	}
	return nil
}

// WithTools 实现 model.ToolCallingChatModel 接口
func (m *OpenAIChatModel) WithTools(tools []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	if err := m.BindTools(tools); err != nil {
		return nil, err
	}
	return m, nil
}

var _ model.ChatModel = (*OpenAIChatModel)(nil)
var _ model.ToolCallingChatModel = (*OpenAIChatModel)(nil)
