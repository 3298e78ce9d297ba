package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIChatModelRequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIChatModel("", "gpt-3.5-turbo", "")
	assert.Error(t, err, "空API密钥应返回错误")
}

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req OpenAIChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-3.5-turbo", req.Model)
		assert.Len(t, req.Messages, 2)

		content := `{"personal_info": {"name": "Test"}}`
		resp := OpenAICompletionResponse{
			Id:     "chatcmpl-1",
			Object: "chat.completion",
			Model:  req.Model,
			Choices: []OpenAIChatChoice{
				{
					Index:        0,
					Message:      OpenAIMessage{Role: "assistant", Content: &content},
					FinishReason: "stop",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	model, err := NewOpenAIChatModel("test-key", "gpt-3.5-turbo", server.URL)
	require.NoError(t, err)

	message, err := model.Generate(context.Background(), []*schema.Message{
		schema.SystemMessage("system prompt"),
		schema.UserMessage("resume text"),
	})
	require.NoError(t, err, "Generate应成功")
	assert.Equal(t, schema.RoleType("assistant"), message.Role)
	assert.Contains(t, message.Content, "personal_info")
}

func TestGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limit exceeded"}}`))
	}))
	defer server.Close()

	model, err := NewOpenAIChatModel("test-key", "", server.URL)
	require.NoError(t, err)

	_, err = model.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.Error(t, err, "非200状态应返回错误")
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestGenerateEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "choices": []}`))
	}))
	defer server.Close()

	model, err := NewOpenAIChatModel("test-key", "", server.URL)
	require.NoError(t, err)

	_, err = model.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	assert.Error(t, err, "空choices应返回错误")
}

func TestMockChatClientSequential(t *testing.T) {
	client := NewMockChatClientSequential([]MockResponse{
		{Content: "first"},
		{Content: "second"},
	})

	msg, err := client.Generate(context.Background(), []*schema.Message{schema.UserMessage("a")})
	require.NoError(t, err)
	assert.Equal(t, "first", msg.Content)

	msg, err = client.Generate(context.Background(), []*schema.Message{schema.UserMessage("b")})
	require.NoError(t, err)
	assert.Equal(t, "second", msg.Content)

	_, err = client.Generate(context.Background(), []*schema.Message{schema.UserMessage("c")})
	assert.Error(t, err, "响应耗尽后应返回错误")
}
