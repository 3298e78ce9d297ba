package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFromFile 验证从YAML文件加载配置
func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
openai:
  api_key: "sk-test"
  api_url: "http://localhost:1234/v1/chat/completions"
  model: "gpt-3.5-turbo"
  temperature: 0.1
  max_tokens: 4000
  request_timeout_seconds: 60

extractor:
  timeout_seconds: 20

master_data:
  path: "testdata/master_data.json"

server:
  address: ":9000"

logger:
  level: "debug"
  format: "json"

tracing:
  enabled: true
  endpoint: "localhost:4317"
  service_name: "resume-structurer-test"
  sample_ratio: 0.5
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644), "写入测试配置文件失败")

	cfg, err := LoadConfigFromFileOnly(configPath)
	require.NoError(t, err, "加载配置文件不应失败")
	require.NotNil(t, cfg)

	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey, "API Key应与配置文件一致")
	assert.Equal(t, "http://localhost:1234/v1/chat/completions", cfg.OpenAI.APIURL)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
	assert.InDelta(t, 0.1, cfg.OpenAI.Temperature, 1e-9)
	assert.Equal(t, 4000, cfg.OpenAI.MaxTokens)
	assert.Equal(t, 60, cfg.OpenAI.RequestTimeoutSeconds)
	assert.Equal(t, 20, cfg.Extractor.TimeoutSeconds)
	assert.Equal(t, "testdata/master_data.json", cfg.MasterData.Path)
	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "resume-structurer-test", cfg.Tracing.ServiceName)
}

// TestLoadConfigDefaults 验证缺省项被填充默认值
func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
openai:
  api_key: "sk-test"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadConfigFromFileOnly(configPath)
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Address, "服务器地址应有默认值")
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model, "模型名应有默认值")
	assert.InDelta(t, 0.1, cfg.OpenAI.Temperature, 1e-9)
	assert.Equal(t, 4000, cfg.OpenAI.MaxTokens)
	assert.Equal(t, 30, cfg.Extractor.TimeoutSeconds)
	assert.Equal(t, "configs/master_data_mappings.json", cfg.MasterData.Path)
	assert.Equal(t, "resume-structurer", cfg.Tracing.ServiceName)
}

// TestLoadConfigMissingFile 测试环境下文件缺失应回落到默认配置
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	require.NoError(t, err, "测试环境中缺失配置文件不应报错")
	require.NotNil(t, cfg)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
}

// TestLoadConfigFromFileOnlyRequiresPath 未提供路径应返回错误
func TestLoadConfigFromFileOnlyRequiresPath(t *testing.T) {
	_, err := LoadConfigFromFileOnly("")
	assert.Error(t, err, "空路径应返回错误")
}
