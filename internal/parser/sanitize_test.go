package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeTree(t *testing.T) {
	tree, err := decodeJSONTree([]byte(`{
		"a": 3,
		"b": null,
		"c": [1, "x", null],
		"d": true,
		"e": 2.5,
		"f": {"nested": false}
	}`))
	require.NoError(t, err, "测试输入应为合法JSON")

	sanitized, ok := SanitizeTree(tree).(map[string]any)
	require.True(t, ok, "净化结果应保持映射结构")

	assert.Equal(t, "3", sanitized["a"], "整数应转为字符串")
	assert.Equal(t, "", sanitized["b"], "null应转为空字符串")
	assert.Equal(t, []any{"1", "x", ""}, sanitized["c"], "序列应逐元素净化")
	assert.Equal(t, "true", sanitized["d"], "布尔应转为字符串")
	assert.Equal(t, "2.5", sanitized["e"], "小数应保留原始文本形式")

	nested, ok := sanitized["f"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "false", nested["nested"], "嵌套映射应递归净化")
}

func TestSanitizeTreeWithoutUseNumber(t *testing.T) {
	// 未经UseNumber解码的树中数字以float64出现
	tree := map[string]any{"count": float64(30), "ratio": 0.125}

	sanitized := SanitizeTree(tree).(map[string]any)
	assert.Equal(t, "30", sanitized["count"], "整数值的float64不应带小数部分")
	assert.Equal(t, "0.125", sanitized["ratio"])
}

func TestDecodeJSONTreeInvalid(t *testing.T) {
	_, err := decodeJSONTree([]byte("not json at all"))
	assert.Error(t, err, "非法JSON应返回错误")
}
