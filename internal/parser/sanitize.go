package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SanitizeTree 递归净化结构化模型返回的JSON树：
//   - 映射和序列按结构递归处理
//   - 数字和布尔叶子转为其字符串形式
//   - null叶子转为空字符串
//   - 字符串叶子原样保留
//
// 这是刻意的有损归一化：下游映射逻辑统一依赖"空字符串即缺失"
// 的字符串比较语义，而不做类型检查。整棵树净化后不再存在
// 数字或布尔叶子。
func SanitizeTree(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = SanitizeTree(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = SanitizeTree(item)
		}
		return out
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	case float64:
		// 未经UseNumber解码时数字以float64出现，整数值不带小数部分
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}

// decodeJSONTree 解码JSON文本为通用树，保留数字的原始文本形式
func decodeJSONTree(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var tree any
	if err := decoder.Decode(&tree); err != nil {
		return nil, err
	}
	return tree, nil
}
