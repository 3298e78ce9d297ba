package masterdata

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"resume-structurer-go/internal/logger"
)

// DefaultID 类别未知、取值为空或无法匹配时返回的默认ID
const DefaultID = "1"

// FlexID 主数据ID。目录文件中的ID既可能是数字也可能是字符串，
// 统一归一化为字符串。
type FlexID string

// UnmarshalJSON 兼容数字和字符串两种ID形态
func (f *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("主数据ID形态无效: %s", string(data))
	}
	*f = FlexID(n.String())
	return nil
}

// Entry 主数据目录中的一个枚举值
type Entry struct {
	ID   FlexID `json:"id"`
	Name string `json:"name"`
}

// catalogFile 目录文件的顶层结构
type catalogFile struct {
	MasterDataMappings map[string]categoryValues `json:"master_data_mappings"`
}

type categoryValues struct {
	Values []Entry `json:"values"`
}

// Index 只读主数据索引：类别名 → 有序的{id,name}枚举列表。
// 进程启动时加载一次，之后并发只读，无需加锁。
type Index struct {
	categories map[string][]Entry
}

// Load 从JSON目录文件加载主数据索引
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取主数据目录文件失败: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("解析主数据目录文件失败: %w", err)
	}
	if file.MasterDataMappings == nil {
		return nil, fmt.Errorf("主数据目录文件缺少master_data_mappings键: %s", path)
	}

	categories := make(map[string][]Entry, len(file.MasterDataMappings))
	total := 0
	for category, cv := range file.MasterDataMappings {
		categories[category] = cv.Values
		total += len(cv.Values)
	}

	logger.Info().
		Str("path", path).
		Int("categories", len(categories)).
		Int("entries", total).
		Msg("主数据目录加载完成")

	return &Index{categories: categories}, nil
}

// NewIndex 直接从内存目录构建索引，主要用于测试
func NewIndex(categories map[string][]Entry) *Index {
	if categories == nil {
		categories = map[string][]Entry{}
	}
	return &Index{categories: categories}
}

// Resolve 解析类别取值到主数据ID。
// 匹配规则：大小写不敏感的子串包含——查询值必须作为子串出现在某个
// 目录条目的名称中（方向固定，不做反向包含），按目录顺序取第一个命中。
// 类别未知、取值为空或无命中时返回默认ID "1"。
func (idx *Index) Resolve(category, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultID
	}

	entries, ok := idx.categories[category]
	if !ok {
		return DefaultID
	}

	query := strings.ToLower(value)
	for _, entry := range entries {
		name := strings.ToLower(strings.TrimSpace(entry.Name))
		if name != "" && strings.Contains(name, query) {
			if id := string(entry.ID); id != "" {
				return id
			}
			return DefaultID
		}
	}

	return DefaultID
}

// Categories 返回目前已加载的类别名数量
func (idx *Index) Categories() int {
	return len(idx.categories)
}
