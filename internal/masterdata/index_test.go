package masterdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex() *Index {
	return NewIndex(map[string][]Entry{
		"gender": {
			{ID: "1", Name: "Male"},
			{ID: "2", Name: "Female"},
		},
		"country": {
			{ID: "1", Name: "India"},
			{ID: "2", Name: "United States of America"},
		},
		"religion": {
			{ID: "1", Name: "Hindu"},
			{ID: "3", Name: "Christian"},
		},
	})
}

// TestResolveSubstringMatch 验证大小写不敏感的子串包含匹配
func TestResolveSubstringMatch(t *testing.T) {
	idx := testIndex()

	assert.Equal(t, "2", idx.Resolve("gender", "female"), "查询值应大小写不敏感")
	assert.Equal(t, "2", idx.Resolve("country", "United States"), "查询值作为条目名称的子串应命中")
	assert.Equal(t, "3", idx.Resolve("religion", "christian"))

	// 包含方向固定：条目名称是查询值的子串时不命中
	assert.Equal(t, DefaultID, idx.Resolve("gender", "Female applicant"))
}

// TestResolveDefaults 验证空值、未知类别和无命中时的默认ID
func TestResolveDefaults(t *testing.T) {
	idx := testIndex()

	assert.Equal(t, DefaultID, idx.Resolve("gender", ""), "空值应返回默认ID")
	assert.Equal(t, DefaultID, idx.Resolve("gender", "   "), "纯空白应返回默认ID")
	assert.Equal(t, DefaultID, idx.Resolve("no_such_category", "anything"), "未知类别应返回默认ID")
	assert.Equal(t, DefaultID, idx.Resolve("gender", "Unknown"), "无命中应返回默认ID")
}

// TestResolveFirstHitWins 验证按目录顺序取第一个命中
func TestResolveFirstHitWins(t *testing.T) {
	idx := NewIndex(map[string][]Entry{
		"blood_group": {
			{ID: "1", Name: "A+"},
			{ID: "7", Name: "AB+"},
		},
	})

	// "B+"只出现在"AB+"中，"A+"则命中第一个条目
	assert.Equal(t, "7", idx.Resolve("blood_group", "B+"))
	assert.Equal(t, "1", idx.Resolve("blood_group", "A+"))
}

// TestLoadCatalogFile 验证目录文件加载与数字ID归一化
func TestLoadCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "master_data.json")

	content := `{
  "master_data_mappings": {
    "gender": {"values": [{"id": 1, "name": "Male"}, {"id": "2", "name": "Female"}]}
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	idx, err := Load(path)
	require.NoError(t, err, "加载目录文件不应失败")
	assert.Equal(t, 1, idx.Categories())
	assert.Equal(t, "1", idx.Resolve("gender", "Male"), "数字形态的ID应归一化为字符串")
	assert.Equal(t, "2", idx.Resolve("gender", "Female"))
}

// TestLoadCatalogFileInvalid 验证缺失文件与非法结构的错误
func TestLoadCatalogFileInvalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err, "缺失文件应返回错误")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"wrong_key": {}}`), 0644))
	_, err = Load(path)
	assert.Error(t, err, "缺少master_data_mappings键应返回错误")
}
