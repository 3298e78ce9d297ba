package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{name: "ISO格式", input: "2020-03-15", expected: []int{2020, 3, 15}},
		{name: "日-月-年格式", input: "15-03-2020", expected: []int{2020, 3, 15}},
		{name: "月/日/年格式", input: "03/15/2020", expected: []int{2020, 3, 15}},
		{name: "日/月/年格式", input: "15/03/2020", expected: []int{2020, 3, 15}},
		{name: "自由文本中的年份", input: "Summer 2019", expected: []int{2019, 1, 1}},
		{name: "present视为进行中", input: "Present", expected: nil},
		{name: "current视为进行中", input: "current", expected: nil},
		{name: "空串", input: "", expected: nil},
		{name: "无法解析", input: "someday", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDateArray(tt.input), "日期数组解析结果应匹配")
		})
	}
}

func TestParseDateArrayLayoutPrecedence(t *testing.T) {
	// 两种斜杠格式都能解析时，月/日/年优先
	assert.Equal(t, []int{2020, 3, 4}, ParseDateArray("03/04/2020"), "歧义日期应按固定顺序解析")
}

func TestFormatDateOfBirth(t *testing.T) {
	formatted := FormatDateOfBirth("1990-05-20")
	require.NotNil(t, formatted, "合法日期应返回格式化结果")
	assert.Equal(t, "1990-05-20T18:30:00.000Z", *formatted, "出生日期应为固定ISO形式")

	formatted = FormatDateOfBirth("20-05-1990")
	require.NotNil(t, formatted)
	assert.Equal(t, "1990-05-20T18:30:00.000Z", *formatted)

	assert.Nil(t, FormatDateOfBirth("May 1990"), "无法解析时应返回nil")
	assert.Nil(t, FormatDateOfBirth(""), "空串应返回nil")
}

func TestExtractCompletionYear(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "2024", expected: "2024"},
		{input: "2016-2018", expected: "2018"},
		{input: "Graduated in 2019", expected: "2019"},
		{input: "Thesis submitted", expected: ""},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExtractCompletionYear(tt.input), "毕业年份提取结果应匹配: %s", tt.input)
	}
}

func TestCurrentStatus(t *testing.T) {
	status := CurrentStatus("Thesis submitted")
	require.NotNil(t, status, "进行中短语应产生状态")
	assert.Equal(t, "Thesis Submitted", *status, "状态应为标题化形式")

	status = CurrentStatus("PURSUING")
	require.NotNil(t, status)
	assert.Equal(t, "Pursuing", *status)

	assert.Nil(t, CurrentStatus("2020"), "普通年份不应产生状态")
	assert.Nil(t, CurrentStatus(""), "空串不应产生状态")
}

func TestDurationBetween(t *testing.T) {
	now := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	years, months := durationBetween("2020-01-01", "Present", now, false)
	assert.Equal(t, 3, years, "到present的工龄年数")
	assert.Equal(t, 0, months, "到present的工龄月数")

	years, months = durationBetween("2016-07-01", "2020-06-30", now, false)
	assert.Equal(t, 4, years, "固定区间的工龄年数")
	assert.Equal(t, 0, months, "固定区间的工龄月数")

	// 空的to_date只有在职经历约定下才取now
	years, months = durationBetween("2020-01-01", "", now, false)
	assert.Zero(t, years)
	assert.Zero(t, months)

	years, _ = durationBetween("2020-01-01", "", now, true)
	assert.Equal(t, 3, years, "在职经历约定下空to_date应取now")

	years, months = durationBetween("not a date", "2020-01-01", now, false)
	assert.Zero(t, years, "from无法解析时应返回零")
	assert.Zero(t, months)
}
