package parser

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog"

	"resume-structurer-go/internal/logger"
)

var (
	xmlTagPattern   = regexp.MustCompile(`<[^>]+>`)
	spaceRunPattern = regexp.MustCompile(`[ \t\r\f\v]+`)
	lineRunPattern  = regexp.MustCompile(`\n+`)
)

// DocxTextExtractor 提取 .doc/.docx 文档的纯文本
type DocxTextExtractor struct {
	logger zerolog.Logger
}

// NewDocxTextExtractor 初始化 Word 文档文本提取器
func NewDocxTextExtractor() *DocxTextExtractor {
	return &DocxTextExtractor{
		logger: logger.Logger.With().Str("component", "docx_extractor").Logger(),
	}
}

// ExtractTextFromBytes 从字节数组提取Word文档文本。
// 文档主体是WordprocessingML，段落和制表位先转换为换行/制表符，
// 再剥离全部XML标签并反转义实体。
func (e *DocxTextExtractor) ExtractTextFromBytes(data []byte, uri string) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.logger.Error().Err(err).Str("uri", uri).Msg("Word文档解析失败")
		return "", fmt.Errorf("解析Word文档失败 (URI %s): %w", uri, err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	text := stripWordMarkup(content)

	e.logger.Debug().
		Str("uri", uri).
		Int("text_length", len(text)).
		Msg("Word文档文本提取完成")

	return text, nil
}

// stripWordMarkup 将WordprocessingML压平为纯文本
func stripWordMarkup(content string) string {
	// 段落/换行/制表位边界先落为对应的空白符
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:br/>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")

	// 剥离其余XML标签并反转义实体
	content = xmlTagPattern.ReplaceAllString(content, " ")
	content = html.UnescapeString(content)

	// 归一化空白：行内空白折叠为单个空格，连续空行折叠为一个换行
	content = strings.ReplaceAll(content, "\u00A0", " ")
	content = spaceRunPattern.ReplaceAllString(content, " ")
	content = lineRunPattern.ReplaceAllString(content, "\n")

	return strings.TrimSpace(content)
}
