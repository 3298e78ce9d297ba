package parser

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// 解析层基础错误，由上层处理器归类到对外的错误体系
var (
	ErrUnsupportedExtension      = errors.New("不支持的文件扩展名")
	ErrModelInvocation           = errors.New("结构化模型调用失败")
	ErrInvalidStructuredResponse = errors.New("结构化模型响应解析失败")
)

// IsSupportedFilename 判断文件名扩展是否在支持范围内（.pdf/.doc/.docx）
func IsSupportedFilename(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".doc", ".docx":
		return true
	}
	return false
}

// TextExtractor 按文件扩展名分发到具体的文本提取实现
type TextExtractor struct {
	pdf  *EinoPDFTextExtractor
	docx *DocxTextExtractor
}

// NewTextExtractor 构建文本提取器，PDF分支的超时由timeout控制
func NewTextExtractor(ctx context.Context, timeout time.Duration) (*TextExtractor, error) {
	pdfExtractor, err := NewEinoPDFTextExtractor(ctx, WithEinoTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("初始化PDF提取器失败: %w", err)
	}

	return &TextExtractor{
		pdf:  pdfExtractor,
		docx: NewDocxTextExtractor(),
	}, nil
}

// Extract 从文档字节流提取纯文本。格式由文件名扩展决定：
// .pdf走Eino解析器，.doc/.docx走Word解析器，其余扩展返回
// ErrUnsupportedExtension。
func (t *TextExtractor) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return t.pdf.ExtractTextFromBytes(ctx, data, filename)
	case ".doc", ".docx":
		return t.docx.ExtractTextFromBytes(data, filename)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedExtension, filename)
	}
}
