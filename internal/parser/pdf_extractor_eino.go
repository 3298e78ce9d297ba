package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
	"github.com/rs/zerolog"

	"resume-structurer-go/internal/logger"
)

// EinoPDFTextExtractor 使用 Eino PDF Parser 提取PDF文本
type EinoPDFTextExtractor struct {
	parser  *pdf.PDFParser
	logger  zerolog.Logger
	timeout time.Duration
}

// EinoPDFOption PDF提取器的配置选项
type EinoPDFOption func(*EinoPDFTextExtractor)

// WithEinoLogger 配置自定义日志记录器
func WithEinoLogger(l zerolog.Logger) EinoPDFOption {
	return func(e *EinoPDFTextExtractor) {
		e.logger = l
	}
}

// WithEinoTimeout 配置单次提取的超时时间
func WithEinoTimeout(d time.Duration) EinoPDFOption {
	return func(e *EinoPDFTextExtractor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// NewEinoPDFTextExtractor 初始化 Eino PDF 文本提取器
// 默认不按页面分割，以获取整个文档的连续文本
func NewEinoPDFTextExtractor(ctx context.Context, options ...EinoPDFOption) (*EinoPDFTextExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false, // 整个PDF的文本作为单个字符串返回
	})
	if err != nil {
		return nil, fmt.Errorf("创建Eino PDF解析器失败: %w", err)
	}

	extractor := &EinoPDFTextExtractor{
		parser:  p,
		logger:  logger.Logger.With().Str("component", "pdf_extractor").Logger(),
		timeout: 30 * time.Second,
	}

	for _, option := range options {
		option(extractor)
	}

	return extractor, nil
}

// ExtractTextFromReader 从 io.Reader 中提取完整的纯文本内容
func (e *EinoPDFTextExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	docs, err := e.parser.Parse(ctx, reader,
		einoParser.WithURI(uri),
	)

	duration := time.Since(startTime)
	if err != nil {
		e.logger.Error().
			Err(err).
			Str("uri", uri).
			Dur("duration", duration).
			Msg("PDF文本提取失败")
		return "", fmt.Errorf("eino PDF解析失败 (URI %s): %w", uri, err)
	}

	if len(docs) == 0 {
		return "", fmt.Errorf("eino PDF解析未返回任何文档 (URI %s)", uri)
	}

	// 合并所有文档的内容（以防返回了多个）
	var buf bytes.Buffer
	for i, doc := range docs {
		buf.WriteString(doc.Content)
		if i < len(docs)-1 {
			buf.WriteString("\n\n")
		}
	}

	e.logger.Debug().
		Str("uri", uri).
		Int("documents", len(docs)).
		Int("text_length", buf.Len()).
		Dur("duration", duration).
		Msg("PDF文本提取完成")

	return buf.String(), nil
}

// ExtractTextFromBytes 从字节数组提取文本内容
func (e *EinoPDFTextExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, error) {
	return e.ExtractTextFromReader(ctx, bytes.NewReader(data), uri)
}
