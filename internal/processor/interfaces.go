package processor

import (
	"context"

	"resume-structurer-go/internal/types"
)

// TextExtractor 从原始文档字节流提取纯文本
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, filename string) (string, error)
}

// ResumeStructurer 调用结构化模型把纯文本转换为中间表示
type ResumeStructurer interface {
	Structure(ctx context.Context, text string) (*types.ExtractedResume, error)
}

// RecordMapper 把中间表示映射为固定形态的申请记录
type RecordMapper interface {
	Map(extracted *types.ExtractedResume) (types.ApplicationRecord, error)
}
