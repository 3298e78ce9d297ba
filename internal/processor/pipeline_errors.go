package processor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrUnsupportedFormat          = errors.New("不支持的文件格式")
	ErrExtractionFailed           = errors.New("提取简历文本失败")
	ErrEmptyDocument              = errors.New("简历文档内容为空")
	ErrOracleCallFailed           = errors.New("调用结构化模型失败")
	ErrStructuringResponseInvalid = errors.New("结构化模型响应无效")
	ErrMappingFailed              = errors.New("映射申请记录失败")
)

// PipelineError 包含详细错误信息的自定义错误
type PipelineError struct {
	SubmissionUUID string
	Op             string
	BaseErr        error
	Detail         string
}

func (e *PipelineError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, UUID:%s): %s", e.BaseErr, e.Op, e.SubmissionUUID, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, UUID:%s)", e.BaseErr, e.Op, e.SubmissionUUID)
}

func (e *PipelineError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *PipelineError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewUnsupportedFormatError(uuid, detail string) error {
	return &PipelineError{
		SubmissionUUID: uuid,
		Op:             "extract",
		BaseErr:        ErrUnsupportedFormat,
		Detail:         detail,
	}
}

func NewExtractionError(uuid, detail string) error {
	return &PipelineError{
		SubmissionUUID: uuid,
		Op:             "extract",
		BaseErr:        ErrExtractionFailed,
		Detail:         detail,
	}
}

func NewEmptyDocumentError(uuid, detail string) error {
	return &PipelineError{
		SubmissionUUID: uuid,
		Op:             "extract",
		BaseErr:        ErrEmptyDocument,
		Detail:         detail,
	}
}

func NewOracleCallError(uuid, detail string) error {
	return &PipelineError{
		SubmissionUUID: uuid,
		Op:             "structure",
		BaseErr:        ErrOracleCallFailed,
		Detail:         detail,
	}
}

func NewStructuringResponseError(uuid, detail string) error {
	return &PipelineError{
		SubmissionUUID: uuid,
		Op:             "structure",
		BaseErr:        ErrStructuringResponseInvalid,
		Detail:         detail,
	}
}

func NewMappingError(uuid, detail string) error {
	return &PipelineError{
		SubmissionUUID: uuid,
		Op:             "map",
		BaseErr:        ErrMappingFailed,
		Detail:         detail,
	}
}
