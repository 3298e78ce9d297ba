package handler

import (
	"context"
	"fmt"
	"io"

	"github.com/gofrs/uuid/v5"

	"resume-structurer-go/internal/logger"
	"resume-structurer-go/internal/parser"
	"resume-structurer-go/internal/processor"
	"resume-structurer-go/internal/types"
)

// ResumeHandler 简历解析接口的处理器，负责协调单次解析请求的流程
type ResumeHandler struct {
	service processor.ResumeService
}

// NewResumeHandler 创建一个新的简历处理器
func NewResumeHandler(service processor.ResumeService) *ResumeHandler {
	return &ResumeHandler{service: service}
}

// ResumeParseResponse 简历解析响应
type ResumeParseResponse struct {
	SubmissionUUID string                  `json:"submission_uuid"`
	Record         types.ApplicationRecord `json:"record"`
}

// HandleResumeParse 处理一次简历解析请求：
// 为本次提交生成UUIDv7，读取文件内容并执行完整流水线。
// 扩展名不支持时在进入流水线前直接拒绝。
func (h *ResumeHandler) HandleResumeParse(ctx context.Context, reader io.Reader, filename string) (*ResumeParseResponse, error) {
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	submissionUUID := uuidV7.String()

	if !parser.IsSupportedFilename(filename) {
		return nil, processor.NewUnsupportedFormatError(submissionUUID, filename)
	}

	fileBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("读取上传文件内容失败: %w", err)
	}

	logger.Info().
		Str("submission_uuid", submissionUUID).
		Str("filename", filename).
		Int("size_bytes", len(fileBytes)).
		Msg("收到简历解析请求")

	record, err := h.service.ProcessResume(ctx, fileBytes, filename, submissionUUID)
	if err != nil {
		return nil, err
	}

	return &ResumeParseResponse{
		SubmissionUUID: submissionUUID,
		Record:         record,
	}, nil
}
