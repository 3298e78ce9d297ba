package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"resume-structurer-go/internal/logger"
	"resume-structurer-go/internal/parser"
	"resume-structurer-go/internal/tracing"
	"resume-structurer-go/internal/types"
)

// 组件未初始化错误
var (
	ErrExtractorNotInit  = errors.New("文本提取器未初始化")
	ErrStructurerNotInit = errors.New("结构化器未初始化")
	ErrMapperNotInit     = errors.New("映射器未初始化")
)

// 定义tracer
var tracer = otel.Tracer("processor")

// ResumeService 定义简历结构化流水线的服务接口，
// 隐藏提取/结构化/映射的内部实现细节
type ResumeService interface {
	// ProcessResume 处理一份简历：字节流进，申请记录出
	ProcessResume(ctx context.Context, data []byte, filename, submissionUUID string) (types.ApplicationRecord, error)
}

// Components 流水线的组件依赖
type Components struct {
	Extractor  TextExtractor
	Structurer ResumeStructurer
	Mapper     RecordMapper
}

// resumeServiceImpl 是ResumeService的实现，采用Facade模式
// 持有所有组件但不暴露给外部
type resumeServiceImpl struct {
	components Components
	logger     zerolog.Logger
}

// NewResumeService 创建简历处理服务
func NewResumeService(components Components) (ResumeService, error) {
	service := &resumeServiceImpl{
		components: components,
		logger:     logger.Logger.With().Str("component", "resume_service").Logger(),
	}

	if err := service.checkComponentsInitialized(); err != nil {
		return nil, fmt.Errorf("创建简历处理服务失败: %w", err)
	}

	return service, nil
}

// checkComponentsInitialized 检查所有必要的组件是否已初始化
func (rs *resumeServiceImpl) checkComponentsInitialized() error {
	if rs.components.Extractor == nil {
		return ErrExtractorNotInit
	}
	if rs.components.Structurer == nil {
		return ErrStructurerNotInit
	}
	if rs.components.Mapper == nil {
		return ErrMapperNotInit
	}
	return nil
}

// ProcessResume 执行完整的流水线：扩展名校验 → 文本提取 →
// 模型结构化 → 记录映射。任一阶段失败即返回归类后的
// PipelineError，不产生部分结果。
func (rs *resumeServiceImpl) ProcessResume(ctx context.Context, data []byte, filename, submissionUUID string) (types.ApplicationRecord, error) {
	startTime := time.Now()

	ctx, span := tracer.Start(ctx, "ProcessResume",
		trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	span.SetAttributes(
		attribute.String("submission_uuid", submissionUUID),
		attribute.String("filename", tracing.SafeAttributeValue("filename", filename, tracing.MaxHeaderLength)),
		attribute.Int("file_size_bytes", len(data)),
	)

	ctx = logger.WithSubmissionUUID(ctx, submissionUUID)
	log := logger.FromContext(ctx)

	log.Debug().Str("filename", filename).Msg("开始处理简历")

	var record types.ApplicationRecord

	if !parser.IsSupportedFilename(filename) {
		err := NewUnsupportedFormatError(submissionUUID, filename)
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		return record, err
	}

	// 1. 文本提取
	extractCtx, extractSpan := tracer.Start(ctx, "ExtractText")
	text, err := rs.components.Extractor.Extract(extractCtx, data, filename)
	if err != nil {
		log.Error().Err(err).Msg("提取简历文本失败")
		var classified error
		if errors.Is(err, parser.ErrUnsupportedExtension) {
			classified = NewUnsupportedFormatError(submissionUUID, filename)
			tracing.RecordError(extractSpan, classified, tracing.ErrorTypeValidation)
		} else {
			classified = NewExtractionError(submissionUUID, err.Error())
			tracing.RecordError(extractSpan, classified, tracing.ErrorTypeInternal)
		}
		extractSpan.End()
		span.SetStatus(codes.Error, classified.Error())
		return record, classified
	}
	extractSpan.SetAttributes(attribute.Int("text_length", len(text)))
	extractSpan.End()

	if strings.TrimSpace(text) == "" {
		err := NewEmptyDocumentError(submissionUUID, filename)
		log.Warn().Msg("简历文档提取结果为空")
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		return record, err
	}

	span.AddEvent("text_extraction_completed")
	span.SetAttributes(attribute.String("resume_preview", tracing.SafeResumeContent(text)))

	// 2. 模型结构化
	structureCtx, structureSpan := tracer.Start(ctx, "StructureResume")
	extracted, err := rs.components.Structurer.Structure(structureCtx, text)
	if err != nil {
		log.Error().Err(err).Msg("简历结构化失败")
		var classified error
		switch {
		case errors.Is(err, parser.ErrInvalidStructuredResponse):
			classified = NewStructuringResponseError(submissionUUID, err.Error())
			tracing.RecordError(structureSpan, classified, tracing.ErrorTypeExternal)
		default:
			classified = NewOracleCallError(submissionUUID, err.Error())
			tracing.RecordError(structureSpan, classified, tracing.ErrorTypeExternal)
		}
		structureSpan.End()
		span.SetStatus(codes.Error, classified.Error())
		return record, classified
	}
	structureSpan.SetAttributes(
		attribute.Int("education_entries", len(extracted.Education)),
		attribute.Int("work_entries", len(extracted.WorkExperience)),
	)
	structureSpan.End()

	// 3. 记录映射
	_, mapSpan := tracer.Start(ctx, "MapApplicationRecord")
	record, err = rs.components.Mapper.Map(extracted)
	if err != nil {
		log.Error().Err(err).Msg("映射申请记录失败")
		classified := NewMappingError(submissionUUID, err.Error())
		tracing.RecordError(mapSpan, classified, tracing.ErrorTypeInternal)
		mapSpan.End()
		span.SetStatus(codes.Error, classified.Error())
		return types.ApplicationRecord{}, classified
	}
	mapSpan.End()

	span.SetStatus(codes.Ok, "处理成功")
	log.Info().
		Str("filename", filename).
		Dur("duration", time.Since(startTime)).
		Msg("简历处理成功完成")

	return record, nil
}
