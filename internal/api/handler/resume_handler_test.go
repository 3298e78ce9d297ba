package handler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-structurer-go/internal/processor"
	"resume-structurer-go/internal/types"
)

type fakeResumeService struct {
	record    types.ApplicationRecord
	err       error
	callCount int
	lastUUID  string
}

func (f *fakeResumeService) ProcessResume(ctx context.Context, data []byte, filename, submissionUUID string) (types.ApplicationRecord, error) {
	f.callCount++
	f.lastUUID = submissionUUID
	return f.record, f.err
}

func TestHandleResumeParseSuccess(t *testing.T) {
	service := &fakeResumeService{record: types.ApplicationRecord{SaveMode: "save draft"}}
	h := NewResumeHandler(service)

	resp, err := h.HandleResumeParse(context.Background(), strings.NewReader("%PDF-"), "resume.pdf")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.SubmissionUUID, "应生成提交UUID")
	assert.Equal(t, resp.SubmissionUUID, service.lastUUID, "流水线应收到同一个UUID")
	assert.Equal(t, "save draft", resp.Record.SaveMode)
	assert.Equal(t, 1, service.callCount)
}

func TestHandleResumeParseUnsupportedExtension(t *testing.T) {
	service := &fakeResumeService{}
	h := NewResumeHandler(service)

	_, err := h.HandleResumeParse(context.Background(), strings.NewReader("text"), "resume.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, processor.ErrUnsupportedFormat)
	assert.Zero(t, service.callCount, "扩展名不支持时不应进入流水线")
}

func TestHandleResumeParseServiceError(t *testing.T) {
	service := &fakeResumeService{err: errors.New("模型不可用")}
	h := NewResumeHandler(service)

	_, err := h.HandleResumeParse(context.Background(), strings.NewReader("%PDF-"), "resume.pdf")
	assert.Error(t, err, "流水线错误应向上传递")
}
