package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupportedFilename(t *testing.T) {
	assert.True(t, IsSupportedFilename("resume.pdf"))
	assert.True(t, IsSupportedFilename("Resume.PDF"), "扩展名判断应大小写不敏感")
	assert.True(t, IsSupportedFilename("resume.doc"))
	assert.True(t, IsSupportedFilename("resume.docx"))
	assert.False(t, IsSupportedFilename("resume.txt"))
	assert.False(t, IsSupportedFilename("resume"))
}

func TestExtractUnsupportedExtension(t *testing.T) {
	extractor := &TextExtractor{docx: NewDocxTextExtractor()}

	_, err := extractor.Extract(context.Background(), []byte("plain text"), "resume.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedExtension, "未知扩展名应返回ErrUnsupportedExtension")
	assert.Contains(t, err.Error(), "resume.txt", "错误信息应包含文件名")
}

func TestStripWordMarkup(t *testing.T) {
	content := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Priya Sharma</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Research</w:t></w:r><w:tab/><w:r><w:t>Scholar &amp; Fellow</w:t></w:r></w:p>` +
		`<w:p/><w:p/>` +
		`<w:p><w:r><w:t>IIT&#160;Bombay</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text := stripWordMarkup(content)

	assert.Contains(t, text, "Priya Sharma")
	assert.Contains(t, text, "Scholar & Fellow", "HTML实体应被反转义")
	assert.Contains(t, text, "IIT Bombay", "不间断空格应归一化为普通空格")
	assert.NotContains(t, text, "<w:", "XML标签应被剥离")
	assert.NotContains(t, text, "\n\n", "连续空行应折叠")
}

func TestExtractDocxInvalidBytes(t *testing.T) {
	extractor := NewDocxTextExtractor()

	_, err := extractor.ExtractTextFromBytes([]byte("not a zip archive"), "resume.docx")
	assert.Error(t, err, "非法docx字节流应返回错误")
}
