package router

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"

	"resume-structurer-go/internal/api/handler"
	"resume-structurer-go/internal/processor"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler) {
	h.Use(cors.Default())

	api := h.Group("/api/v1")

	api.POST("/resume/parse", func(c context.Context, ctx *app.RequestContext) {
		// 获取上传的文件
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{
				"success": false,
				"message": "文件未找到",
			})
			return
		}

		// 打开文件
		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{
				"success": false,
				"message": "打开文件失败",
			})
			return
		}
		defer file.Close()

		resp, err := resumeHandler.HandleResumeParse(c, file, fileHeader.Filename)
		if err != nil {
			ctx.JSON(statusForError(err), utils.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}

		ctx.JSON(consts.StatusOK, utils.H{
			"success": true,
			"data":    resp,
			"message": "简历解析成功",
		})
	})

	// 添加健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}

// statusForError 按错误归类映射HTTP状态码：
// 请求侧问题（格式不支持、空文档）为400，其余为500
func statusForError(err error) int {
	switch {
	case errors.Is(err, processor.ErrUnsupportedFormat),
		errors.Is(err, processor.ErrEmptyDocument):
		return consts.StatusBadRequest
	default:
		return consts.StatusInternalServerError
	}
}
