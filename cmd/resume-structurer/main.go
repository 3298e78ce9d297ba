package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"

	"resume-structurer-go/internal/agent"
	"resume-structurer-go/internal/api/handler"
	"resume-structurer-go/internal/api/router"
	"resume-structurer-go/internal/config"
	appCoreLogger "resume-structurer-go/internal/logger"
	"resume-structurer-go/internal/mapper"
	"resume-structurer-go/internal/masterdata"
	"resume-structurer-go/internal/parser"
	"resume-structurer-go/internal/processor"
	"resume-structurer-go/internal/tracing"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 链路追踪（未启用时为no-op）
	tracingEndpoint := ""
	if cfg.Tracing.Enabled {
		tracingEndpoint = cfg.Tracing.Endpoint
	}
	shutdownTracing, err := tracing.InitTracerProvider(ctx, cfg.Tracing.ServiceName, tracingEndpoint, cfg.Tracing.SampleRatio)
	if err != nil {
		glog.Fatalf("初始化链路追踪失败: %v", err)
	}

	// 主数据目录
	masterIndex, err := masterdata.Load(cfg.MasterData.Path)
	if err != nil {
		glog.Fatalf("加载主数据目录失败: %v", err)
	}
	glog.Info("主数据目录加载成功")

	// 结构化模型客户端
	chatModel, err := agent.NewOpenAIChatModel(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.APIURL,
		agent.WithTemperature(cfg.OpenAI.Temperature),
		agent.WithMaxTokens(cfg.OpenAI.MaxTokens),
		agent.WithHTTPTimeout(cfg.RequestTimeout()),
	)
	if err != nil {
		glog.Fatalf("初始化结构化模型客户端失败: %v", err)
	}
	glog.Info("结构化模型客户端初始化成功")

	// 流水线组件
	textExtractor, err := parser.NewTextExtractor(ctx, cfg.ExtractTimeout())
	if err != nil {
		glog.Fatalf("初始化文本提取器失败: %v", err)
	}

	structurer, err := parser.NewResumeStructurer(chatModel, parser.WithStructurerTimeout(cfg.RequestTimeout()))
	if err != nil {
		glog.Fatalf("初始化简历结构化器失败: %v", err)
	}

	dtoMapper, err := mapper.NewDTOMapper(masterIndex)
	if err != nil {
		glog.Fatalf("初始化DTO映射器失败: %v", err)
	}

	resumeService, err := processor.NewResumeService(processor.Components{
		Extractor:  textExtractor,
		Structurer: structurer,
		Mapper:     dtoMapper,
	})
	if err != nil {
		glog.Fatalf("初始化简历处理服务失败: %v", err)
	}
	glog.Info("简历处理服务初始化成功")

	resumeHandler := handler.NewResumeHandler(resumeService)

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, resumeHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)
	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Errorf("服务器关闭失败: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		glog.Errorf("链路追踪关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化应用日志并把Hertz的hlog桥接到同一zerolog实例
func initLogger(cfg *config.Config) {
	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
}
