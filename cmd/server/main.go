package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/animall-next/internal/app"
	"github.com/animall-next/internal/config"
	"github.com/animall-next/internal/logger"
	"github.com/animall-next/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiDim       = "\033[2m"
	ansiGreen     = "\033[32m"
	ansiCyan      = "\033[36m"
	ansiBrightMag = "\033[95m"
)

func main() {
	printStartupBanner()

	// 加载 .env（本地开发用，缺失时忽略）
	_ = godotenv.Load()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Gemini.APIKey == "" {
		stdLog.Printf("警告: 未配置 GEMINI_API_KEY，生成与助手接口将返回兜底内容")
	}

	// 初始化数据库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 初始化种子目录（幂等）
	if err := models.SeedCatalog(); err != nil {
		stdLog.Printf("警告: 初始化种子目录失败: %v", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiBrightMag + "╔══════════════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiBrightMag + "║              🎨 AniMall API 启动中               ║" + ansiReset)
	fmt.Println(ansiBrightMag + "╚══════════════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiCyan + " █████╗ ███╗   ██╗██╗███╗   ███╗ █████╗ ██╗     ██╗     " + ansiReset)
	fmt.Println(ansiCyan + "██╔══██╗████╗  ██║██║████╗ ████║██╔══██╗██║     ██║     " + ansiReset)
	fmt.Println(ansiCyan + "███████║██╔██╗ ██║██║██╔████╔██║███████║██║     ██║     " + ansiReset)
	fmt.Println(ansiCyan + "██╔══██║██║╚██╗██║██║██║╚██╔╝██║██╔══██║██║     ██║     " + ansiReset)
	fmt.Println(ansiCyan + "██║  ██║██║ ╚████║██║██║ ╚═╝ ██║██║  ██║███████╗███████╗" + ansiReset)
	fmt.Println(ansiCyan + "╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝╚═╝     ╚═╝╚═╝  ╚═╝╚══════╝╚══════╝" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "AI Anime Poster Storefront" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------" + ansiReset)
}
