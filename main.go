package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MedzenGo/config"
	"MedzenGo/middleware"
	"MedzenGo/routes"
	"MedzenGo/services"
	"MedzenGo/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
		return
	}

	// 初始化日志
	if err := config.InitLogger(conf.Environment); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	defer config.Logger.Sync()

	// 初始化存储后端
	store, err := initStore(conf)
	if err != nil {
		log.Fatalf("无法初始化存储: %v", err)
		return
	}

	// 初始化助手：默认固定回复表，配置了API key时接入真实模型
	var responder services.Responder = services.CannedResponder{}
	if conf.LLMAPIKey != "" {
		llmResponder, err := services.NewLLMResponder(conf.LLMAPIKey, conf.LLMAPIEndpoint, conf.LLMModel)
		if err != nil {
			log.Fatalf("无法初始化LLM客户端: %v", err)
		}
		responder = llmResponder
	}
	assistant := services.NewAssistant(responder, conf.AssistantDelay())

	// 设置Gin模式
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建Gin引擎
	r := gin.New()

	// 设置中间件
	middleware.SetupMiddleware(r)

	// 注册路由
	routes.RegisterRoutes(r, store, assistant)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 在goroutine中启动服务器
	go func() {
		log.Printf("启动服务器，监听端口: %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 创建超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务器关闭失败: %v", err)
	}

	// 等待在途的助手回复完成
	assistant.Wait()
	log.Println("服务器已关闭")
}

// initStore 按配置选择存储后端
func initStore(conf config.Config) (storage.Store, error) {
	switch conf.StorageBackend {
	case "mysql":
		if err := config.InitDB(conf); err != nil {
			return nil, err
		}
		return storage.NewGormStore(config.DB), nil
	case "redis":
		if err := config.InitRedis(conf); err != nil {
			return nil, err
		}
		return storage.NewRedisStore(config.RedisClient), nil
	default:
		config.Logger.Infow("使用内存存储，进程退出后数据不保留")
		return storage.NewMemoryStore(), nil
	}
}
