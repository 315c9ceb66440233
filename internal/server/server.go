package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"madoguchi/internal/config"
	"madoguchi/internal/datadir"

	"github.com/gin-gonic/gin"
)

// Server はHTTPサーバーを管理する構造体
type Server struct {
	config     *config.Config
	httpServer *http.Server
	engine     *gin.Engine
	watcher    *datadir.Watcher
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(corsMiddleware())

	s := &Server{
		config: cfg,
		engine: engine,
		httpServer: &http.Server{
			Addr:         cfg.ServerAddress(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}

	engine.Use(gin.CustomRecovery(s.handleRecovery))
	s.setupRoutes()

	return s
}

// setupRoutes はHTTPルートを設定する
func (s *Server) setupRoutes() {
	// エントリHTMLファイル
	s.engine.GET("/", s.handleIndex)

	// CSVデータファイル
	s.engine.GET("/api/:filename", s.handleDataFile)

	// ヘルスチェックエンドポイント
	s.engine.GET("/health", s.handleHealth)

	// 未定義ルート
	s.engine.NoRoute(s.handleNotFound)
}

// checkFiles は起動時にファイルの存在を確認し、なければ警告を出す
// 警告のみで起動は妨げない
func (s *Server) checkFiles() {
	if _, err := os.Stat(s.config.Gateway.EntryFile); err != nil {
		log.Printf("警告: %s が見つかりません", s.config.Gateway.EntryFile)
	}

	dir := s.config.Gateway.DataDir
	for _, name := range datadir.MissingRequired(dir, s.config.Gateway.RequiredFiles) {
		log.Printf("警告: %s が見つかりません", filepath.Join(dir, name))
	}
}

// Start はサーバーを起動する
func (s *Server) Start(ctx context.Context) error {
	// データディレクトリの存在を保証する
	created, err := datadir.Ensure(s.config.Gateway.DataDir)
	if err != nil {
		return err
	}
	if created {
		log.Printf("%s ディレクトリを作成しました。CSVファイルを配置してください", s.config.Gateway.DataDir)
	}

	// ファイルの存在確認（警告のみ）
	s.checkFiles()

	// データディレクトリの変更監視を開始する
	if s.config.Gateway.Watch {
		watcher, err := datadir.NewWatcher()
		if err != nil {
			return err
		}
		if err := watcher.Watch(s.config.Gateway.DataDir, func(op, name string) {
			log.Printf("データディレクトリの変更を検知: %s %s", op, name)
		}); err != nil {
			return err
		}
		s.watcher = watcher
	}

	// シャットダウン用のチャンネル
	shutdownCh := make(chan error, 1)

	// サーバーを別ゴルーチンで起動
	go func() {
		log.Printf("HTTPサーバーを起動しています: %s", s.config.ServerAddress())
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			shutdownCh <- fmt.Errorf("サーバーの起動に失敗: %w", err)
		}
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		log.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Printf("シグナルを受信しました: %v", sig)
	case err := <-shutdownCh:
		s.stopWatcher()
		return err
	}

	// グレースフルシャットダウン
	return s.Shutdown()
}

// Shutdown はサーバーをグレースフルにシャットダウンする
func (s *Server) Shutdown() error {
	log.Println("サーバーをシャットダウンしています...")

	s.stopWatcher()

	// 5秒のタイムアウトを設定
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}

	log.Println("サーバーが正常にシャットダウンされました")
	return nil
}

// stopWatcher は変更監視を停止する
func (s *Server) stopWatcher() {
	if s.watcher != nil {
		if err := s.watcher.Stop(); err != nil {
			log.Printf("変更監視の停止に失敗: %v", err)
		}
	}
}
