package main

import (
	"context"
	"log"
	"os"

	"madoguchi/internal/config"
	"madoguchi/internal/server"
)

func main() {
	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// サーバーを作成
	srv := server.New(cfg)

	// 起動情報を表示
	log.Printf("Madoguchi データファイルゲートウェイ v%s", cfg.Gateway.Version)
	log.Printf("  URL:    http://localhost:%d", cfg.Server.Port)
	log.Printf("  API:    http://localhost:%d/api/", cfg.Server.Port)
	log.Printf("  Health: http://localhost:%d/health", cfg.Server.Port)

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
		os.Exit(1)
	}
}
