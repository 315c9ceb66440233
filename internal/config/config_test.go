package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestConfigLoad は設定の読み込みをテストする
func TestConfigLoad(t *testing.T) {
	// 設定を読み込む
	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// 基本的な設定値を検証
	if cfg == nil {
		t.Fatal("設定がnilです")
	}

	// サーバー設定の検証
	if cfg.Server.Host == "" {
		t.Error("サーバーホストが設定されていません")
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		t.Errorf("無効なポート番号: %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		t.Error("読み込みタイムアウトが設定されていません")
	}

	// ゲートウェイ設定の検証
	if cfg.Gateway.DataDir == "" {
		t.Error("データディレクトリが設定されていません")
	}
	if cfg.Gateway.EntryFile == "" {
		t.Error("エントリファイルが設定されていません")
	}
	if cfg.Gateway.Version == "" {
		t.Error("バージョンが設定されていません")
	}
	if len(cfg.Gateway.RequiredFiles) == 0 {
		t.Error("必須ファイル一覧が設定されていません")
	}
}

// TestConfigValidation は設定の検証をテストする
func TestConfigValidation(t *testing.T) {
	testCases := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{
			name: "正常な設定",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 5000,
				},
				Gateway: GatewayConfig{
					DataDir:   "data",
					EntryFile: "index.html",
				},
			},
			expectErr: false,
		},
		{
			name: "無効なポート番号",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 99999, // 無効なポート
				},
				Gateway: GatewayConfig{
					DataDir:   "data",
					EntryFile: "index.html",
				},
			},
			expectErr: true,
		},
		{
			name: "データディレクトリなし",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 5000,
				},
				Gateway: GatewayConfig{
					DataDir:   "", // 空のディレクトリ
					EntryFile: "index.html",
				},
			},
			expectErr: true,
		},
		{
			name: "エントリファイルなし",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 5000,
				},
				Gateway: GatewayConfig{
					DataDir:   "data",
					EntryFile: "", // 空のエントリファイル
				},
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.expectErr && err == nil {
				t.Error("エラーが期待されましたが、エラーが発生しませんでした")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("予期しないエラーが発生しました: %v", err)
			}
		})
	}
}

// TestServerAddress はサーバーアドレスの生成をテストする
func TestServerAddress(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{
			Host: "192.168.1.100",
			Port: 9090,
		},
	}

	expected := "192.168.1.100:9090"
	actual := cfg.ServerAddress()

	if actual != expected {
		t.Errorf("サーバーアドレスが一致しません: got %s, want %s", actual, expected)
	}
}

// TestEnvironmentVariables は環境変数の処理をテストする
// 注意: このテストは環境変数を変更するため、parallelは使わない
func TestEnvironmentVariables(t *testing.T) {
	t.Setenv("SERVER_HOST", "test.example.com")
	t.Setenv("SERVER_PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if cfg.Server.Host != "test.example.com" {
		t.Errorf("環境変数のホストが反映されていません: got %s, want test.example.com", cfg.Server.Host)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("環境変数のポートが反映されていません: got %d, want 9999", cfg.Server.Port)
	}
}

// TestLoadConfigFile は設定ファイルの読み込みをテストする
func TestLoadConfigFile(t *testing.T) {
	content := `
server:
  host: 10.0.0.1
  port: 9001
gateway:
  data_dir: csvdata
  version: "4.1"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("設定ファイルの作成に失敗しました: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if cfg.Server.Host != "10.0.0.1" {
		t.Errorf("設定ファイルのホストが反映されていません: got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 9001 {
		t.Errorf("設定ファイルのポートが反映されていません: got %d", cfg.Server.Port)
	}
	if cfg.Gateway.DataDir != "csvdata" {
		t.Errorf("設定ファイルのデータディレクトリが反映されていません: got %s", cfg.Gateway.DataDir)
	}
	if cfg.Gateway.Version != "4.1" {
		t.Errorf("設定ファイルのバージョンが反映されていません: got %s", cfg.Gateway.Version)
	}

	// ファイルで指定しなかった値はデフォルトのまま
	if cfg.Gateway.EntryFile != "index.html" {
		t.Errorf("エントリファイルのデフォルト値が失われています: got %s", cfg.Gateway.EntryFile)
	}
	if !cfg.Gateway.Watch {
		t.Error("変更監視のデフォルト値が失われています")
	}
}

// TestLoadInvalidConfigFile は不正な設定ファイルの扱いをテストする
func TestLoadInvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [broken"), 0o644); err != nil {
		t.Fatalf("設定ファイルの作成に失敗しました: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)

	if _, err := Load(); err == nil {
		t.Error("不正な設定ファイルでエラーが発生しませんでした")
	}
}
