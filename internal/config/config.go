package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Gateway GatewayConfig `yaml:"gateway"`
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string `yaml:"host"` // リッスンするホスト
	Port int    `yaml:"port"` // リッスンするポート番号

	// タイムアウト設定
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // 読み込みタイムアウト
	WriteTimeout time.Duration `yaml:"write_timeout"` // 書き込みタイムアウト
}

// GatewayConfig はファイルゲートウェイの設定
type GatewayConfig struct {
	DataDir   string `yaml:"data_dir"`   // CSVデータファイルを置くディレクトリ
	EntryFile string `yaml:"entry_file"` // ルートパスで配信するHTMLファイル
	Version   string `yaml:"version"`    // ヘルスチェックで報告するバージョン

	// 起動時に存在を確認するデータファイル（なくても警告のみ）
	RequiredFiles []string `yaml:"required_files"`

	// データディレクトリの変更監視を有効にするか
	Watch bool `yaml:"watch"`
}

// Load は設定を読み込む
// デフォルト値 → 設定ファイル（あれば）→ 環境変数 の順に上書きする
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         5000,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Gateway: GatewayConfig{
			DataDir:       "data",
			EntryFile:     "index.html",
			Version:       "3.0",
			RequiredFiles: []string{"Locations.csv", "Tracks.csv", "Variance.csv"},
			Watch:         true,
		},
	}

	// 設定ファイルを読み込む（存在する場合のみ）
	path := getEnvOrDefault("CONFIG_FILE", "config.yaml")
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("設定ファイルの解析に失敗: %w", err)
		}
	}

	// 環境変数による上書き
	cfg.Server.Host = getEnvOrDefault("SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvAsIntOrDefault("SERVER_PORT", cfg.Server.Port)

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}

	if c.Gateway.DataDir == "" {
		return fmt.Errorf("データディレクトリが設定されていません")
	}

	if c.Gateway.EntryFile == "" {
		return fmt.Errorf("エントリファイルが設定されていません")
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}
