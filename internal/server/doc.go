// Package server は、静的ファイルゲートウェイのHTTPサーバーを管理します。
//
// このパッケージは、HTTPサーバーの起動、ルーティング、
// エントリHTMLとCSVデータファイルの配信を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - エントリHTMLファイルの配信（ルートパス）
//   - データディレクトリのCSVファイル配信（/api/配下）
//   - ヘルスチェックの応答（データファイル一覧を含む）
//   - 全レスポンスへのCORSヘッダー付与
//
// 仕様:
//   - ルーティングはgin-gonic/ginを使用
//   - 各リクエストは独立しており、リクエスト間で状態を共有しない
//   - レスポンスは常にディスクの現在状態を反映する（キャッシュしない）
//   - グレースフルシャットダウンに対応
package server
