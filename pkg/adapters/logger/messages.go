package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration
		"Starting benchmark of %s":        "%s のベンチマークを開始します",
		"Benchmark completed":             "ベンチマークが完了しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",
		"File size: %d bytes":             "ファイルサイズ: %d バイト",
		"Strategies: %s":                  "戦略: %s",
		"Removed generated fixture %s":    "生成したフィクスチャ %s を削除しました",
		"Failed to remove fixture %s: %s": "フィクスチャ %s の削除に失敗しました: %s",

		// Fixture stage
		"Using existing file %s":         "既存のファイル %s を使用します",
		"Creating fixture %s (%d bytes)": "フィクスチャ %s を作成中 (%d バイト)",
		"Failed to prepare fixture: %s":  "フィクスチャの準備に失敗しました: %s",

		// Verify stage
		"Verifying %d strategies": "%d 個の戦略を検証中",
		"%s read %d bytes":        "%s が %d バイトを読み込みました",
		"Verification passed":     "検証に成功しました",
		"Verification failed: %s": "検証に失敗しました: %s",

		// Measure stage
		"Measuring %d strategies, %d runs each": "%d 個の戦略をそれぞれ %d 回計測中",
		"Measuring %s (run %d/%d)":              "%s を計測中 (%d/%d 回目)",
		"%s: %.0f ns/op, %.2f MB/s":             "%s: %.0f ns/op, %.2f MB/s",
		"Measurement failed: %s":                "計測に失敗しました: %s",

		// Chart stage
		"Rendering chart":            "チャートを描画中",
		"Chart rendered: %d bytes":   "チャート描画完了: %d バイト",
		"Failed to render chart: %s": "チャートの描画に失敗しました: %s",

		// Output
		"Chart saved to %s":           "チャートを %s に保存しました",
		"Summary saved to %s":         "サマリーを %s に保存しました",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",
	})
}
