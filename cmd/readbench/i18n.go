// Package main provides localization for the readbench CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input":       "入力",
		"Measurement": "計測",
		"Output":      "出力",
		"Logging":     "ログ",

		// Commands
		"Benchmark ways of reading a whole file into memory": "ファイル全体をメモリに読み込む方法のベンチマーク",
		"Benchmark read strategies against a file":           "ファイルに対して読み込み戦略をベンチマーク",
		"Read a file once and print its size and SHA-256":    "ファイルを一度読み込みサイズとSHA-256を表示",
		"List available read strategies":                     "利用可能な読み込み戦略を一覧表示",
		"Show version information":                           "バージョン情報を表示",
		"readbench version %s":                               "readbench バージョン %s",

		// Run flags
		"YAML configuration file":                                 "YAML設定ファイル",
		"Strategy to run (repeatable, default: all enabled)":      "実行する戦略（複数指定可、デフォルト: 有効な全戦略）",
		"Time or iterations per run (e.g. 1s, 100x)":              "1回あたりの時間または反復回数（例: 1s, 100x）",
		"Runs per strategy":                                       "戦略ごとの実行回数",
		"Skip the cross-strategy content check":                   "戦略間の内容検証を省略",
		"Generate the file with this many bytes if it is missing": "ファイルがない場合にこのバイト数で生成",
		"Seed for generated file content":                         "生成ファイル内容のシード",
		"Keep a generated file after the run":                     "実行後も生成したファイルを残す",
		"Write a Markdown summary to this file":                   "Markdownサマリーをこのファイルに出力",
		"Write a PNG bar chart to this file":                      "PNG棒グラフをこのファイルに出力",
		"Log level (debug, info, warn, error)":                    "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                                 "全てのログ出力を抑制",

		// Read command
		"Strategy to read with":        "読み込みに使う戦略",
		"Exactly one path is required": "パスを1つだけ指定してください",

		// List command
		"default": "既定",
		"opt-in":  "任意",
		"seek for size, read into an exact buffer": "シークでサイズを求め、ぴったりのバッファに読み込む",
		"buffered reader into an exact buffer":     "バッファ付きリーダーでぴったりのバッファに読み込む",
		"bytes.Buffer.ReadFrom the file":           "bytes.Buffer.ReadFrom でファイルを読む",
		"io.ReadAll the file":                      "io.ReadAll でファイルを読む",
		"byte-at-a-time through a buffered reader": "バッファ付きリーダーで1バイトずつ読む",
		"memory-map and copy":                      "メモリマップしてコピー",
		"os.ReadFile":                              "os.ReadFile",

		// Summary content
		"Benchmark Summary": "ベンチマークサマリー",
		"Generated":         "生成日時",
		"Run ID":            "実行ID",
		"File":              "ファイル",
		"Settings":          "設定",
		"Results":           "結果",
		"Item":              "項目",
		"Value":             "値",
		"Path":              "パス",
		"Size":              "サイズ",
		"Generated Fixture": "生成したフィクスチャ",
		"Bench Time":        "計測時間",
		"Runs per Strategy": "戦略ごとの実行回数",
		"Verified":          "検証済み",
		"Verification":      "検証",
		"Bytes":             "バイト数",
		"Read Time":         "読み込み時間",
		"Go Version":        "Goバージョン",
		"Platform":          "プラットフォーム",
		"Strategy":          "戦略",
		"Mean":              "平均",
		"Median":            "中央値",
		"Min":               "最小",
		"Max":               "最大",
		"Std Dev":           "標準偏差",
		"Relative":          "相対",
		"No results":        "結果なし",
		"Yes":               "はい",
		"No":                "いいえ",
		"Generated by":      "生成:",
	})
}
