// xouictl 根据 MAC 地址查询网卡厂商。
//
// 用法:
//
//	xouictl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config     配置文件路径（.yaml/.yml/.json）
//	    --table      外部参考表路径，覆盖配置中的 table.path
//	    --log-level  日志级别，覆盖配置中的 log.level
//	    --json       以 JSON 输出结果
//
// 命令:
//
//	lookup <mac>...        查询厂商与地址，多个参数并发查询
//	vendor <mac>           仅输出厂商名称
//	validate <mac>...      检查每个参数能否规范化为 OUI
//	format [--sep :] <mac> 输出规范的完整 MAC 地址，不要分隔符时写 --sep ""
//	stats                  输出参考表统计信息
//
// 退出码:
//
//	0: 成功
//	1: 操作失败（输入无效、vendor 未找到、配置或参考表加载失败）
//	2: 参数错误（缺少参数、未知命令或选项）
//
// 示例:
//
//	xouictl lookup 10:00:20:11:3A:B7
//	xouictl --json lookup 00-50-56-c0-00-08 080027aabbcc
//	xouictl format --sep - 001b44113ab7
//	xouictl -c /etc/xouictl.yaml stats
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息，通过 -ldflags 注入：
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// createApp 创建 CLI 应用，输出写入 stdout/stderr 以便测试捕获。
func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xouictl",
		Usage:     "MAC 地址厂商查询工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "配置文件路径",
			},
			&cli.StringFlag{
				Name:  flagTable,
				Usage: "外部参考表路径（JSON 或 YAML）",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.BoolFlag{
				Name:  flagJSON,
				Usage: "以 JSON 输出",
			},
		},
		Commands:     createCommands(),
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return &usageError{msg: fmt.Sprintf("未知命令 %q", cmd.Args().First())}
			}
			return &usageError{msg: errNoCommand.Error()}
		},
		// 退出码由 run 统一映射，不让 urfave/cli 直接 os.Exit
		ExitErrHandler: func(_ context.Context, cmd *cli.Command, err error) {
			var coder cli.ExitCoder
			if errors.As(err, &coder) && err.Error() != "" {
				fmt.Fprintln(cmd.Root().ErrWriter, err)
			}
		},
	}
}

// run 执行命令并返回退出码。
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := createApp(stdout, stderr).Run(ctx, args); err != nil {
		return exitCode(err, stderr)
	}
	return 0
}

// exitCode 把错误映射为退出码并输出尚未输出的错误信息。
func exitCode(err error, stderr io.Writer) int {
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	if isFlagError(err) {
		fmt.Fprintf(stderr, "参数错误: %v\n", err)
		return 2
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}
