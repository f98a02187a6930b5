package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xoui/pkg/config/xconf"
	"github.com/omeyang/xoui/pkg/lookup/xoui"
	"github.com/omeyang/xoui/pkg/observability/xlog"
	"github.com/omeyang/xoui/pkg/observability/xmetrics"
	"github.com/omeyang/xoui/pkg/util/xmac"
)

const (
	flagConfig   = "config"
	flagTable    = "table"
	flagLogLevel = "log-level"
	flagJSON     = "json"
	flagSep      = "sep"
)

// exitError 命令已完成输出，只需设置非零退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 参数错误，退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isFlagError 识别 flag 解析阶段未经 OnUsageError 包装的错误。
func isFlagError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "flag needs an argument") ||
		strings.Contains(msg, "invalid value")
}

func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}

// createCommands 创建所有子命令。
func createCommands() []*cli.Command {
	cmds := []*cli.Command{
		createLookupCommand(),
		createVendorCommand(),
		createValidateCommand(),
		createFormatCommand(),
		createStatsCommand(),
	}
	for _, c := range cmds {
		c.OnUsageError = onUsageError
	}
	return cmds
}

func createLookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "查询厂商与地址",
		ArgsUsage: "<mac>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return &usageError{msg: "lookup 需要至少一个 MAC 地址"}
			}
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			return cmdLookup(ctx, e, cmd.Args().Slice())
		},
	}
}

func createVendorCommand() *cli.Command {
	return &cli.Command{
		Name:      "vendor",
		Usage:     "仅输出厂商名称",
		ArgsUsage: "<mac>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "vendor 需要且仅需要一个 MAC 地址"}
			}
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			return cmdVendor(ctx, e, cmd.Args().First())
		},
	}
}

func createValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "检查 MAC 地址能否规范化为 OUI",
		ArgsUsage: "<mac>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return &usageError{msg: "validate 需要至少一个 MAC 地址"}
			}
			return cmdValidate(newPrinter(cmd), cmd.Args().Slice())
		},
	}
}

func createFormatCommand() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Usage:     "输出规范的完整 MAC 地址（需要 12 位十六进制）",
		ArgsUsage: "<mac>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagSep,
				Usage: `分组分隔符，不要分隔符时写 --sep ""`,
				Value: xmac.DefaultSeparator,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "format 需要且仅需要一个 MAC 地址"}
			}
			return cmdFormat(newPrinter(cmd), cmd.Args().First(), cmd.String(flagSep))
		},
	}
}

func createStatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "输出参考表统计信息",
		Action: func(_ context.Context, cmd *cli.Command) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			return cmdStats(e)
		},
	}
}

// printer 按 --json 选择输出格式。
type printer struct {
	out    io.Writer
	errOut io.Writer
	json   bool
}

func newPrinter(cmd *cli.Command) printer {
	root := cmd.Root()
	return printer{out: root.Writer, errOut: root.ErrWriter, json: cmd.Bool(flagJSON)}
}

func (p printer) encode(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// env 查询类命令的运行环境。
type env struct {
	printer
	resolver *xoui.Resolver
	logger   xlog.LoggerWithLevel
	cleanup  func() error
}

// openEnv 按 默认值 < 配置文件 < 命令行 的顺序合并设置，并构建日志与 Resolver。
func openEnv(cmd *cli.Command) (*env, error) {
	settings := xconf.DefaultSettings()
	if path := cmd.String(flagConfig); path != "" {
		loaded, err := xconf.LoadSettings(path)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}
	if path := cmd.String(flagTable); path != "" {
		settings.Table.Path = path
	}
	if level := cmd.String(flagLogLevel); level != "" {
		settings.Log.Level = level
	}

	p := newPrinter(cmd)
	logger, cleanup, err := buildLogger(settings.Log, p.errOut)
	if err != nil {
		return nil, err
	}

	var table *xoui.Table
	if settings.Table.Path != "" {
		if table, err = xoui.LoadTableFile(settings.Table.Path); err != nil {
			_ = cleanup() //nolint:errcheck // 加载错误优先返回
			return nil, err
		}
	}

	// 使用全局 provider，未安装 SDK 时为 noop
	observer, err := xmetrics.NewOTelObserver()
	if err != nil {
		_ = cleanup() //nolint:errcheck // 构建错误优先返回
		return nil, err
	}

	resolver, err := xoui.New(
		xoui.WithTable(table),
		xoui.WithObserver(observer),
		xoui.WithCache(settings.Cache.Size, settings.Cache.TTL),
		xoui.WithConcurrency(settings.Lookup.Concurrency),
		xoui.WithLogger(logger.With(xlog.Component("xoui"))),
	)
	if err != nil {
		_ = cleanup() //nolint:errcheck // 构建错误优先返回
		return nil, err
	}

	return &env{printer: p, resolver: resolver, logger: logger, cleanup: cleanup}, nil
}

func buildLogger(s xconf.LogSettings, stderr io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(stderr).
		SetLevelString(s.Level).
		SetFormat(s.Format)
	if s.File != "" {
		var opts []xlog.RotationOption
		if s.MaxSizeMB > 0 {
			opts = append(opts, xlog.WithMaxSize(s.MaxSizeMB))
		}
		if s.MaxBackups > 0 {
			opts = append(opts, xlog.WithMaxBackups(s.MaxBackups))
		}
		b.SetRotation(s.File, opts...)
	}
	return b.Build()
}

func (e *env) close() {
	e.resolver.Close()
	if err := e.cleanup(); err != nil {
		fmt.Fprintf(e.errOut, "关闭日志失败: %v\n", err)
	}
}

// lookupOutput lookup 的 JSON 输出项。
type lookupOutput struct {
	Input   string `json:"input"`
	Found   bool   `json:"found"`
	OUI     string `json:"oui,omitempty"`
	Vendor  string `json:"vendor,omitempty"`
	Address string `json:"address,omitempty"`
	Error   string `json:"error,omitempty"`
}

// cmdLookup 并发查询所有输入。任一输入无效时退出码为 1，未找到不算失败。
func cmdLookup(ctx context.Context, e *env, inputs []string) error {
	results := e.resolver.LookupBatch(ctx, inputs)
	e.logger.Debug(ctx, "lookup finished", xlog.Count(len(results)))

	failed := false
	outputs := make([]lookupOutput, 0, len(results))
	for _, res := range results {
		o := lookupOutput{Input: res.Input, Found: res.Found}
		switch {
		case res.Err != nil:
			failed = true
			o.Error = res.Err.Error()
		case res.Found:
			o.OUI = res.Record.OUI.String()
			o.Vendor = res.Record.Vendor
			o.Address = res.Record.Address
		}
		outputs = append(outputs, o)
	}

	if e.json {
		if err := e.encode(outputs); err != nil {
			return err
		}
	} else {
		for _, o := range outputs {
			printLookup(e.printer, o)
		}
	}

	if failed {
		return &exitError{code: 1}
	}
	return nil
}

func printLookup(p printer, o lookupOutput) {
	switch {
	case o.Error != "":
		fmt.Fprintf(p.errOut, "%s: %s\n", o.Input, o.Error)
	case !o.Found:
		fmt.Fprintf(p.out, "%s\tnot found\n", o.Input)
	default:
		firstAddr, _, _ := strings.Cut(o.Address, "\n")
		if firstAddr == "" {
			fmt.Fprintf(p.out, "%s\t%s\t%s\n", o.Input, o.OUI, o.Vendor)
			return
		}
		fmt.Fprintf(p.out, "%s\t%s\t%s\t%s\n", o.Input, o.OUI, o.Vendor, firstAddr)
	}
}

// cmdVendor 输出厂商名称，未找到或输入无效时退出码为 1。
func cmdVendor(ctx context.Context, e *env, input string) error {
	vendor, ok, err := e.resolver.GetVendor(ctx, input)
	if err != nil {
		return err
	}
	if !ok {
		if e.json {
			_ = e.encode(map[string]any{"input": input, "found": false}) //nolint:errcheck // 退出码已表达结果
		} else {
			fmt.Fprintf(e.errOut, "%s: not found\n", input)
		}
		return &exitError{code: 1}
	}
	if e.json {
		return e.encode(map[string]any{"input": input, "found": true, "vendor": vendor})
	}
	fmt.Fprintln(e.out, vendor)
	return nil
}

// cmdValidate 逐个输出 Valid/Invalid，存在无效输入时退出码为 1。
func cmdValidate(p printer, inputs []string) error {
	type validateOutput struct {
		Input string `json:"input"`
		Valid bool   `json:"valid"`
	}

	allValid := true
	outputs := make([]validateOutput, 0, len(inputs))
	for _, input := range inputs {
		valid := xmac.IsValidOUI(input)
		allValid = allValid && valid
		outputs = append(outputs, validateOutput{Input: input, Valid: valid})
	}

	if p.json {
		if err := p.encode(outputs); err != nil {
			return err
		}
	} else {
		for _, o := range outputs {
			status := "Valid"
			if !o.Valid {
				status = "Invalid"
			}
			fmt.Fprintf(p.out, "%s\t%s\n", o.Input, status)
		}
	}

	if !allValid {
		return &exitError{code: 1}
	}
	return nil
}

// cmdFormat 输出规范格式，输入不是 12 位十六进制时返回错误。
func cmdFormat(p printer, input, sep string) error {
	formatted, err := xmac.FormatAddress(input, sep)
	if err != nil {
		return err
	}
	if p.json {
		return p.encode(map[string]string{"input": input, "formatted": formatted})
	}
	fmt.Fprintln(p.out, formatted)
	return nil
}

// cmdStats 输出参考表统计信息。
func cmdStats(e *env) error {
	stats := e.resolver.Stats()
	if e.json {
		return e.encode(stats)
	}
	fmt.Fprintf(e.out, "Total entries:  %d\n", stats.TotalEntries)
	fmt.Fprintf(e.out, "Unique vendors: %d\n", stats.UniqueVendors)
	fmt.Fprintf(e.out, "Version:        %s\n", stats.Version)
	fmt.Fprintf(e.out, "Digest:         %s\n", stats.Digest)
	return nil
}

// errNoCommand 未指定子命令。
var errNoCommand = errors.New("缺少命令，使用 --help 查看可用命令")
