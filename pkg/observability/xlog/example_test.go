package xlog_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/omeyang/xoui/pkg/observability/xlog"
)

func Example() {
	logger, cleanup, err := xlog.New().
		SetOutput(os.Stdout).
		SetLevelString("debug").
		SetReplaceAttr(func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		}).
		Build()
	if err != nil {
		panic(err)
	}
	defer cleanup() //nolint:errcheck // 示例代码

	logger.With(xlog.Component("xoui")).Debug(context.Background(), "lookup",
		xlog.Input("00:50:56:c0:00:08"),
		xlog.OUI("005056"),
		xlog.Outcome("hit"),
	)
	// Output:
	// level=DEBUG msg=lookup component=xoui input=00:50:56:c0:00:08 oui=005056 outcome=hit
}
