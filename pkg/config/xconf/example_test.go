package xconf_test

import (
	"fmt"

	"github.com/omeyang/xoui/pkg/config/xconf"
)

func ExampleSettingsFrom() {
	doc, err := xconf.Parse([]byte(`
cache:
  size: 1024
  ttl: 5m
log:
  level: warn
`), xconf.FormatYAML)
	if err != nil {
		fmt.Println(err)
		return
	}

	s, err := xconf.SettingsFrom(doc)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.Cache.Size, s.Cache.TTL, s.Log.Level, s.Lookup.Concurrency)

	// Output:
	// 1024 5m0s warn 8
}
