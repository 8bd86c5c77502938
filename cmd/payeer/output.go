package main

import (
	"fmt"
	"os"
	"sort"

	"payeer-go/client/payeer"

	"github.com/fatih/color"
	"github.com/tidwall/pretty"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	keyColor    = color.New(color.FgYellow)
	okColor     = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed, color.Bold)
)

func printResponse(resp *payeer.Response) {
	out := pretty.Pretty(resp.Raw())
	if !color.NoColor {
		out = pretty.Color(out, nil)
	}
	os.Stdout.Write(out)
}

func printHeader(format string, args ...any) {
	headerColor.Printf(format+"\n", args...)
}

func printResult(ok bool, yes string, no string) {
	if ok {
		okColor.Println(yes)
		return
	}
	errorColor.Println(no)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func printRow(key string, format string, args ...any) {
	keyColor.Printf("  %-16s", key)
	fmt.Printf(format+"\n", args...)
}
