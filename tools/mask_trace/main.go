package main

import (
	"fmt"
	"os"

	"github.com/vitrine/catalog/pkg/currency"
	"github.com/vitrine/catalog/pkg/money"
)

// mask_trace replays keystrokes through the amount mask the way the input
// field does: each key is appended to the previous render and re-masked.
func main() {
	keys := "123456789"
	if len(os.Args) > 1 {
		keys = os.Args[1]
	}

	for _, tag := range currency.Tags() {
		loc, err := currency.Lookup(tag)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s:\n", tag)
		display := ""
		for _, k := range keys {
			display = currency.ParseInput(display+string(k), true, loc)
			fmt.Printf("  %q -> %-22s stored %s\n", k, display, money.FromMaskedInput(display).String())
		}
	}
}
