package main

import (
	"flag"
	"strings"

	"go.uber.org/fx"

	"github.com/zhou-jk/flashsale-api/internal/app"
)

var defaultBin string

func selectedModules(binValue string) []fx.Option {
	selected := strings.TrimSpace(strings.ToLower(binValue))

	switch selected {
	case "api":
		return []fx.Option{
			app.AuthModule(),
			app.VoucherModule(),
			app.ShopModule(),
		}
	case "worker":
		return []fx.Option{
			app.WorkerModule(),
		}
	default:
		return []fx.Option{
			app.AuthModule(),
			app.VoucherModule(),
			app.ShopModule(),
			app.WorkerModule(),
		}
	}
}

func main() {
	bin := flag.String("bin", defaultBin, "select binary: api|worker (default: all)")
	flag.Parse()

	app.New(*bin, selectedModules(*bin)...).Run()
}
