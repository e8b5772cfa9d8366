package main

import (
	"flag"

	be "contact_book/be"
	"contact_book/be/biz/config"
	"contact_book/be/biz/db"
	"contact_book/be/biz/util/logger"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func main() {
	confPath := flag.String("conf", "conf/deploy.yml", "path of the yaml config")
	flag.Parse()

	config.Init(*confPath)
	if err := config.Validate(); err != nil {
		hlog.Fatalf("invalid config: %v", err)
	}
	logger.Init()
	db.Init()

	h := be.NewEngine()
	h.Spin()
}
