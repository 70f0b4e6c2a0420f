package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/ioexpander/pkg/env"
	fx "github.com/robotalks/ioexpander/pkg/framework"
)

var configFile string

func init() {
	env.SetupFlags()
	flag.StringVar(&configFile, "config", configFile, "YAML config file.")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if configFile != "" {
		if err := env.LoadFile(configFile); err != nil {
			glog.Fatalf("config: %v", err)
		}
	}

	e := env.NewConfig().MustNewEnv()
	defer e.Close()

	glog.Infof("running: usb=%s uart=%s", e.Config.USB.Device, e.Config.UART.Device)
	runner := fx.NewRunner().HandleSignals().Go(fx.NamedRun("loop", e.NewLoop()))
	if err := runner.Wait(); err != nil {
		glog.Errorf("stopped: %v", err)
	}
}
