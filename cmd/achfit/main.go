package main

import (
	"flag"
	"fmt"

	"aqi/airQuality/mixrate"
	"aqi/infra/staticLog"
)

func main() {
	cfgPath := flag.String("config", "configs/achfit.yaml", "run config yaml path")
	flag.Parse()

	cfg, err := mixrate.LoadRunConfig(*cfgPath)
	if err != nil {
		staticLog.Log.Fatalf("load config: %v", err)
	}
	if cfg.LogFile != "" {
		staticLog.Init(cfg.LogFile)
	}

	est, err := mixrate.NewEstimateFromCSV(cfg.CSVFile, cfg.Options())
	if err != nil {
		staticLog.Log.Fatalf("estimate: %v", err)
	}

	staticLog.Log.Infof("csv=%s constrain=%q ts=%g advisories=%d",
		cfg.CSVFile, cfg.Constrain, est.Timestep(), len(est.Advisories))
	fmt.Println(est)
}
