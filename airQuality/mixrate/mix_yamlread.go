package mixrate

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// 运行配置 (CLI用)
type RunConfig struct {
	CSVFile   string  `yaml:"csvfile"`
	TLabel    string  `yaml:"tlabel"`
	XLabel    string  `yaml:"xlabel"`
	YLabel    string  `yaml:"ylabel"`
	Constrain string  `yaml:"constrain"`
	Prec      float64 `yaml:"prec"`
	LogFile   string  `yaml:"logfile"`
}

func LoadRunConfig(path string) (*RunConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}

	var c RunConfig
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if c.CSVFile == "" {
		return nil, fmt.Errorf("csvfile is required")
	}

	// 规范化: 去空格, 缺省补默认值
	c.TLabel = strings.TrimSpace(c.TLabel)
	c.XLabel = strings.TrimSpace(c.XLabel)
	c.YLabel = strings.TrimSpace(c.YLabel)
	if c.TLabel == "" {
		c.TLabel = TLABEL_DEFAULT
	}
	if c.XLabel == "" {
		c.XLabel = XLABEL_DEFAULT
	}
	if c.YLabel == "" {
		c.YLabel = YLABEL_DEFAULT
	}

	c.Constrain = strings.TrimSpace(c.Constrain)
	if GetMyConstrainMode(c.Constrain) == CONSTRAIN_ERROR {
		return nil, &InvalidConstraintError{Constrain: c.Constrain}
	}
	if c.Prec == 0 {
		c.Prec = PREC_DEFAULT
	}
	return &c, nil
}

func (c *RunConfig) Options() Options {
	return Options{
		TLabel:    c.TLabel,
		XLabel:    c.XLabel,
		YLabel:    c.YLabel,
		Constrain: c.Constrain,
		Prec:      c.Prec,
	}
}
