// 全局静态logger, 库内只用于咨询级告警输出
package staticLog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Init 切换到滚动日志文件, 同时保留stderr输出
func Init(path string) {
	rotate := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    64, // MB
		MaxBackups: 3,
		MaxAge:     30, // days
		Compress:   true,
	}
	Log.SetOutput(io.MultiWriter(os.Stderr, rotate))
}
