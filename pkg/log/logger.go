package log

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const projectName = "Nexus"

// L 全局日志，启动前为 JSON + info 级别
var L *zap.Logger

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

func init() {
	L = build(zapcore.NewJSONEncoder(encoderConfig()))
}

func encoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeCaller = trimCaller
	return ec
}

// trimCaller 只保留项目内的相对路径
func trimCaller(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	if i := strings.Index(caller.File, projectName+"/"); i != -1 {
		enc.AppendString(caller.File[i:] + ":" + strconv.Itoa(caller.Line))
		return
	}
	enc.AppendString(caller.TrimmedPath())
}

func build(encoder zapcore.Encoder) *zap.Logger {
	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// SetDebug 调试模式切到彩色控制台输出并打开 debug 级别
func SetDebug(debug bool) {
	if !debug {
		level.SetLevel(zap.InfoLevel)
		return
	}
	level.SetLevel(zap.DebugLevel)
	ec := encoderConfig()
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	L = build(zapcore.NewConsoleEncoder(ec))
}
