package logger

import "go.uber.org/zap"

var log = zap.Must(zap.NewDevelopment()).Sugar()

// Init configures the process-wide logger. Production gets JSON output,
// everything else gets the development console encoder.
func Init(environment string) {
	var l *zap.Logger
	if environment == "production" {
		l = zap.Must(zap.NewProduction())
	} else {
		l = zap.Must(zap.NewDevelopment())
	}
	log = l.Sugar()
}

func Sync() {
	_ = log.Sync()
}

func Info(msg string, args ...any) {
	log.Infow(msg, fields(args)...)
}

func Warn(msg string, args ...any) {
	log.Warnw(msg, fields(args)...)
}

func Error(msg string, args ...any) {
	log.Errorw(msg, fields(args)...)
}

func Fatal(msg string, args ...any) {
	log.Fatalw(msg, fields(args)...)
}

// fields accepts either key/value pairs or a single error/value and always
// hands zap an even-length list.
func fields(args []any) []any {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return []any{"error", err}
		}
		return []any{"detail", args[0]}
	}
	if len(args)%2 != 0 {
		args = append(args, "(MISSING)")
	}
	return args
}
