package cluster

import (
	"k8s.io/klog/v2"
	kindlog "sigs.k8s.io/kind/pkg/log"
)

// kindLogger routes kind's provider output through klog.
type kindLogger struct{}

func newKindLogger() kindlog.Logger {
	return kindLogger{}
}

func (kindLogger) Warn(message string) {
	klog.Warning(message)
}

func (kindLogger) Warnf(format string, args ...interface{}) {
	klog.Warningf(format, args...)
}

func (kindLogger) Error(message string) {
	klog.Error(message)
}

func (kindLogger) Errorf(format string, args ...interface{}) {
	klog.Errorf(format, args...)
}

func (kindLogger) V(level kindlog.Level) kindlog.InfoLogger {
	return infoLogger{v: klog.V(klog.Level(level))}
}

type infoLogger struct {
	v klog.Verbose
}

func (l infoLogger) Info(message string) {
	l.v.Info(message)
}

func (l infoLogger) Infof(format string, args ...interface{}) {
	l.v.Infof(format, args...)
}

func (l infoLogger) Enabled() bool {
	return l.v.Enabled()
}
