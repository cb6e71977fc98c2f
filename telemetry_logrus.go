package inject

import "github.com/sirupsen/logrus"

// NewLogrusTelemetry returns Telemetry writing every Event as a debug entry to l.
// nil l uses logger set with SetDefaultLogger.
func NewLogrusTelemetry(l logrus.FieldLogger) Telemetry {
	return &logrusTelemetry{l: l}
}

type logrusTelemetry struct {
	l logrus.FieldLogger
}

func (t *logrusTelemetry) Record(ev Event) {
	l := t.l
	if l == nil {
		l = logger()
	}

	entry := l.WithFields(logrus.Fields{
		"declaration": ev.Declaration,
		"type":        ev.Type,
		"strategy":    ev.Strategy.String(),
		"site":        ev.Site.String(),
	})

	switch ev.Kind {
	case Created, ReturnedShared:
		entry = entry.WithField("override", ev.Override)
	}

	if ev.Kind == ReturnedShared {
		entry = entry.WithField("retaining", ev.Retaining)
	}

	entry.Debug(ev.Kind.String())
}
