package test

import "go.uber.org/fx"

// LifecycleRecorder collects fx hooks so tests can drive OnStart/OnStop
// manually instead of spinning up a full application.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub counts shutdown requests and optionally signals a channel.
type ShutdownerStub struct {
	Calls  int
	Called chan struct{}
}

func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	s.Calls++
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
