package utils

import (
	"github.com/Luismorlan/blogmux/utils/flag"
	Logger "github.com/Luismorlan/blogmux/utils/log"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

// StartTracer starts the Datadog tracer for the calling service.
func StartTracer() {
	env := "development"
	if !flag.IsDevelopment {
		env = "production"
	}

	tracer.Start(
		tracer.WithService(flag.ServiceName),
		tracer.WithEnv(env),
	)

	Logger.Log.Info("tracer initialized")
}

// Stop tracer, OK to be closed multiple times
func CloseTracer() {
	tracer.Stop()
}
