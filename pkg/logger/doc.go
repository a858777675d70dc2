// Package logger builds *slog.Logger values from functional options.
//
// New picks a text or JSON handler, attaches static attributes, and wraps the
// handler so that registered ContextExtractor callbacks add attributes from
// the context passed to the *Context logging methods. The form package uses
// this to tag every record with the trigger (submit or blur) of the current
// validation pass.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "regform"),
//	    logger.WithContextExtractors(engine.TriggerAttr),
//	)
//	log.InfoContext(ctx, "submission accepted", logger.Outcome(outcome))
//
// Options apply in order: WithEnvironment sets level and format presets, and a
// later WithLevel or WithFormat overrides them.
//
// Attribute helpers in attr.go keep key names consistent. Field takes the
// field identity only; values are never logged since one of them is a
// password.
package logger
