package cmdutil

import (
	"github.com/sirupsen/logrus"

	"github.com/PhilipKram/rtab/internal/config"
	"github.com/PhilipKram/rtab/pkg/iostreams"
)

// Factory provides shared dependencies for commands.
type Factory struct {
	IOStreams *iostreams.IOStreams
	Config    func() (*config.Config, error)
	Logger    *logrus.Logger
	Version   string
}

// NewFactory creates a Factory with default implementations.
func NewFactory() *Factory {
	return newFactory(iostreams.System())
}

// NewTestFactory creates a Factory around ios, for driving commands in tests.
func NewTestFactory(ios *iostreams.IOStreams) *Factory {
	return newFactory(ios)
}

func newFactory(ios *iostreams.IOStreams) *Factory {
	f := &Factory{
		IOStreams: ios,
		Logger:    NewLogger(ios),
	}

	f.Config = func() (*config.Config, error) {
		return config.Load()
	}

	return f
}

// NewLogger returns a logger writing plain text to the error stream. Only
// warnings are shown until SetVerbose is called.
func NewLogger(ios *iostreams.IOStreams) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(ios.ErrOut)
	logger.SetLevel(logrus.WarnLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return logger
}

// SetVerbose switches the logger to debug output.
func (f *Factory) SetVerbose(verbose bool) {
	if verbose {
		f.Logger.SetLevel(logrus.DebugLevel)
	}
}
