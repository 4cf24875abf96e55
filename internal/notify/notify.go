// Package notify shows short success notices after a catalog change.
package notify

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// DefaultSuccessText is shown when Success is called with an empty text.
const DefaultSuccessText = "Sucesso"

// Options controls how a notice is presented
type Options struct {
	AutoClose time.Duration
	Position  string
	Theme     string
}

// DefaultOptions matches the toasts of the web front-end.
var DefaultOptions = Options{AutoClose: 3 * time.Second, Position: "top-right", Theme: "dark"}

// Notifier writes notices to out and records them in the log.
// A nil *Notifier discards everything.
type Notifier struct {
	out    io.Writer
	opts   Options
	logger *zap.Logger
}

// New creates a notifier; a nil logger is replaced by a no-op one.
func New(out io.Writer, opts Options, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{out: out, opts: opts, logger: logger}
}

// Success shows a success notice.
func (n *Notifier) Success(text string) {
	if n == nil {
		return
	}
	if text == "" {
		text = DefaultSuccessText
	}
	n.logger.Info("notification",
		zap.String("kind", "success"),
		zap.String("text", text),
		zap.Duration("auto_close", n.opts.AutoClose),
		zap.String("position", n.opts.Position),
		zap.String("theme", n.opts.Theme),
	)
	if n.out != nil {
		fmt.Fprintf(n.out, "✔ %s\n", text)
	}
}
