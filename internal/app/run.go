package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/recordkit/internal/ctxlog"
)

// Run reports every bound record type, one per line, in name order.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if a.registry.Len() == 0 {
		logger.Warn("No record types defined.")
		return nil
	}

	for _, name := range a.registry.Names() {
		t, _ := a.registry.Lookup(name)
		line := t.String()
		if defined := t.DefinedMethods(); len(defined) > 0 {
			line += " methods: " + strings.Join(defined, ", ")
		}
		if _, err := fmt.Fprintln(a.outW, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	logger.Info("Record types reported.", "defined", len(a.types), "bound", a.registry.Len())
	logger.Debug("App.Run method finished.")
	return nil
}
