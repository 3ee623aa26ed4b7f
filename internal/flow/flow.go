// Package flow sequences the resume editing steps and hands document
// snapshots to the projection and the PDF exporter.
package flow

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/store"
)

// Steps lists the editing steps in order. The first six map to document
// sections; Preview is display-only and excluded from progress.
var Steps = []string{
	"Contact",
	"Summary",
	"Skills",
	"Experience",
	"Education",
	"Projects",
	"Preview",
}

// ErrInvalidStep indicates a navigation target outside the step range.
type ErrInvalidStep struct {
	Step int
}

func (e *ErrInvalidStep) Error() string {
	return fmt.Sprintf("invalid step %d: must be between 0 and %d", e.Step, len(Steps)-1)
}

// Controller tracks the active editing step for one resume session. It
// reads document snapshots but never mutates them; section edits go
// through the store directly.
type Controller struct {
	store  *store.Store
	active int
}

// NewController returns a controller positioned at the first step.
func NewController(st *store.Store) *Controller {
	return &Controller{store: st}
}

// Active returns the current step index.
func (c *Controller) Active() int {
	return c.active
}

// ActiveName returns the current step name.
func (c *Controller) ActiveName() string {
	return Steps[c.active]
}

// Next advances one step, stopping at the last. Returns the new index.
func (c *Controller) Next() int {
	if c.active < len(Steps)-1 {
		c.active++
	}
	return c.active
}

// Prev moves back one step, stopping at the first. Returns the new index.
func (c *Controller) Prev() int {
	if c.active > 0 {
		c.active--
	}
	return c.active
}

// GoTo jumps to a step by index.
func (c *Controller) GoTo(step int) error {
	if step < 0 || step >= len(Steps) {
		return &ErrInvalidStep{Step: step}
	}
	c.active = step
	return nil
}

// Preview projects the current document snapshot and renders it to HTML.
func (c *Controller) Preview() (string, error) {
	return rendering.RenderHTML(rendering.Project(c.store.Document()))
}

// ExportPDF renders the current snapshot and prints it to PDF. An export
// failure is returned to the caller; it never alters in-memory or
// persisted document state.
func (c *Controller) ExportPDF(ctx context.Context, opts *export.Options) ([]byte, error) {
	html, err := c.Preview()
	if err != nil {
		return nil, err
	}
	return export.PDF(ctx, html, opts)
}
