package view

import (
	"context"
)

// BaseView provides a no-op implementation of the View interface that other
// views can embed to avoid implementing hooks they do not care about.
type BaseView struct{}

// BeforeEnter implements the View interface.
func (BaseView) BeforeEnter(ctx context.Context, push bool, args Args) error { return nil }

// Enter implements the View interface.
func (BaseView) Enter(ctx context.Context, push bool, args Args) error { return nil }

// AfterEnter implements the View interface.
func (BaseView) AfterEnter(ctx context.Context, push bool, args Args) error { return nil }

// BeforeExit implements the View interface.
func (BaseView) BeforeExit(ctx context.Context, push bool, args Args) error { return nil }

// Exit implements the View interface.
func (BaseView) Exit(ctx context.Context, push bool, args Args) error { return nil }

// AfterExit implements the View interface.
func (BaseView) AfterExit(ctx context.Context, push bool, args Args) error { return nil }
