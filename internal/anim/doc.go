// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package anim drives time-based mutation of UI-state properties for the
textshell editor.

# Scheduler (scheduler.go)

A single cooperative Scheduler owns a min-heap of deadlines and runs every
due callback on one goroutine:

	sched := anim.NewScheduler(anim.WithDefaultRedraw(requestRedraw))
	go sched.Run(ctx)

# Animations (animation.go, interp.go, blink.go, wave.go)

An Animation advances through MaxSteps discrete frames spread over Duration.
Concrete kinds decide what a frame writes:

	Fade, Slide, Scale - interpolate a property between two values
	Blink              - alternate a property between 1 and 0
	Wave               - write an arbitrary curve of progress

Animations never own their targets. A Target reports whether it has a named
property; writes to properties it lacks are dropped.

# Composites (pop.go)

PopIn and PopOut start a fade and a scale together and report completion
once per cycle.

# Manager (manager.go)

Manager is a keyed registry that guarantees one live timer chain per key:

	mgr := anim.NewManager()
	mgr.Add("toggle_"+id, anim.NewFade(sched, toggle, anim.PropHighlight, 0, 1))
	mgr.Start("toggle_" + id)
*/
package anim
