// Package profile provides optional runtime profiling for msgfmt.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. Without the tag, [Modes] is empty and [Profiler.Start] returns a
// no-op.
//
// # Available Profiling Modes
//
// The following profiling modes are supported when built with the pprof tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// # Usage
//
//	ctrl := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}.Start()
//	defer ctrl.Stop()
//
// The msgfmt command exposes the same settings when built with the tag:
//
//	go build -tags pprof -o msgfmt .
//	msgfmt --pprof-mode=cpu catalog render ./locales cart.items -I count=3
//
// Profiles default to $XDG_CACHE_HOME/msgfmt/pprof and are analyzed with
// go tool pprof:
//
//	go tool pprof -http=: ~/.cache/msgfmt/pprof/cpu.pprof
//
// Building with the tag also registers the [net/http/pprof] handlers on
// [net/http.DefaultServeMux].
package profile
