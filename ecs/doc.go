// Package ecs provides ECS adapters for glyphboard's editor events.
//
// The primary adapter is [NewDonburiSink], which bridges committed editor
// changes (items added and removed, selection changes, pan, drag and zoom
// commits, background changes) into a [Donburi] world as typed events.
// Subscribe to [EditorEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	editor.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
