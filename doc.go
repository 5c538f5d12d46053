// Package openchannel is a pure-Go engineering library for steady,
// gradually-varied flow in open channels — from cross-section primitives
// to water-surface profiles, hydraulic structures and scour analysis.
//
// 🚀 What is openchannel?
//
//	A deterministic, zero-I/O computation engine that brings together:
//		• Section geometry: prismatic shapes & surveyed irregular cross-sections
//		• Core hydraulics: Manning flow, normal/critical depth, Froude, energy
//		• GVF engine: profile classification, direct-step & standard-step methods
//		• Structures: FHWA HDS-5 culverts, weirs, bridge backwater
//		• Hydraulic jumps: sequent depth, USBR/SAF stilling-basin sizing
//		• Channel design: best section, freeboard, lining selection
//		• Sediment: Shields, bed/suspended load, HEC-18 pier & contraction scour
//		• Stream analysis: multi-reach profiles, rating curves, floodplain width
//
// ✨ Why choose openchannel?
//
//   - Published standards – USBR, FHWA HDS-5, HEC-18, AASHTO formulations
//   - Rock-solid numerics – every iterative solver has a documented tolerance,
//     iteration cap and best-estimate-plus-warning fallback
//   - Pure Go – no cgo, no I/O, no hidden deps; every function maps immutable
//     inputs to a result record
//   - SI units throughout – meters, m³/s, Pa; angles in degrees at the API
//
// Everything is organized under leaf-first subpackages:
//
//	section/    — prismatic & irregular cross-section geometry
//	hydraulics/ — Manning relations, normal/critical depth solvers
//	gvf/        — gradually-varied-flow profile engine
//	culvert/    — HDS-5 inlet/outlet-control headwater analysis
//	weir/       — sharp- and broad-crested weir discharge
//	bridge/     — backwater by iterative energy balance
//	jump/       — hydraulic jump & stilling-basin design
//	design/     — channel sizing, freeboard, lining, transitions
//	sediment/   — incipient motion, transport, scour
//	stream/     — reach chaining, system profiles, rating curves
//
// Quick ASCII example:
//
//	 WSEL ──────╮ M1 backwater
//	            ╰─────╮
//	 yn ─ ─ ─ ─ ─ ─ ─ ╰──╮        ╭── weir
//	 yc · · · · · · · · · ╰───┬───┤
//	~~~~~~~~~~~~~~~~~~~~~~~~~~┴~~~┴~~~~~
//
// Dependency order is strictly
// section → hydraulics → {gvf, culvert, weir, bridge, jump, design, sediment} → stream.
package openchannel
