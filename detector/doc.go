// Package detector models per-interferometer strain data: PSD-coloured noise
// synthesis, signal injection, and the analysis frequency band.
//
// Each interferometer owns one frequency axis, established when strain data
// is first synthesized. That axis is the single source of truth for
// colouring, injection, and any downstream likelihood evaluation; injected
// signals must live on the identical axis.
//
// A multi-detector run is represented by an ordered [List]. Every detector
// in a list draws noise from its own independently seeded generator, so a
// run is reproducible from the base seed alone, independent of call order
// relative to other randomness consumers.
package detector
