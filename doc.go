/*
Package smlogic provides the tools to design Scrap Mechanic logic circuits
in Go and export them as blueprints.

Circuits are built by composing schemes: self-contained fragments with
named input and output slots addressed over three-dimensional bounds. A
Combiner embeds named schemes, wires their slots together with pluggable
connection strategies and flattens everything into one placed scheme,
which serializes to the game's blueprint JSON.

The stock parts (logic gates, timers, blocks) live in the vanilla
subpackage, ready-made circuits in presets, and the wire format plus
blueprint folder management in blueprint.

*/
package smlogic
