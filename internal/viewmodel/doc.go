// Package viewmodel derives the teacher dashboard view-model from raw records.
//
// Everything here is pure: no I/O, no clock, no shared mutable state. Callers load
// inputs first and call Assembler.Assemble once per render.
package viewmodel
