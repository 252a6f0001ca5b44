// Package sysinfo implements the monitor's source interfaces on top of
// gopsutil: HostSource samples host-wide CPU, memory, disk and network
// counters, ProcessTable enumerates processes with per-process CPU usage, and
// Signaller terminates processes.
//
// Per-process CPU percentages are measured between two consecutive
// enumerations, so ProcessTable keeps process handles alive across calls and
// a process reports 0% on the first enumeration that sees it.
package sysinfo
