package constants

// HistorySize is the number of recorded ticks available to a rewind
const HistorySize = 240
