package genetui

// TeaMsgWriteLog is an alias for [teaMsgWriteLog] exported for testing.
type TeaMsgWriteLog = teaMsgWriteLog
