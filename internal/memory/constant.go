package memory

import "time"

const (
	LogPrefixJournal = "internal.memory.journal"
)

const (
	DefaultMaxHistory     = 10
	DefaultLanguage       = "en"
	DefaultRecentExchange = 3
	journalTimeout        = 2 * time.Second
)
