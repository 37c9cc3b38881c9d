package vocab

const (
	LogPrefixLoad  = "internal.vocab.Load"
	LogPrefixWatch = "internal.vocab.Store.Watch"
)
