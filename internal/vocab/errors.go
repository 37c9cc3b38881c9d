package vocab

import "errors"

var (
	ErrEmptyPath      = errors.New("vocab: empty path")
	ErrInvalidTables  = errors.New("vocab: invalid tables")
	ErrNilTables      = errors.New("vocab: nil tables")
	ErrWatcherStarted = errors.New("vocab: watcher already running")
)
