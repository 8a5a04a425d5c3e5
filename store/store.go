package store

import (
	"time"
)

var (
	ContextTimeout = time.Duration(20) * time.Second
)

type Sort struct {
	Attribute string
	Ascending bool
}

func (s *Sort) Order() int {
	if s.Ascending {
		return 1
	}
	return -1
}
