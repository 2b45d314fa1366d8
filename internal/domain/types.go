package domain

type (
	UserId   = int64
	BoardId  = int64
	ThreadId = int64
	PostId   = int64

	BoardName = string
	PostTitle = string
)
