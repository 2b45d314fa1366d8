package domain

import "time"

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Author  UserId
	Board   BoardId
	Title   PostTitle
	Content string
}

type ReplyCreationData struct {
	Author  UserId
	Thread  ThreadId
	Title   *PostTitle // nil derives "Re: <head post title>"
	Content string
}

// ThreadSummary is one row of a board listing: the thread plus its head
// post and the head post's author. Listings order by CreatedAt descending,
// so a board shows recently *started* threads first; replies do not bump.
type ThreadSummary struct {
	ThreadId       ThreadId
	HeadPostId     PostId
	Title          PostTitle
	CreatedAt      time.Time
	AuthorId       UserId
	AuthorShowId   string
	AuthorNickname string
}

// PostView is one row of a thread page, in chronological order. Author
// fields are zero-valued when the authoring identity has been deleted.
type PostView struct {
	Id             PostId
	AuthorId       UserId
	AuthorShowId   string
	AuthorNickname string
	Title          PostTitle
	Content        string
	CreatedAt      time.Time
}

// UserPostRecord is one row of a profile's posting history: a post joined
// through its thread to the owning board.
type UserPostRecord struct {
	BoardId   BoardId
	BoardName BoardName
	ThreadId  ThreadId
	PostId    PostId
	Title     PostTitle
	CreatedAt time.Time
}
