package api

import "time"

// Request DTOs

type CreateBoardRequest struct {
	Name         string `json:"name" validate:"required"`
	Introduction string `json:"introduction,omitempty"`
}

// UpdateBoardRequest is a partial edit: absent fields stay untouched.
type UpdateBoardRequest struct {
	Name         *string `json:"name,omitempty"`
	Introduction *string `json:"introduction,omitempty"`
}

type CreateThreadRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content,omitempty"`
}

// CreateReplyRequest leaves Title optional; an absent title is derived
// from the thread's head post.
type CreateReplyRequest struct {
	Title   *string `json:"title,omitempty"`
	Content string  `json:"content,omitempty"`
}

type UpdateNicknameRequest struct {
	Nickname string `json:"nickname"`
}

// Response DTOs

type CreatedResponse struct {
	Id int64 `json:"id"`
}

type BoardResponse struct {
	Id           int64  `json:"id"`
	Name         string `json:"name"`
	Introduction string `json:"introduction"`
}

type BoardListResponse struct {
	Boards []BoardResponse `json:"boards"`
}

// AuthorResponse exposes only the public face of an identity: never the
// session token, never the internal id.
type AuthorResponse struct {
	ShowId   string `json:"show_id"`
	Nickname string `json:"nickname,omitempty"`
}

type ThreadSummaryResponse struct {
	ThreadId  int64          `json:"thread_id"`
	Title     string         `json:"title"`
	CreatedAt time.Time      `json:"created_at"`
	Author    AuthorResponse `json:"author"`
}

type BoardPageResponse struct {
	Board   BoardResponse           `json:"board"`
	Threads []ThreadSummaryResponse `json:"threads"`
}

type PostResponse struct {
	Id          int64          `json:"id"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	ContentHtml string         `json:"content_html"`
	CreatedAt   time.Time      `json:"created_at"`
	Author      AuthorResponse `json:"author"`
}

type ThreadPageResponse struct {
	ThreadId int64          `json:"thread_id"`
	Board    BoardResponse  `json:"board"` // breadcrumb
	Posts    []PostResponse `json:"posts"`
}

type UserPostRecordResponse struct {
	BoardId   int64     `json:"board_id"`
	BoardName string    `json:"board_name"`
	ThreadId  int64     `json:"thread_id"`
	PostId    int64     `json:"post_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileResponse struct {
	Identity AuthorResponse           `json:"identity"`
	History  []UserPostRecordResponse `json:"history"`
}
