package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anonbbs-dev/anonbbs/internal/domain"
	internal_errors "github.com/anonbbs-dev/anonbbs/internal/errors"
)

// sentinelHeadPost marks a thread row whose head post is not yet inserted.
// The value only exists inside the creation transaction; listings join on
// head_post and therefore never see a provisional thread.
const sentinelHeadPost = -1

// CreateThread inserts the thread row in a provisional state, inserts its
// opening post, then finalizes the head-post pointer. All three steps
// commit as one unit.
func (s *Storage) CreateThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var threadId domain.ThreadId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		// Verify board exists
		if _, err := s.getBoard(ctx, tx, creationData.Board); err != nil {
			return err
		}

		err := tx.QueryRowContext(ctx, `
            INSERT INTO threads (board_id, head_post)
            VALUES ($1, $2)
            RETURNING id
        `, creationData.Board, sentinelHeadPost).Scan(&threadId)
		if err != nil {
			return fmt.Errorf("failed to insert thread: %w", err)
		}

		var headPostId domain.PostId
		err = tx.QueryRowContext(ctx, `
            INSERT INTO posts (thread_id, user_id, title, content, created)
            VALUES ($1, $2, $3, $4, now())
            RETURNING id
        `, threadId, creationData.Author, creationData.Title, creationData.Content).Scan(&headPostId)
		if err != nil {
			return fmt.Errorf("failed to insert head post: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			"UPDATE threads SET head_post = $2 WHERE id = $1",
			threadId, headPostId,
		); err != nil {
			return fmt.Errorf("failed to finalize head post pointer: %w", err)
		}
		return nil
	})
	if err != nil {
		return -1, err
	}
	return threadId, nil
}

// AddReply appends a post to an existing thread. A nil title is derived
// from the thread's head post as "Re: <head post title>".
func (s *Storage) AddReply(ctx context.Context, creationData domain.ReplyCreationData) (domain.PostId, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var postId domain.PostId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		title := creationData.Title
		if title == nil {
			var headTitle string
			err := tx.QueryRowContext(ctx, `
                SELECT posts.title
                FROM threads
                JOIN posts ON threads.head_post = posts.id
                WHERE threads.id = $1
            `, creationData.Thread).Scan(&headTitle)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return internal_errors.NotFound("Thread has no resolvable head post")
				}
				return fmt.Errorf("failed to resolve head post title: %w", err)
			}
			derived := "Re: " + headTitle
			title = &derived
		}

		err := tx.QueryRowContext(ctx, `
            INSERT INTO posts (thread_id, user_id, title, content, created)
            VALUES ($1, $2, $3, $4, now())
            RETURNING id
        `, creationData.Thread, creationData.Author, *title, creationData.Content).Scan(&postId)
		if err != nil {
			if isForeignKeyViolation(err) {
				return internal_errors.NotFound("Thread not found")
			}
			return fmt.Errorf("failed to insert post: %w", err)
		}
		return nil
	})
	if err != nil {
		return -1, err
	}
	return postId, nil
}

// ListThreads returns one summary per thread on the board, ordered by head
// post timestamp descending: recently started first. Replies deliberately
// do not bump a thread.
func (s *Storage) ListThreads(ctx context.Context, boardId domain.BoardId) ([]domain.ThreadSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT
            threads.id, posts.id, posts.title, posts.created,
            COALESCE(users.id, 0), COALESCE(users.show_id, ''), COALESCE(users.nickname, '')
        FROM threads
        JOIN posts ON threads.head_post = posts.id
        LEFT JOIN users ON posts.user_id = users.id
        WHERE threads.board_id = $1
        ORDER BY posts.created DESC
    `, boardId)
	if err != nil {
		return nil, fmt.Errorf("failed to query threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.ThreadSummary
	for rows.Next() {
		var t domain.ThreadSummary
		if err := rows.Scan(
			&t.ThreadId, &t.HeadPostId, &t.Title, &t.CreatedAt,
			&t.AuthorId, &t.AuthorShowId, &t.AuthorNickname,
		); err != nil {
			return nil, fmt.Errorf("failed to scan thread summary: %w", err)
		}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, nil
}

// ListPosts returns the posts of a thread in chronological reading order.
// An unknown thread yields an empty slice, not an error; callers that need
// a 404 resolve the thread through GetThreadBoard first.
func (s *Storage) ListPosts(ctx context.Context, threadId domain.ThreadId) ([]domain.PostView, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT
            posts.id,
            COALESCE(users.id, 0), COALESCE(users.show_id, ''), COALESCE(users.nickname, ''),
            posts.title, posts.content, posts.created
        FROM posts
        LEFT JOIN users ON posts.user_id = users.id
        WHERE posts.thread_id = $1
        ORDER BY posts.created ASC, posts.id ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.PostView
	for rows.Next() {
		var p domain.PostView
		if err := rows.Scan(
			&p.Id, &p.AuthorId, &p.AuthorShowId, &p.AuthorNickname,
			&p.Title, &p.Content, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return posts, nil
}

// GetThreadBoard resolves the board a thread belongs to, for breadcrumb
// and existence checks.
func (s *Storage) GetThreadBoard(ctx context.Context, threadId domain.ThreadId) (domain.Board, error) {
	var board domain.Board
	err := s.db.QueryRowContext(ctx, `
        SELECT boards.id, boards.name, boards.introduction
        FROM threads
        JOIN boards ON threads.board_id = boards.id
        WHERE threads.id = $1
    `, threadId).Scan(&board.Id, &board.Name, &board.Introduction)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Board{}, internal_errors.NotFound("Thread not found")
		}
		return domain.Board{}, fmt.Errorf("failed to resolve thread board: %w", err)
	}
	return board, nil
}

// ListUserThreads returns every post authored by the user joined through
// its thread to the owning board, newest first.
func (s *Storage) ListUserThreads(ctx context.Context, userId domain.UserId) ([]domain.UserPostRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT boards.id, boards.name, threads.id, posts.id, posts.title, posts.created
        FROM posts
        JOIN threads ON posts.thread_id = threads.id
        JOIN boards ON threads.board_id = boards.id
        WHERE posts.user_id = $1
        ORDER BY posts.created DESC
    `, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to query user posts: %w", err)
	}
	defer rows.Close()

	var records []domain.UserPostRecord
	for rows.Next() {
		var rec domain.UserPostRecord
		if err := rows.Scan(&rec.BoardId, &rec.BoardName, &rec.ThreadId, &rec.PostId, &rec.Title, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user post record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return records, nil
}
