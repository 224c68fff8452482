package db

import (
	"context"
	"fmt"

	"github.com/mina-p1/Open-Bet/pkg/models"
)

// GetDiscussions returns a daily thread's posts, newest first
func (p *Postgres) GetDiscussions(ctx context.Context, threadDate string) ([]models.DiscussionPost, error) {
	query := `
		SELECT id, thread_date, uid, name, text, created_at
		FROM discussion_posts
		WHERE thread_date = $1
		ORDER BY created_at DESC
	`

	rows, err := p.db.QueryContext(ctx, query, threadDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query discussions: %w", err)
	}
	defer rows.Close()

	posts := []models.DiscussionPost{}
	for rows.Next() {
		var post models.DiscussionPost
		if err := rows.Scan(&post.ID, &post.ThreadDate, &post.UID, &post.Name, &post.Text, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan discussion post: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// CreateDiscussion inserts a post into its daily thread
func (p *Postgres) CreateDiscussion(ctx context.Context, post models.DiscussionPost) (*models.DiscussionPost, error) {
	query := `
		INSERT INTO discussion_posts (id, thread_date, uid, name, text, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, thread_date, uid, name, text, created_at
	`

	var created models.DiscussionPost
	err := p.db.QueryRowContext(ctx, query, post.ID, post.ThreadDate, post.UID, post.Name, post.Text).Scan(
		&created.ID, &created.ThreadDate, &created.UID, &created.Name, &created.Text, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create discussion post: %w", err)
	}

	return &created, nil
}
