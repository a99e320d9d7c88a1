package news

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository stores crawled articles keyed by crawl date
// ⭐ SSOT: 뉴스 저장소는 여기서만
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new article repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Bootstrap creates the articles table if it does not exist
func (r *Repository) Bootstrap(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS news_articles (
			crawl_date   DATE NOT NULL,
			hash         TEXT NOT NULL,
			title        TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			link         TEXT NOT NULL,
			query        TEXT NOT NULL DEFAULT '',
			published_at TIMESTAMPTZ NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (crawl_date, hash)
		)
	`
	_, err := r.pool.Exec(ctx, query)
	return err
}

// SaveNew appends articles under the given crawl date, skipping duplicates.
// 하루치 데이터는 추가만 되고 덮어쓰지 않는다
func (r *Repository) SaveNew(ctx context.Context, day time.Time, articles []Article) (int, error) {
	query := `
		INSERT INTO news_articles (crawl_date, hash, title, description, link, query, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (crawl_date, hash) DO NOTHING
	`

	saved := 0
	for _, a := range articles {
		tag, err := r.pool.Exec(ctx, query,
			day, a.Hash, a.Title, a.Description, a.Link, a.Query, a.PublishedAt,
		)
		if err != nil {
			return saved, err
		}
		saved += int(tag.RowsAffected())
	}
	return saved, nil
}

// GetByDate retrieves all articles crawled on a given date, newest first
func (r *Repository) GetByDate(ctx context.Context, day time.Time) ([]Article, error) {
	query := `
		SELECT title, description, link, query, published_at, hash
		FROM news_articles
		WHERE crawl_date = $1
		ORDER BY published_at DESC
	`

	rows, err := r.pool.Query(ctx, query, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var a Article
		if err := rows.Scan(&a.Title, &a.Description, &a.Link, &a.Query, &a.PublishedAt, &a.Hash); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// LatestDate returns the most recent crawl date with stored articles.
// 데이터가 전혀 없으면 zero time과 false
func (r *Repository) LatestDate(ctx context.Context) (time.Time, bool, error) {
	query := `SELECT max(crawl_date) FROM news_articles`

	var latest *time.Time
	if err := r.pool.QueryRow(ctx, query).Scan(&latest); err != nil {
		return time.Time{}, false, err
	}
	if latest == nil {
		return time.Time{}, false, nil
	}
	return *latest, true, nil
}

// CountByDate returns the number of articles stored for a date
func (r *Repository) CountByDate(ctx context.Context, day time.Time) (int, error) {
	query := `SELECT count(*) FROM news_articles WHERE crawl_date = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, day).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
