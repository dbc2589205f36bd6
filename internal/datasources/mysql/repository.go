package mysql

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/huandu/go-sqlbuilder"
	"github.com/reelworks/reelfeed/internal/datasources"
	"github.com/reelworks/reelfeed/internal/domain"
)

var _ datasources.CatalogRepository = (*Repository)(nil)
var _ datasources.UserExistenceChecker = (*Repository)(nil)
var _ datasources.PreferenceRepository = (*Repository)(nil)
var _ datasources.RecommendationCache = (*Repository)(nil)
var _ datasources.APITokenRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// jsonStrings maps a JSON array column to a string slice.
type jsonStrings []string

func (s jsonStrings) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling string list: %w", err)
	}
	return string(b), nil
}

func (s *jsonStrings) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*s = jsonStrings{}
		return nil
	case []byte:
		if len(v) == 0 {
			*s = jsonStrings{}
			return nil
		}
		return json.Unmarshal(v, s)
	case string:
		if v == "" {
			*s = jsonStrings{}
			return nil
		}
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported string list column type %T", value)
	}
}

const contentColumns = "id, title, creator_id, content_type, role_tags, topic_tags, " +
	"view_count, published_at, featured, featured_priority"

func scanContent(row interface{ Scan(...any) error }) (domain.Content, error) {
	var (
		content   domain.Content
		roleTags  jsonStrings
		topicTags jsonStrings
	)
	err := row.Scan(
		&content.ID,
		&content.Title,
		&content.CreatorID,
		&content.ContentType,
		&roleTags,
		&topicTags,
		&content.ViewCount,
		&content.PublishedAt,
		&content.Featured,
		&content.FeaturedPriority,
	)
	if err != nil {
		return domain.Content{}, err
	}

	content.RoleTags = roleTags
	content.TopicTags = topicTags
	return content, nil
}

// ============================================
// Content Catalog Implementation
// ============================================

func (r *Repository) ListEligibleCandidates(
	ctx context.Context,
	filters domain.CandidateFilters,
) ([]domain.Content, error) {
	sb := sqlbuilder.Select(contentColumns)
	sb.From("contents")

	conds := []string{sb.Equal("status", "published")}

	if filters.PublishedAfter != (time.Time{}) {
		conds = append(conds, sb.GreaterThan("published_at", filters.PublishedAfter))
	}

	if filters.ExcludeCreatorID != "" {
		conds = append(conds, sb.NotEqual("creator_id", filters.ExcludeCreatorID))
	}

	if filters.ExcludeViewedByUserID != "" {
		conds = append(conds, "id NOT IN (SELECT content_id FROM interactions WHERE user_id = "+
			sb.Args.Add(filters.ExcludeViewedByUserID)+" AND interaction_type = "+
			sb.Args.Add(string(domain.InteractionTypeView))+")")
	}

	sb.Where(conds...)
	sb.OrderBy("published_at DESC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running candidates query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	candidates := []domain.Content{}
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning candidate: %w", err)
		}
		candidates = append(candidates, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating candidates: %w", err)
	}

	return candidates, nil
}

func (r *Repository) GetContent(ctx context.Context, contentID string) (domain.Content, error) {
	sb := sqlbuilder.Select(contentColumns)
	sb.From("contents")
	sb.Where(sb.Equal("id", contentID))

	query, args := sb.Build()
	content, err := scanContent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Content{}, fmt.Errorf("content %s: %w", contentID, domain.ErrContentNotFound)
	}
	if err != nil {
		return domain.Content{}, fmt.Errorf("fetching content: %w", err)
	}

	return content, nil
}

func (r *Repository) FetchContentsByIDs(ctx context.Context, contentIDs []string) ([]domain.Content, error) {
	if len(contentIDs) == 0 {
		return []domain.Content{}, nil
	}

	ids := make([]interface{}, 0, len(contentIDs))
	for _, id := range contentIDs {
		ids = append(ids, id)
	}

	sb := sqlbuilder.Select(contentColumns)
	sb.From("contents")
	sb.Where(sb.In("id", ids...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running contents by id query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	contentMap := make(map[string]domain.Content, len(contentIDs))
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning content: %w", err)
		}
		contentMap[content.ID] = content
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contents: %w", err)
	}

	// Results come back in input order; ids that no longer resolve are dropped.
	contents := make([]domain.Content, 0, len(contentIDs))
	for _, id := range contentIDs {
		if content, exists := contentMap[id]; exists {
			contents = append(contents, content)
		}
	}

	return contents, nil
}

func (r *Repository) ListFeaturedContent(ctx context.Context, limit int) ([]domain.Content, error) {
	sb := sqlbuilder.Select(contentColumns)
	sb.From("contents")
	sb.Where(
		sb.Equal("status", "published"),
		sb.Equal("featured", true),
	)
	sb.OrderBy("featured_priority DESC", "published_at DESC")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running featured content query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	featured := []domain.Content{}
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning featured content: %w", err)
		}
		featured = append(featured, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating featured content: %w", err)
	}

	return featured, nil
}

// ============================================
// Identity Implementation
// ============================================

func (r *Repository) UserExists(ctx context.Context, userID string) (bool, error) {
	sb := sqlbuilder.Select("1")
	sb.From("users")
	sb.Where(sb.Equal("id", userID))
	sb.Limit(1)

	query, args := sb.Build()
	var one int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking user existence: %w", err)
	}

	return true, nil
}

// ============================================
// Preference Store Implementation
// ============================================

const preferenceSelectForUpdate = `SELECT role_tag_weights, topic_tag_weights, content_type_weights, creator_weights,
total_watch_count, total_watch_duration, total_like_count, total_favorite_count, total_comment_count, total_share_count,
created_at
FROM user_preferences WHERE user_id = ? FOR UPDATE`

const preferenceInsertIgnore = `INSERT IGNORE INTO user_preferences (user_id, role_tag_weights, topic_tag_weights,
content_type_weights, creator_weights, created_at, updated_at) VALUES (?, '{}', '{}', '{}', '{}', ?, ?)`

const preferenceUpdate = `UPDATE user_preferences SET role_tag_weights = ?, topic_tag_weights = ?,
content_type_weights = ?, creator_weights = ?, total_watch_count = ?, total_watch_duration = ?,
total_like_count = ?, total_favorite_count = ?, total_comment_count = ?, total_share_count = ?, updated_at = ?
WHERE user_id = ?`

const interactionInsert = `INSERT INTO interactions (user_id, content_id, interaction_type, watch_seconds,
occurred_at, created_at) VALUES (?, ?, ?, ?, ?, ?)`

func (r *Repository) GetUserPreference(ctx context.Context, userID string) (domain.UserPreference, error) {
	sb := sqlbuilder.Select("user_id", "role_tag_weights", "topic_tag_weights", "content_type_weights",
		"creator_weights", "total_watch_count", "total_watch_duration", "total_like_count",
		"total_favorite_count", "total_comment_count", "total_share_count", "created_at", "updated_at")
	sb.From("user_preferences")
	sb.Where(sb.Equal("user_id", userID))

	query, args := sb.Build()
	var pref domain.UserPreference
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&pref.UserID,
		&pref.RoleTagWeights,
		&pref.TopicTagWeights,
		&pref.ContentTypeWeights,
		&pref.CreatorWeights,
		&pref.TotalWatchCount,
		&pref.TotalWatchDuration,
		&pref.TotalLikeCount,
		&pref.TotalFavoriteCount,
		&pref.TotalCommentCount,
		&pref.TotalShareCount,
		&pref.CreatedAt,
		&pref.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		// Lazy init: a user without interactions reads as the zero-state record.
		return domain.NewUserPreference(userID), nil
	}
	if err != nil {
		return domain.UserPreference{}, fmt.Errorf("fetching user preference: %w", err)
	}

	return pref, nil
}

// ApplyInteraction folds one interaction into the user's preference row and appends
// the interaction record, in a single transaction. The row is locked for the whole
// read-modify-write, so concurrent interactions for one user serialize instead of
// losing updates.
func (r *Repository) ApplyInteraction(
	ctx context.Context,
	interaction domain.Interaction,
	delta domain.PreferenceDelta,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()

	// Guarantees a lockable row exists before SELECT ... FOR UPDATE, covering two
	// concurrent first interactions for the same user.
	if _, err := tx.ExecContext(ctx, preferenceInsertIgnore, interaction.UserID, now, now); err != nil {
		return fmt.Errorf("initializing preference row: %w", err)
	}

	pref := domain.NewUserPreference(interaction.UserID)
	err = tx.QueryRowContext(ctx, preferenceSelectForUpdate, interaction.UserID).Scan(
		&pref.RoleTagWeights,
		&pref.TopicTagWeights,
		&pref.ContentTypeWeights,
		&pref.CreatorWeights,
		&pref.TotalWatchCount,
		&pref.TotalWatchDuration,
		&pref.TotalLikeCount,
		&pref.TotalFavoriteCount,
		&pref.TotalCommentCount,
		&pref.TotalShareCount,
		&pref.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("locking preference row: %w", err)
	}

	pref.Apply(delta)

	if _, err := tx.ExecContext(ctx, preferenceUpdate,
		pref.RoleTagWeights,
		pref.TopicTagWeights,
		pref.ContentTypeWeights,
		pref.CreatorWeights,
		pref.TotalWatchCount,
		pref.TotalWatchDuration,
		pref.TotalLikeCount,
		pref.TotalFavoriteCount,
		pref.TotalCommentCount,
		pref.TotalShareCount,
		now,
		interaction.UserID,
	); err != nil {
		return fmt.Errorf("updating preference row: %w", err)
	}

	if _, err := tx.ExecContext(ctx, interactionInsert,
		interaction.UserID,
		interaction.ContentID,
		string(interaction.Type),
		interaction.WatchSeconds,
		interaction.OccurredAt,
		now,
	); err != nil {
		return fmt.Errorf("appending interaction record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// ============================================
// Recommendation Cache Implementation
// ============================================

const cacheEntrySelect = `SELECT content_ids FROM recommendation_caches
WHERE user_id = ? AND page = ? AND page_size = ? AND expires_at > ?`

const cacheVersionInsertIgnore = `INSERT IGNORE INTO recommendation_cache_versions (user_id, version) VALUES (?, 0)`

const cacheVersionSelectForUpdate = `SELECT version FROM recommendation_cache_versions WHERE user_id = ? FOR UPDATE`

const cacheVersionSelect = `SELECT version FROM recommendation_cache_versions WHERE user_id = ?`

const cacheVersionBump = `INSERT INTO recommendation_cache_versions (user_id, version) VALUES (?, 1)
ON DUPLICATE KEY UPDATE version = version + 1`

const cacheEntryUpsert = `INSERT INTO recommendation_caches (user_id, page, page_size, content_ids, version, expires_at, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE content_ids = VALUES(content_ids), version = VALUES(version), expires_at = VALUES(expires_at)`

const cacheEntriesDeleteByUser = `DELETE FROM recommendation_caches WHERE user_id = ?`

const cacheEntriesDeleteExpired = `DELETE FROM recommendation_caches WHERE expires_at <= ?`

func (r *Repository) GetCachedRecommendations(
	ctx context.Context,
	userID string,
	page, pageSize int,
) ([]string, bool, error) {
	var contentIDs jsonStrings
	err := r.db.QueryRowContext(ctx, cacheEntrySelect, userID, page, pageSize, time.Now()).Scan(&contentIDs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("fetching cached recommendations: %w", err)
	}

	return contentIDs, true, nil
}

func (r *Repository) PutCachedRecommendations(
	ctx context.Context,
	userID string,
	page, pageSize int,
	contentIDs []string,
	ttl time.Duration,
	version int64,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, cacheVersionInsertIgnore, userID); err != nil {
		return fmt.Errorf("initializing cache version row: %w", err)
	}

	var current int64
	if err := tx.QueryRowContext(ctx, cacheVersionSelectForUpdate, userID).Scan(&current); err != nil {
		return fmt.Errorf("locking cache version row: %w", err)
	}

	// An invalidation landed after this ranking was computed; the write is stale.
	if version < current {
		return nil
	}

	now := time.Now()
	if _, err := tx.ExecContext(ctx, cacheEntryUpsert,
		userID, page, pageSize, jsonStrings(contentIDs), version, now.Add(ttl), now,
	); err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (r *Repository) GetCacheVersion(ctx context.Context, userID string) (int64, error) {
	var version int64
	err := r.db.QueryRowContext(ctx, cacheVersionSelect, userID).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("fetching cache version: %w", err)
	}

	return version, nil
}

func (r *Repository) InvalidateUserCache(ctx context.Context, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, cacheVersionBump, userID); err != nil {
		return fmt.Errorf("bumping cache version: %w", err)
	}

	if _, err := tx.ExecContext(ctx, cacheEntriesDeleteByUser, userID); err != nil {
		return fmt.Errorf("deleting user cache entries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (r *Repository) DeleteExpiredCacheEntries(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, cacheEntriesDeleteExpired, now)
	if err != nil {
		return 0, fmt.Errorf("deleting expired cache entries: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted cache entries: %w", err)
	}

	return deleted, nil
}

// ============================================
// API Token Store Implementation
// ============================================

const apiTokenColumns = "id, user_id, token_hash, prefix, name, created_at, expires_at, last_used_at, revoked_at"

const apiTokenInsert = `INSERT INTO api_tokens (id, user_id, token_hash, prefix, name, created_at, expires_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

const apiTokenSelectByHash = `SELECT ` + apiTokenColumns + ` FROM api_tokens WHERE token_hash = ?`

const apiTokenUpdateLastUsed = `UPDATE api_tokens SET last_used_at = ? WHERE id = ?`

const apiTokenSelectByUser = `SELECT ` + apiTokenColumns + ` FROM api_tokens
WHERE user_id = ? AND revoked_at IS NULL ORDER BY created_at DESC`

const apiTokenCountActive = `SELECT COUNT(*) FROM api_tokens
WHERE user_id = ? AND revoked_at IS NULL AND (expires_at IS NULL OR expires_at > ?)`

const apiTokenRevoke = `UPDATE api_tokens SET revoked_at = ? WHERE id = ? AND user_id = ? AND revoked_at IS NULL`

func (r *Repository) CreateAPIToken(
	ctx context.Context,
	id, userID, tokenHash, tokenPrefix string,
	name *string,
	expiresAt *time.Time,
) error {
	if _, err := r.db.ExecContext(ctx, apiTokenInsert,
		id, userID, tokenHash, tokenPrefix, name, time.Now(), expiresAt,
	); err != nil {
		return fmt.Errorf("inserting api token: %w", err)
	}
	return nil
}

func scanAPIToken(row interface{ Scan(...any) error }) (domain.APIToken, error) {
	var (
		token      domain.APIToken
		name       sql.NullString
		expiresAt  sql.NullTime
		lastUsedAt sql.NullTime
		revokedAt  sql.NullTime
	)
	err := row.Scan(
		&token.ID,
		&token.UserID,
		&token.TokenHash,
		&token.Prefix,
		&name,
		&token.CreatedAt,
		&expiresAt,
		&lastUsedAt,
		&revokedAt,
	)
	if err != nil {
		return domain.APIToken{}, err
	}

	if name.Valid {
		token.Name = &name.String
	}
	if expiresAt.Valid {
		token.ExpiresAt = &expiresAt.Time
	}
	if lastUsedAt.Valid {
		token.LastUsedAt = &lastUsedAt.Time
	}
	if revokedAt.Valid {
		token.RevokedAt = &revokedAt.Time
	}

	return token, nil
}

func (r *Repository) GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error) {
	token, err := scanAPIToken(r.db.QueryRowContext(ctx, apiTokenSelectByHash, tokenHash))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.APIToken{}, fmt.Errorf("api token not found")
	}
	if err != nil {
		return domain.APIToken{}, fmt.Errorf("fetching api token: %w", err)
	}

	return token, nil
}

func (r *Repository) UpdateAPITokenLastUsed(ctx context.Context, tokenID string) error {
	if _, err := r.db.ExecContext(ctx, apiTokenUpdateLastUsed, time.Now(), tokenID); err != nil {
		return fmt.Errorf("updating api token last used: %w", err)
	}
	return nil
}

func (r *Repository) ListUserAPITokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	rows, err := r.db.QueryContext(ctx, apiTokenSelectByUser, userID)
	if err != nil {
		return nil, fmt.Errorf("listing api tokens: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tokens := []domain.APIToken{}
	for rows.Next() {
		token, err := scanAPIToken(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning api token: %w", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating api tokens: %w", err)
	}

	return tokens, nil
}

func (r *Repository) CountUserActiveAPITokens(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, apiTokenCountActive, userID, time.Now()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting active api tokens: %w", err)
	}
	return count, nil
}

func (r *Repository) RevokeAPIToken(ctx context.Context, tokenID, userID string) error {
	result, err := r.db.ExecContext(ctx, apiTokenRevoke, time.Now(), tokenID, userID)
	if err != nil {
		return fmt.Errorf("revoking api token: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking revoked rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("api token not found or already revoked")
	}

	return nil
}
