// Package postgresql is the Chain layer of the Context View (SPEC_FULL.md
// §4.4): a Postgres-backed implementation of context.Source reading the
// committed social transactions. Grounded on the teacher's
// internal/blocktx/store/postgresql.PostgreSQL (sql.Open against the "pgx"
// driver, WithTracer functional option, Ping/Close) generalized from
// per-query files into per-entity query methods on one connection pool.
package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"runtime"

	"github.com/jmoiron/sqlx"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"go.opentelemetry.io/otel/attribute"

	antibotcontext "github.com/socialchain/antibot/internal/antibot/context"
	"github.com/socialchain/antibot/internal/social"
	"github.com/socialchain/antibot/internal/tracing"
)

const postgresDriverName = "pgx"

var (
	ErrFailedToOpenDB           = errors.New("socialdb: failed to open database")
	ErrUnableToGetSQLConnection = errors.New("socialdb: unable to get sql connection")
)

// Store is the Postgres-backed Chain layer. It satisfies context.Source.
type Store struct {
	db                *sqlx.DB
	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithTracer(attr ...attribute.KeyValue) func(*Store) {
	return func(s *Store) {
		s.tracingEnabled = true
		if len(attr) > 0 {
			s.tracingAttributes = append(s.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			s.tracingAttributes = append(s.tracingAttributes, attribute.String("file", file))
		}
	}
}

func New(dbInfo string, idleConns, maxOpenConns int, opts ...func(*Store)) (*Store, error) {
	db, err := sql.Open(postgresDriverName, dbInfo)
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenDB, err)
	}
	db.SetMaxIdleConns(idleConns)
	db.SetMaxOpenConns(maxOpenConns)

	if _, err := db.Conn(context.Background()); err != nil {
		return nil, errors.Join(ErrUnableToGetSQLConnection, err)
	}

	s := &Store{db: sqlx.NewDb(db, postgresDriverName)}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) span(ctx context.Context, name string) (context.Context, func(error)) {
	spanCtx, span := tracing.StartTracing(ctx, name, s.tracingEnabled, s.tracingAttributes...)
	return spanCtx, func(err error) { tracing.EndTracing(span, err) }
}

func (s *Store) CountPosts(ctx context.Context, author string, since, until int64) (int, error) {
	ctx, end := s.span(ctx, "SocialDB_CountPosts")
	var n int
	err := s.db.GetContext(ctx, &n,
		`SELECT count(*) FROM posts WHERE author = $1 AND original_tx_id = tx_id AND time > $2 AND time <= $3`,
		author, since, until)
	end(err)
	return n, err
}

func (s *Store) CountPostEdits(ctx context.Context, originalTxID string, since, until int64) (int, error) {
	ctx, end := s.span(ctx, "SocialDB_CountPostEdits")
	var n int
	err := s.db.GetContext(ctx, &n,
		`SELECT count(*) FROM posts WHERE original_tx_id = $1 AND tx_id != original_tx_id AND time > $2 AND time <= $3`,
		originalTxID, since, until)
	end(err)
	return n, err
}

func (s *Store) CountScores(ctx context.Context, author string, since, until int64) (int, error) {
	ctx, end := s.span(ctx, "SocialDB_CountScores")
	var n int
	err := s.db.GetContext(ctx, &n,
		`SELECT count(*) FROM scores WHERE author = $1 AND time > $2 AND time <= $3`, author, since, until)
	end(err)
	return n, err
}

func (s *Store) CountComplaints(ctx context.Context, author string, since, until int64) (int, error) {
	ctx, end := s.span(ctx, "SocialDB_CountComplaints")
	var n int
	err := s.db.GetContext(ctx, &n,
		`SELECT count(*) FROM complaints WHERE author = $1 AND time > $2 AND time <= $3`, author, since, until)
	end(err)
	return n, err
}

func (s *Store) CountComments(ctx context.Context, author string, since, until int64) (int, error) {
	ctx, end := s.span(ctx, "SocialDB_CountComments")
	var n int
	err := s.db.GetContext(ctx, &n,
		`SELECT count(*) FROM comments WHERE author = $1 AND original_tx_id = tx_id AND time > $2 AND time <= $3`,
		author, since, until)
	end(err)
	return n, err
}

func (s *Store) CountCommentEdits(ctx context.Context, originalTxID string, since, until int64) (int, error) {
	ctx, end := s.span(ctx, "SocialDB_CountCommentEdits")
	var n int
	err := s.db.GetContext(ctx, &n,
		`SELECT count(*) FROM comments WHERE original_tx_id = $1 AND tx_id != original_tx_id AND time > $2 AND time <= $3`,
		originalTxID, since, until)
	end(err)
	return n, err
}

func (s *Store) CountCommentScores(ctx context.Context, author string, since, until int64) (int, error) {
	ctx, end := s.span(ctx, "SocialDB_CountCommentScores")
	var n int
	err := s.db.GetContext(ctx, &n,
		`SELECT count(*) FROM comment_scores WHERE author = $1 AND time > $2 AND time <= $3`, author, since, until)
	end(err)
	return n, err
}

func (s *Store) CountProfileChanges(ctx context.Context, author string, since, until int64) (int, error) {
	ctx, end := s.span(ctx, "SocialDB_CountProfileChanges")
	var n int
	err := s.db.GetContext(ctx, &n,
		`SELECT count(*) FROM profile_changes WHERE address = $1 AND time > $2 AND time <= $3`, author, since, until)
	end(err)
	return n, err
}

func (s *Store) GetPost(ctx context.Context, txID string) (*social.Post, bool, error) {
	ctx, end := s.span(ctx, "SocialDB_GetPost")
	var p social.Post
	err := s.db.GetContext(ctx, &p, `SELECT * FROM posts WHERE tx_id = $1`, txID)
	end(nilOnNoRows(err))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &p, true, nil
}

func (s *Store) GetPostChainHead(ctx context.Context, originalTxID string) (*social.Post, bool, error) {
	ctx, end := s.span(ctx, "SocialDB_GetPostChainHead")
	var p social.Post
	err := s.db.GetContext(ctx, &p,
		`SELECT * FROM posts WHERE original_tx_id = $1 ORDER BY time DESC LIMIT 1`, originalTxID)
	end(nilOnNoRows(err))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &p, true, nil
}

func (s *Store) GetComment(ctx context.Context, txID string) (*social.Comment, bool, error) {
	ctx, end := s.span(ctx, "SocialDB_GetComment")
	var c social.Comment
	err := s.db.GetContext(ctx, &c, `SELECT * FROM comments WHERE tx_id = $1`, txID)
	end(nilOnNoRows(err))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &c, true, nil
}

func (s *Store) GetCommentChainHead(ctx context.Context, originalTxID string) (*social.Comment, bool, error) {
	ctx, end := s.span(ctx, "SocialDB_GetCommentChainHead")
	var c social.Comment
	err := s.db.GetContext(ctx, &c,
		`SELECT * FROM comments WHERE original_tx_id = $1 AND last = true LIMIT 1`, originalTxID)
	end(nilOnNoRows(err))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &c, true, nil
}

func (s *Store) ScoreExists(ctx context.Context, author, targetTxID string) (bool, error) {
	ctx, end := s.span(ctx, "SocialDB_ScoreExists")
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM scores WHERE author = $1 AND target_tx_id = $2)`, author, targetTxID)
	end(err)
	return exists, err
}

func (s *Store) ComplaintExists(ctx context.Context, author, targetPostTxID string) (bool, error) {
	ctx, end := s.span(ctx, "SocialDB_ComplaintExists")
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM complaints WHERE author = $1 AND target_post_tx_id = $2)`, author, targetPostTxID)
	end(err)
	return exists, err
}

func (s *Store) CommentScoreExists(ctx context.Context, author, targetTxID string) (bool, error) {
	ctx, end := s.span(ctx, "SocialDB_CommentScoreExists")
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM comment_scores WHERE author = $1 AND target_tx_id = $2)`, author, targetTxID)
	end(err)
	return exists, err
}

func (s *Store) LatestSubscription(ctx context.Context, author, target string) (*social.Subscription, bool, error) {
	ctx, end := s.span(ctx, "SocialDB_LatestSubscription")
	var sub social.Subscription
	err := s.db.GetContext(ctx, &sub,
		`SELECT * FROM subscriptions WHERE author = $1 AND target = $2 ORDER BY time DESC LIMIT 1`, author, target)
	end(nilOnNoRows(err))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &sub, true, nil
}

func (s *Store) LatestBlocking(ctx context.Context, author, target string) (*social.Blocking, bool, error) {
	ctx, end := s.span(ctx, "SocialDB_LatestBlocking")
	var b social.Blocking
	err := s.db.GetContext(ctx, &b,
		`SELECT * FROM blockings WHERE author = $1 AND target = $2 ORDER BY time DESC LIMIT 1`, author, target)
	end(nilOnNoRows(err))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &b, true, nil
}

func (s *Store) EarliestProfileChange(ctx context.Context, address string) (*social.ProfileChange, bool, error) {
	ctx, end := s.span(ctx, "SocialDB_EarliestProfileChange")
	var pc social.ProfileChange
	err := s.db.GetContext(ctx, &pc,
		`SELECT * FROM profile_changes WHERE address = $1 ORDER BY time ASC LIMIT 1`, address)
	end(nilOnNoRows(err))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &pc, true, nil
}

func (s *Store) NicknameTaken(ctx context.Context, name, excludeAddress string) (bool, error) {
	ctx, end := s.span(ctx, "SocialDB_NicknameTaken")
	var exists bool
	err := s.db.GetContext(ctx, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM (
				SELECT DISTINCT ON (address) address, name FROM profile_changes
				WHERE address != $2 ORDER BY address, time DESC
			) latest WHERE latest.name = $1
		)`, name, excludeAddress)
	end(err)
	return exists, err
}

func (s *Store) ScoresReceivedBy(ctx context.Context, address string, uptoHeight int32) ([]social.Score, error) {
	ctx, end := s.span(ctx, "SocialDB_ScoresReceivedBy")
	var scores []social.Score
	err := s.db.SelectContext(ctx, &scores, `
		SELECT sc.* FROM scores sc JOIN posts p ON p.tx_id = sc.target_tx_id
		WHERE p.author = $1 AND sc.block_height < $2`, address, uptoHeight)
	end(err)
	return scores, err
}

func (s *Store) CommentScoresReceivedBy(ctx context.Context, address string, uptoHeight int32) ([]social.CommentScore, error) {
	ctx, end := s.span(ctx, "SocialDB_CommentScoresReceivedBy")
	var scores []social.CommentScore
	err := s.db.SelectContext(ctx, &scores, `
		SELECT cs.* FROM comment_scores cs JOIN comments c ON c.tx_id = cs.target_tx_id
		WHERE c.author = $1 AND cs.block_height < $2`, address, uptoHeight)
	end(err)
	return scores, err
}

// CountBlockingReceivedBy resolves each blocker's latest record (Blocking's
// latest-wins semantics) via DISTINCT ON, then counts those not unblocked.
func (s *Store) CountBlockingReceivedBy(ctx context.Context, address string) (int, error) {
	ctx, end := s.span(ctx, "SocialDB_CountBlockingReceivedBy")
	var n int
	err := s.db.GetContext(ctx, &n, `
		SELECT count(*) FROM (
			SELECT DISTINCT ON (author) author, unblock FROM blockings
			WHERE target = $1 ORDER BY author, time DESC
		) latest WHERE NOT latest.unblock`, address)
	end(err)
	return n, err
}

func nilOnNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}

var _ antibotcontext.Source = (*Store)(nil)
