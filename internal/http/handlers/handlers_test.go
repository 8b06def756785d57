package handlers

import (
	"context"
	"errors"
	"io"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"studio/internal/infra"
	"studio/internal/providers/copywriter"
	"studio/internal/providers/image"
	"studio/internal/providers/video"
)

func newTestApp() *App {
	l := infra.Logger(zerolog.New(io.Discard))
	return &App{
		Config: &infra.Config{
			StorageBaseURL:  "http://localhost:8080/static",
			DefaultLocale:   "en",
			RateLimitPerMin: 30,
		},
		Logger: &l,
	}
}

type fakeImageGenerator struct {
	assets []image.Asset
	err    error
	last   image.GenerateRequest
}

func (f *fakeImageGenerator) Generate(ctx context.Context, req image.GenerateRequest) ([]image.Asset, error) {
	f.last = req
	return f.assets, f.err
}

type fakeVideoGenerator struct {
	asset *video.Asset
	err   error
	last  video.GenerateRequest
}

func (f *fakeVideoGenerator) Generate(ctx context.Context, req video.GenerateRequest) (*video.Asset, error) {
	f.last = req
	return f.asset, f.err
}

type fakeCopyGenerator struct {
	result *copywriter.Result
	err    error
	last   copywriter.GenerateRequest
}

func (f *fakeCopyGenerator) Generate(ctx context.Context, req copywriter.GenerateRequest) (*copywriter.Result, error) {
	f.last = req
	return f.result, f.err
}

// stubSQL satisfies infra.SQLExecutor for session handler tests.
type stubSQL struct {
	row      stubRow
	execErr  error
	lastSQL  string
	lastArgs []any
}

func (s *stubSQL) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	s.lastSQL = query
	s.lastArgs = args
	return pgconn.CommandTag{}, s.execErr
}

func (s *stubSQL) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	s.lastSQL = query
	s.lastArgs = args
	return s.row
}

func (s *stubSQL) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

type stubRow struct {
	state []byte
	err   error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) == 0 {
		return errors.New("no dest")
	}
	ptr, ok := dest[0].(*[]byte)
	if !ok {
		return errors.New("invalid dest")
	}
	*ptr = r.state
	return nil
}
