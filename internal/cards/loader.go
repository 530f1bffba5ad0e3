package cards

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/youruser/hrcerts/internal/hackerrank"
)

// Source is the part of the upstream gateway the loader needs.
type Source interface {
	FetchCertificates(ctx context.Context, username string) ([]hackerrank.Certificate, error)
	FetchProfile(ctx context.Context, username string) (*hackerrank.Profile, error)
}

type UserData struct {
	Profile      hackerrank.Profile
	Certificates []hackerrank.Certificate
}

// LoadUser fetches the profile and certificate list of username in parallel.
// The first failure cancels the other request.
func LoadUser(ctx context.Context, src Source, username string) (*UserData, error) {
	var (
		certs   []hackerrank.Certificate
		profile *hackerrank.Profile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		certs, err = src.FetchCertificates(gctx, username)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = src.FetchProfile(gctx, username)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data := &UserData{Certificates: certs}
	if profile != nil {
		data.Profile = *profile
	}
	return data, nil
}
