package portfolio

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/persistence"
)

// resolver finds the owner and the portfolio behind a public identifier
type resolver struct {
	users        persistence.UserRepository
	portfolios   persistence.PortfolioRepository
	timeProvider coreport.TimeProvider
}

// resolvePublic accepts a slug, a username or a numeric user id.
// Private portfolios resolve to ErrPortfolioNotFound.
func (r resolver) resolvePublic(ctx context.Context, identifier string) (*entity.User, *entity.Portfolio, error) {
	user, portfolio, err := r.resolve(ctx, identifier)
	if err != nil {
		return nil, nil, err
	}
	if !portfolio.IsPublic {
		return nil, nil, errs.ErrPortfolioNotFound
	}
	return user, portfolio, nil
}

func (r resolver) resolve(ctx context.Context, identifier string) (*entity.User, *entity.Portfolio, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, nil, errs.ErrPortfolioNotFound
	}

	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		user, err := r.users.GetByID(ctx, id)
		if err != nil {
			return nil, nil, notFound(err)
		}
		return r.withPortfolio(ctx, user)
	}

	portfolio, err := r.portfolios.GetBySlug(ctx, strings.ToLower(identifier))
	switch {
	case err == nil:
		user, err := r.users.GetByID(ctx, portfolio.UserID)
		if err != nil {
			return nil, nil, notFound(err)
		}
		return user, portfolio, nil
	case !errs.IsNotFoundError(err):
		return nil, nil, err
	}

	user, err := r.users.GetByUsername(ctx, identifier)
	if err != nil {
		return nil, nil, notFound(err)
	}
	return r.withPortfolio(ctx, user)
}

// withPortfolio loads the user's portfolio, defaulting to a public one when none was saved
func (r resolver) withPortfolio(ctx context.Context, user *entity.User) (*entity.User, *entity.Portfolio, error) {
	portfolio, err := r.ownPortfolio(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, portfolio, nil
}

func (r resolver) ownPortfolio(ctx context.Context, user *entity.User) (*entity.Portfolio, error) {
	portfolio, err := r.portfolios.GetByUserID(ctx, user.ID)
	switch {
	case err == nil:
		return portfolio, nil
	case errors.Is(err, errs.ErrPortfolioNotFound):
		return entity.NewPortfolio(user.ID, strings.ToLower(user.Username), r.timeProvider.Now()), nil
	}
	return nil, err
}

// notFound folds missing users into a missing portfolio
func notFound(err error) error {
	if errs.IsNotFoundError(err) {
		return errs.ErrPortfolioNotFound
	}
	return err
}
