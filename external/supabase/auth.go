package supabase

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-portal/internal/domain/user"
	"github.com/riskibarqy/league-portal/internal/platform/cache"
	"github.com/riskibarqy/league-portal/internal/platform/resilience"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

const authUserPath = "/auth/v1/user"

// AuthVerifier resolves a member bearer token through the auth endpoint.
// Verified principals are cached by token hash for a short TTL.
type AuthVerifier struct {
	client *Client
	cache  *cache.Store[user.Principal]
}

func NewAuthVerifier(client *Client, cacheTTL time.Duration, maxEntries int) *AuthVerifier {
	return &AuthVerifier{
		client: client,
		cache:  cache.NewStore[user.Principal](cacheTTL, maxEntries),
	}
}

func (v *AuthVerifier) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	return v.cache.GetOrLoad(ctx, hashToken(token), func(ctx context.Context) (user.Principal, error) {
		return v.fetchUser(ctx, token)
	})
}

func (v *AuthVerifier) fetchUser(ctx context.Context, token string) (user.Principal, error) {
	c := v.client

	var raw []byte
	err := c.breaker.Do(isCircuitFailure, func() error {
		var reqErr error
		raw, reqErr = c.get(ctx, c.baseURL+authUserPath, token)
		return reqErr
	})
	if err != nil {
		var statusErr *StatusError
		switch {
		case crerr.As(err, &statusErr) && (statusErr.StatusCode == 401 || statusErr.StatusCode == 403):
			return user.Principal{}, fmt.Errorf("%w: token rejected by identity provider", usecase.ErrUnauthorized)
		case crerr.Is(err, resilience.ErrCircuitOpen), crerr.Is(err, errSupabaseTransient):
			c.logger.WarnContext(ctx, "identity provider unavailable", "error", err)
			return user.Principal{}, fmt.Errorf("%w: identity provider is unavailable", usecase.ErrDependencyUnavailable)
		default:
			return user.Principal{}, fmt.Errorf("verify token: %w", err)
		}
	}

	var decoded authUserResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("decode auth user response: %w", err)
	}
	if strings.TrimSpace(decoded.ID) == "" {
		return user.Principal{}, fmt.Errorf("%w: auth user response has no id", usecase.ErrUnauthorized)
	}

	return user.Principal{
		UserID: decoded.ID,
		Email:  decoded.Email,
		Role:   decoded.Role,
	}, nil
}

type authUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
