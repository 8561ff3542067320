package feepolicy

import (
	"context"
	"encoding/json"
	"log/slog"

	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/pkg/config"
	"petstay-backend/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

var ErrPolicyUnavailable = errs.Upstream("fee policy is unavailable")

// FromConfig builds the fallback policies. A zero amount leaves that part unset.
func FromConfig(cfg config.FeeConfig) pricing.FeePolicies {
	return pricing.FeePolicies{
		Room:   policy(cfg.RoomPercentageBps, cfg.RoomFlatAmount),
		Sitter: policy(cfg.SitterPercentageBps, cfg.SitterFlatAmount),
	}
}

func policy(bps, flat int64) pricing.FeePolicy {
	var p pricing.FeePolicy
	if bps != 0 {
		p.PercentageBps = &bps
	}
	if flat != 0 {
		p.FlatAmount = &flat
	}
	return p
}

type StaticSource struct {
	policies pricing.FeePolicies
}

func NewStaticSource(cfg config.FeeConfig) *StaticSource {
	return &StaticSource{policies: FromConfig(cfg)}
}

func (s *StaticSource) Current(context.Context) (pricing.FeePolicies, error) {
	return s.policies, nil
}

// RedisSource reads the live policies from a JSON document at one key, e.g.
// {"room":{"flatAmount":5000},"sitter":{"percentageBps":1000}}. A missing key
// falls back to the configured policies.
type RedisSource struct {
	client   redis.UniversalClient
	key      string
	fallback pricing.FeePolicies
}

func NewRedisSource(client redis.UniversalClient, cfg config.FeeConfig) *RedisSource {
	return &RedisSource{client: client, key: cfg.RedisKey, fallback: FromConfig(cfg)}
}

func (s *RedisSource) Current(ctx context.Context) (pricing.FeePolicies, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return s.fallback, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "fee policy read failed", slog.String("key", s.key), slog.Any("error", err))
		return pricing.FeePolicies{}, errs.WithCause(ErrPolicyUnavailable, err)
	}

	var policies pricing.FeePolicies
	if err := json.Unmarshal(raw, &policies); err != nil {
		return pricing.FeePolicies{}, errs.WithCause(ErrPolicyUnavailable, err)
	}
	if err := policies.Validate(); err != nil {
		return pricing.FeePolicies{}, errs.WithCause(ErrPolicyUnavailable, err)
	}
	return policies, nil
}
