package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/policy"
	"github.com/osse101/tournament-rewards/internal/rewards"
	"github.com/osse101/tournament-rewards/internal/tournament"
)

// stubRewards implements only what the routing tests touch
type stubRewards struct {
	rewards.Service
}

func (stubRewards) PolicyCacheStats() policy.CacheStats {
	return policy.CacheStats{Size: 1}
}

func (stubRewards) ListRuns(ctx context.Context, tournamentID int64) ([]domain.DistributionRun, error) {
	return []domain.DistributionRun{}, nil
}

type stubTournaments struct {
	tournament.Service
}

func (stubTournaments) Get(ctx context.Context, id int64) (*domain.Tournament, error) {
	return &domain.Tournament{ID: id, State: domain.StateCompleted}, nil
}

func TestRouter_Routes(t *testing.T) {
	router := NewRouter("key", nil, Dependencies{Rewards: stubRewards{}, Tournaments: stubTournaments{}})

	tests := []struct {
		name   string
		method string
		path   string
		key    string
		status int
	}{
		{"healthz is public", http.MethodGet, "/healthz", "", http.StatusOK},
		{"version is public", http.MethodGet, "/version", "", http.StatusOK},
		{"api requires key", http.MethodGet, "/api/v1/tournaments/3", "", http.StatusUnauthorized},
		{"get tournament", http.MethodGet, "/api/v1/tournaments/3", "key", http.StatusOK},
		{"list runs", http.MethodGet, "/api/v1/tournaments/3/runs", "key", http.StatusOK},
		{"cache stats", http.MethodGet, "/api/v1/admin/cache/stats", "key", http.StatusOK},
		{"bad tournament id", http.MethodGet, "/api/v1/tournaments/abc", "key", http.StatusBadRequest},
		{"unknown route", http.MethodGet, "/api/v1/nope", "key", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRouter_SetsRequestIDAndSecurityHeaders(t *testing.T) {
	router := NewRouter("key", nil, Dependencies{Rewards: stubRewards{}, Tournaments: stubTournaments{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tournaments/3", nil)
	req.Header.Set(HeaderAPIKey, "key")
	req.Header.Set(HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}
