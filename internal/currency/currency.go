package currency

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obralink/obralink/internal/config"
	"github.com/obralink/obralink/pkg/clients"
	"go.uber.org/zap"
)

const cacheTTL = 5 * time.Minute

// defaultRate is used when the quote provider is unreachable and no cached
// value exists. Display only, it never enters ledger math.
var defaultRate = decimal.RequireFromString("1200.00")

type quote struct {
	Compra decimal.Decimal `json:"compra"`
	Venta  decimal.Decimal `json:"venta"`
	Nombre string          `json:"nombre"`
}

// Rate is a point-in-time USD exchange quote for display purposes.
type Rate struct {
	Buy       decimal.Decimal `json:"buy"`
	Sell      decimal.Decimal `json:"sell"`
	Source    string          `json:"source"`
	FetchedAt time.Time       `json:"fetched_at"`
}

type Service struct {
	url    string
	client clients.HTTPClientI

	mu       sync.RWMutex
	cached   *Rate
	cachedAt time.Time
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:    cfg.CurrencyAddress,
		client: client,
	}
}

// GetRate returns the current quote, served from cache while fresh. On
// provider failure it degrades to the last known quote, then to the default.
func (s *Service) GetRate() *Rate {
	s.mu.RLock()
	if s.cached != nil && time.Since(s.cachedAt) < cacheTTL {
		rate := s.cached
		s.mu.RUnlock()
		return rate
	}
	s.mu.RUnlock()

	rate, err := s.fetch()
	if err != nil {
		zap.L().Warn("Failed to fetch exchange rate", zap.Error(err))
		s.mu.RLock()
		defer s.mu.RUnlock()
		if s.cached != nil {
			return s.cached
		}
		return &Rate{Buy: defaultRate, Sell: defaultRate, Source: "default", FetchedAt: time.Now()}
	}

	s.mu.Lock()
	s.cached = rate
	s.cachedAt = time.Now()
	s.mu.Unlock()
	return rate
}

func (s *Service) fetch() (*Rate, error) {
	statusCode, respBody, _, err := s.client.Get(s.url+"/v1/dolares/oficial", nil)
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from rate provider", statusCode)
	}

	var q quote
	if err := json.Unmarshal(respBody, &q); err != nil {
		return nil, fmt.Errorf("failed to parse rate response: %w", err)
	}

	return &Rate{
		Buy:       q.Compra,
		Sell:      q.Venta,
		Source:    q.Nombre,
		FetchedAt: time.Now(),
	}, nil
}
