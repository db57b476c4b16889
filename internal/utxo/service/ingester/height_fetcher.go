package ingester

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
)

type heightFetcher struct {
	source     Source
	repository ClickhouseRepository
	coin       model.Coin
	network    model.Network
	limit      uint64
}

// Fetch returns a random sample of heights up to the node tip that are not stored yet.
func (f *heightFetcher) Fetch(ctx context.Context) ([]uint64, error) {
	latest, err := f.source.LatestHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest height: %w", err)
	}
	return f.repository.RandomMissingBlockHeights(ctx, f.coin, f.network, latest, f.limit)
}
