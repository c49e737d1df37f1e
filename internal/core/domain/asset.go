package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssetKind distinguishes fiat currencies from crypto assets.
type AssetKind string

const (
	AssetKindFiat   AssetKind = "FIAT"
	AssetKindCrypto AssetKind = "CRYPTO"
)

// Asset is a currency unit definition. Immutable after creation.
type Asset struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"` // unique, e.g. "TL"
	Kind      AssetKind `json:"kind"`
	Decimals  int32     `json:"decimals"` // minor-unit precision
	CreatedAt time.Time `json:"created_at"`
}
