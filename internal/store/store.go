package store

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/lankatax/backend/internal/model"
)

// ErrNotFound is returned (wrapped) when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the database operations used by the service. Append
// operations enforce the one-sub-record-per-fiscal-year rule by replacing
// an existing entry for the same tax year.
type Store interface {
	// Entity operations
	CreateEntity(ctx context.Context, entity *model.Entity) error
	GetEntity(ctx context.Context, entityID string) (*model.Entity, error)
	UpdateEntity(ctx context.Context, entity *model.Entity) error
	DeleteEntity(ctx context.Context, entityID string) error
	ListEntities(ctx context.Context, pageSize int32, pageToken string) ([]*model.Entity, string, error)

	// Income operations
	CreateIncome(ctx context.Context, income *model.Income) error
	GetIncome(ctx context.Context, incomeID string) (*model.Income, error)
	UpdateIncome(ctx context.Context, income *model.Income) error
	DeleteIncome(ctx context.Context, incomeID string) error
	ListIncomes(ctx context.Context, ownerID, taxYear string, pageSize int32, pageToken string) ([]*model.Income, string, error)

	// Asset operations
	CreateAsset(ctx context.Context, asset *model.Asset) error
	GetAsset(ctx context.Context, assetID string) (*model.Asset, error)
	UpdateAsset(ctx context.Context, asset *model.Asset) error
	DeleteAsset(ctx context.Context, assetID string) error
	ListAssets(ctx context.Context, ownerID string, pageSize int32, pageToken string) ([]*model.Asset, string, error)
	AppendBalance(ctx context.Context, assetID string, balance model.Balance) error
	AppendStockBalance(ctx context.Context, assetID string, balance model.StockBalance) error
	AppendPropertyExpense(ctx context.Context, assetID string, expense model.PropertyExpense) error
	AppendJewelleryTransaction(ctx context.Context, assetID string, txn model.JewelleryTransaction) error

	// Liability operations
	CreateLiability(ctx context.Context, liability *model.Liability) error
	GetLiability(ctx context.Context, liabilityID string) (*model.Liability, error)
	UpdateLiability(ctx context.Context, liability *model.Liability) error
	DeleteLiability(ctx context.Context, liabilityID string) error
	ListLiabilities(ctx context.Context, ownerID string, pageSize int32, pageToken string) ([]*model.Liability, string, error)
	AppendLiabilityPayment(ctx context.Context, liabilityID string, payment model.LiabilityPayment) error

	// Certificate operations
	CreateCertificate(ctx context.Context, cert *model.Certificate) error
	GetCertificate(ctx context.Context, certID string) (*model.Certificate, error)
	UpdateCertificate(ctx context.Context, cert *model.Certificate) error
	DeleteCertificate(ctx context.Context, certID string) error
	ListCertificates(ctx context.Context, ownerID, taxYear string, pageSize int32, pageToken string) ([]*model.Certificate, string, error)

	// LoadSnapshot gathers every record belonging to an entity for the
	// computation engine. Fiscal-year scoping happens in the engine, not
	// here: the snapshot keeps the full multi-year history.
	LoadSnapshot(ctx context.Context, ownerID string) (*model.Snapshot, error)
}

// EncodePageToken encodes a document ID into a page token.
func EncodePageToken(docID string) string {
	if docID == "" {
		return ""
	}
	return base64.URLEncoding.EncodeToString([]byte(docID))
}

// DecodePageToken decodes a page token back to a document ID.
func DecodePageToken(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
