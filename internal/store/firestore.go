package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/lankatax/backend/internal/model"
)

// Firestore collection names.
const (
	colEntities     = "entities"
	colIncomes      = "incomes"
	colAssets       = "assets"
	colLiabilities  = "liabilities"
	colCertificates = "certificates"
)

// FirestoreStore implements the Store interface using Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{client: client}
}

// applyCursorPagination adds OrderBy + StartAfter + Limit to a query for
// cursor-based pagination. It fetches pageSize+1 docs so the caller can
// detect whether a next page exists.
func applyCursorPagination(query firestore.Query, pageSize int32, pageToken string) (firestore.Query, int32, error) {
	query = query.OrderBy(firestore.DocumentID, firestore.Asc)

	if pageToken != "" {
		docID, err := DecodePageToken(pageToken)
		if err != nil {
			return query, 0, fmt.Errorf("invalid page token: %w", err)
		}
		query = query.StartAfter(docID)
	}

	if pageSize <= 0 {
		pageSize = 100
	}
	query = query.Limit(int(pageSize) + 1)
	return query, pageSize, nil
}

// Entity operations

func (s *FirestoreStore) CreateEntity(ctx context.Context, entity *model.Entity) error {
	if entity.ID == "" {
		entity.ID = s.client.Collection(colEntities).NewDoc().ID
	}
	now := time.Now()
	entity.CreatedAt = now
	entity.UpdatedAt = now
	_, err := s.client.Collection(colEntities).Doc(entity.ID).Set(ctx, entity)
	return err
}

func (s *FirestoreStore) GetEntity(ctx context.Context, entityID string) (*model.Entity, error) {
	doc, err := s.client.Collection(colEntities).Doc(entityID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("entity %s: %w", entityID, ErrNotFound)
	}
	var entity model.Entity
	if err := doc.DataTo(&entity); err != nil {
		return nil, fmt.Errorf("decode entity: %w", err)
	}
	return &entity, nil
}

func (s *FirestoreStore) UpdateEntity(ctx context.Context, entity *model.Entity) error {
	entity.UpdatedAt = time.Now()
	_, err := s.client.Collection(colEntities).Doc(entity.ID).Set(ctx, entity)
	return err
}

func (s *FirestoreStore) DeleteEntity(ctx context.Context, entityID string) error {
	_, err := s.client.Collection(colEntities).Doc(entityID).Delete(ctx)
	return err
}

func (s *FirestoreStore) ListEntities(ctx context.Context, pageSize int32, pageToken string) ([]*model.Entity, string, error) {
	query, size, err := applyCursorPagination(s.client.Collection(colEntities).Query, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	var entities []*model.Entity
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("iterate entities: %w", err)
		}
		var entity model.Entity
		if err := doc.DataTo(&entity); err != nil {
			return nil, "", fmt.Errorf("decode entity: %w", err)
		}
		entities = append(entities, &entity)
	}

	var nextToken string
	if int32(len(entities)) > size {
		entities = entities[:size]
		nextToken = EncodePageToken(entities[len(entities)-1].ID)
	}
	return entities, nextToken, nil
}

// Income operations

func (s *FirestoreStore) CreateIncome(ctx context.Context, income *model.Income) error {
	if income.ID == "" {
		income.ID = s.client.Collection(colIncomes).NewDoc().ID
	}
	now := time.Now()
	income.CreatedAt = now
	income.UpdatedAt = now
	_, err := s.client.Collection(colIncomes).Doc(income.ID).Set(ctx, income)
	return err
}

func (s *FirestoreStore) GetIncome(ctx context.Context, incomeID string) (*model.Income, error) {
	doc, err := s.client.Collection(colIncomes).Doc(incomeID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("income %s: %w", incomeID, ErrNotFound)
	}
	var income model.Income
	if err := doc.DataTo(&income); err != nil {
		return nil, fmt.Errorf("decode income: %w", err)
	}
	return &income, nil
}

func (s *FirestoreStore) UpdateIncome(ctx context.Context, income *model.Income) error {
	income.UpdatedAt = time.Now()
	_, err := s.client.Collection(colIncomes).Doc(income.ID).Set(ctx, income)
	return err
}

func (s *FirestoreStore) DeleteIncome(ctx context.Context, incomeID string) error {
	_, err := s.client.Collection(colIncomes).Doc(incomeID).Delete(ctx)
	return err
}

func (s *FirestoreStore) ListIncomes(ctx context.Context, ownerID, taxYear string, pageSize int32, pageToken string) ([]*model.Income, string, error) {
	query := s.client.Collection(colIncomes).Query
	if ownerID != "" {
		query = query.Where("OwnerID", "==", ownerID)
	}
	if taxYear != "" {
		query = query.Where("TaxYear", "==", taxYear)
	}
	query, size, err := applyCursorPagination(query, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	var incomes []*model.Income
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("iterate incomes: %w", err)
		}
		var income model.Income
		if err := doc.DataTo(&income); err != nil {
			return nil, "", fmt.Errorf("decode income: %w", err)
		}
		incomes = append(incomes, &income)
	}

	var nextToken string
	if int32(len(incomes)) > size {
		incomes = incomes[:size]
		nextToken = EncodePageToken(incomes[len(incomes)-1].ID)
	}
	return incomes, nextToken, nil
}

// Asset operations

func (s *FirestoreStore) CreateAsset(ctx context.Context, asset *model.Asset) error {
	if asset.ID == "" {
		asset.ID = s.client.Collection(colAssets).NewDoc().ID
	}
	now := time.Now()
	asset.CreatedAt = now
	asset.UpdatedAt = now
	_, err := s.client.Collection(colAssets).Doc(asset.ID).Set(ctx, asset)
	return err
}

func (s *FirestoreStore) GetAsset(ctx context.Context, assetID string) (*model.Asset, error) {
	doc, err := s.client.Collection(colAssets).Doc(assetID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("asset %s: %w", assetID, ErrNotFound)
	}
	var asset model.Asset
	if err := doc.DataTo(&asset); err != nil {
		return nil, fmt.Errorf("decode asset: %w", err)
	}
	return &asset, nil
}

func (s *FirestoreStore) UpdateAsset(ctx context.Context, asset *model.Asset) error {
	asset.UpdatedAt = time.Now()
	_, err := s.client.Collection(colAssets).Doc(asset.ID).Set(ctx, asset)
	return err
}

func (s *FirestoreStore) DeleteAsset(ctx context.Context, assetID string) error {
	_, err := s.client.Collection(colAssets).Doc(assetID).Delete(ctx)
	return err
}

func (s *FirestoreStore) ListAssets(ctx context.Context, ownerID string, pageSize int32, pageToken string) ([]*model.Asset, string, error) {
	query := s.client.Collection(colAssets).Query
	if ownerID != "" {
		query = query.Where("OwnerID", "==", ownerID)
	}
	query, size, err := applyCursorPagination(query, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	var assets []*model.Asset
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("iterate assets: %w", err)
		}
		var asset model.Asset
		if err := doc.DataTo(&asset); err != nil {
			return nil, "", fmt.Errorf("decode asset: %w", err)
		}
		assets = append(assets, &asset)
	}

	var nextToken string
	if int32(len(assets)) > size {
		assets = assets[:size]
		nextToken = EncodePageToken(assets[len(assets)-1].ID)
	}
	return assets, nextToken, nil
}

// mutateAsset applies fn to an asset inside a transaction so concurrent
// sub-record appends cannot clobber each other.
func (s *FirestoreStore) mutateAsset(ctx context.Context, assetID string, fn func(*model.Asset)) error {
	ref := s.client.Collection(colAssets).Doc(assetID)
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return fmt.Errorf("asset %s: %w", assetID, ErrNotFound)
		}
		var asset model.Asset
		if err := doc.DataTo(&asset); err != nil {
			return fmt.Errorf("decode asset: %w", err)
		}
		fn(&asset)
		asset.UpdatedAt = time.Now()
		return tx.Set(ref, &asset)
	})
}

func (s *FirestoreStore) AppendBalance(ctx context.Context, assetID string, balance model.Balance) error {
	return s.mutateAsset(ctx, assetID, func(asset *model.Asset) {
		for i := range asset.Balances {
			if asset.Balances[i].TaxYear == balance.TaxYear {
				asset.Balances[i] = balance
				return
			}
		}
		asset.Balances = append(asset.Balances, balance)
	})
}

func (s *FirestoreStore) AppendStockBalance(ctx context.Context, assetID string, balance model.StockBalance) error {
	return s.mutateAsset(ctx, assetID, func(asset *model.Asset) {
		for i := range asset.StockBalances {
			if asset.StockBalances[i].TaxYear == balance.TaxYear {
				asset.StockBalances[i] = balance
				return
			}
		}
		asset.StockBalances = append(asset.StockBalances, balance)
	})
}

func (s *FirestoreStore) AppendPropertyExpense(ctx context.Context, assetID string, expense model.PropertyExpense) error {
	return s.mutateAsset(ctx, assetID, func(asset *model.Asset) {
		for i := range asset.PropertyExpenses {
			if asset.PropertyExpenses[i].TaxYear == expense.TaxYear {
				asset.PropertyExpenses[i] = expense
				return
			}
		}
		asset.PropertyExpenses = append(asset.PropertyExpenses, expense)
	})
}

func (s *FirestoreStore) AppendJewelleryTransaction(ctx context.Context, assetID string, txn model.JewelleryTransaction) error {
	return s.mutateAsset(ctx, assetID, func(asset *model.Asset) {
		for i := range asset.JewelleryTransactions {
			if asset.JewelleryTransactions[i].TaxYear == txn.TaxYear {
				asset.JewelleryTransactions[i] = txn
				return
			}
		}
		asset.JewelleryTransactions = append(asset.JewelleryTransactions, txn)
	})
}

// Liability operations

func (s *FirestoreStore) CreateLiability(ctx context.Context, liability *model.Liability) error {
	if liability.ID == "" {
		liability.ID = s.client.Collection(colLiabilities).NewDoc().ID
	}
	now := time.Now()
	liability.CreatedAt = now
	liability.UpdatedAt = now
	_, err := s.client.Collection(colLiabilities).Doc(liability.ID).Set(ctx, liability)
	return err
}

func (s *FirestoreStore) GetLiability(ctx context.Context, liabilityID string) (*model.Liability, error) {
	doc, err := s.client.Collection(colLiabilities).Doc(liabilityID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("liability %s: %w", liabilityID, ErrNotFound)
	}
	var liability model.Liability
	if err := doc.DataTo(&liability); err != nil {
		return nil, fmt.Errorf("decode liability: %w", err)
	}
	return &liability, nil
}

func (s *FirestoreStore) UpdateLiability(ctx context.Context, liability *model.Liability) error {
	liability.UpdatedAt = time.Now()
	_, err := s.client.Collection(colLiabilities).Doc(liability.ID).Set(ctx, liability)
	return err
}

func (s *FirestoreStore) DeleteLiability(ctx context.Context, liabilityID string) error {
	_, err := s.client.Collection(colLiabilities).Doc(liabilityID).Delete(ctx)
	return err
}

func (s *FirestoreStore) ListLiabilities(ctx context.Context, ownerID string, pageSize int32, pageToken string) ([]*model.Liability, string, error) {
	query := s.client.Collection(colLiabilities).Query
	if ownerID != "" {
		query = query.Where("OwnerID", "==", ownerID)
	}
	query, size, err := applyCursorPagination(query, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	var liabilities []*model.Liability
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("iterate liabilities: %w", err)
		}
		var liability model.Liability
		if err := doc.DataTo(&liability); err != nil {
			return nil, "", fmt.Errorf("decode liability: %w", err)
		}
		liabilities = append(liabilities, &liability)
	}

	var nextToken string
	if int32(len(liabilities)) > size {
		liabilities = liabilities[:size]
		nextToken = EncodePageToken(liabilities[len(liabilities)-1].ID)
	}
	return liabilities, nextToken, nil
}

func (s *FirestoreStore) AppendLiabilityPayment(ctx context.Context, liabilityID string, payment model.LiabilityPayment) error {
	ref := s.client.Collection(colLiabilities).Doc(liabilityID)
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return fmt.Errorf("liability %s: %w", liabilityID, ErrNotFound)
		}
		var liability model.Liability
		if err := doc.DataTo(&liability); err != nil {
			return fmt.Errorf("decode liability: %w", err)
		}
		liability.Payments = append(liability.Payments, payment)
		liability.UpdatedAt = time.Now()
		return tx.Set(ref, &liability)
	})
}

// Certificate operations

func (s *FirestoreStore) CreateCertificate(ctx context.Context, cert *model.Certificate) error {
	if cert.ID == "" {
		cert.ID = s.client.Collection(colCertificates).NewDoc().ID
	}
	now := time.Now()
	cert.CreatedAt = now
	cert.UpdatedAt = now
	_, err := s.client.Collection(colCertificates).Doc(cert.ID).Set(ctx, cert)
	return err
}

func (s *FirestoreStore) GetCertificate(ctx context.Context, certID string) (*model.Certificate, error) {
	doc, err := s.client.Collection(colCertificates).Doc(certID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("certificate %s: %w", certID, ErrNotFound)
	}
	var cert model.Certificate
	if err := doc.DataTo(&cert); err != nil {
		return nil, fmt.Errorf("decode certificate: %w", err)
	}
	return &cert, nil
}

func (s *FirestoreStore) UpdateCertificate(ctx context.Context, cert *model.Certificate) error {
	cert.UpdatedAt = time.Now()
	_, err := s.client.Collection(colCertificates).Doc(cert.ID).Set(ctx, cert)
	return err
}

func (s *FirestoreStore) DeleteCertificate(ctx context.Context, certID string) error {
	_, err := s.client.Collection(colCertificates).Doc(certID).Delete(ctx)
	return err
}

func (s *FirestoreStore) ListCertificates(ctx context.Context, ownerID, taxYear string, pageSize int32, pageToken string) ([]*model.Certificate, string, error) {
	query := s.client.Collection(colCertificates).Query
	if ownerID != "" {
		query = query.Where("OwnerID", "==", ownerID)
	}
	if taxYear != "" {
		query = query.Where("TaxYear", "==", taxYear)
	}
	query, size, err := applyCursorPagination(query, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	var certs []*model.Certificate
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("iterate certificates: %w", err)
		}
		var cert model.Certificate
		if err := doc.DataTo(&cert); err != nil {
			return nil, "", fmt.Errorf("decode certificate: %w", err)
		}
		certs = append(certs, &cert)
	}

	var nextToken string
	if int32(len(certs)) > size {
		certs = certs[:size]
		nextToken = EncodePageToken(certs[len(certs)-1].ID)
	}
	return certs, nextToken, nil
}

// LoadSnapshot gathers all of an entity's records across the four record
// collections.
func (s *FirestoreStore) LoadSnapshot(ctx context.Context, ownerID string) (*model.Snapshot, error) {
	snap := &model.Snapshot{}

	iter := s.client.Collection(colIncomes).Where("OwnerID", "==", ownerID).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load incomes: %w", err)
		}
		var income model.Income
		if err := doc.DataTo(&income); err != nil {
			return nil, fmt.Errorf("decode income: %w", err)
		}
		snap.Incomes = append(snap.Incomes, &income)
	}

	assetIter := s.client.Collection(colAssets).Where("OwnerID", "==", ownerID).Documents(ctx)
	defer assetIter.Stop()
	for {
		doc, err := assetIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load assets: %w", err)
		}
		var asset model.Asset
		if err := doc.DataTo(&asset); err != nil {
			return nil, fmt.Errorf("decode asset: %w", err)
		}
		snap.Assets = append(snap.Assets, &asset)
	}

	liabilityIter := s.client.Collection(colLiabilities).Where("OwnerID", "==", ownerID).Documents(ctx)
	defer liabilityIter.Stop()
	for {
		doc, err := liabilityIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load liabilities: %w", err)
		}
		var liability model.Liability
		if err := doc.DataTo(&liability); err != nil {
			return nil, fmt.Errorf("decode liability: %w", err)
		}
		snap.Liabilities = append(snap.Liabilities, &liability)
	}

	certIter := s.client.Collection(colCertificates).Where("OwnerID", "==", ownerID).Documents(ctx)
	defer certIter.Stop()
	for {
		doc, err := certIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load certificates: %w", err)
		}
		var cert model.Certificate
		if err := doc.DataTo(&cert); err != nil {
			return nil, fmt.Errorf("decode certificate: %w", err)
		}
		snap.Certificates = append(snap.Certificates, &cert)
	}

	sortSnapshot(snap)
	return snap, nil
}
