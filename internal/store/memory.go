package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lankatax/backend/internal/model"
)

// MemoryStore implements Store with in-memory maps. It backs local
// development and doubles as the test store.
type MemoryStore struct {
	mu sync.RWMutex

	entities     map[string]*model.Entity
	incomes      map[string]*model.Income
	assets       map[string]*model.Asset
	liabilities  map[string]*model.Liability
	certificates map[string]*model.Certificate
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entities:     make(map[string]*model.Entity),
		incomes:      make(map[string]*model.Income),
		assets:       make(map[string]*model.Asset),
		liabilities:  make(map[string]*model.Liability),
		certificates: make(map[string]*model.Certificate),
	}
}

// paginateIDs applies cursor-based pagination to a slice of IDs.
// Returns the page of IDs and the next page token (empty if no more pages).
func paginateIDs(ids []string, pageSize int32, pageToken string) ([]string, string) {
	if pageSize <= 0 {
		pageSize = 100
	}

	sort.Strings(ids)

	startIdx := 0
	if pageToken != "" {
		cursorID, err := DecodePageToken(pageToken)
		if err == nil {
			for i, id := range ids {
				if id > cursorID {
					startIdx = i
					break
				}
				if i == len(ids)-1 {
					return nil, ""
				}
			}
		}
	}

	ids = ids[startIdx:]

	var nextToken string
	if int32(len(ids)) > pageSize {
		nextToken = EncodePageToken(ids[pageSize-1])
		ids = ids[:pageSize]
	}

	return ids, nextToken
}

// Entity operations

func (m *MemoryStore) CreateEntity(ctx context.Context, entity *model.Entity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entity.ID == "" {
		entity.ID = uuid.New().String()
	}
	now := time.Now()
	entity.CreatedAt = now
	entity.UpdatedAt = now
	m.entities[entity.ID] = entity
	return nil
}

func (m *MemoryStore) GetEntity(ctx context.Context, entityID string) (*model.Entity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entity, ok := m.entities[entityID]
	if !ok {
		return nil, fmt.Errorf("entity %s: %w", entityID, ErrNotFound)
	}
	return entity, nil
}

func (m *MemoryStore) UpdateEntity(ctx context.Context, entity *model.Entity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entities[entity.ID]; !ok {
		return fmt.Errorf("entity %s: %w", entity.ID, ErrNotFound)
	}
	entity.UpdatedAt = time.Now()
	m.entities[entity.ID] = entity
	return nil
}

func (m *MemoryStore) DeleteEntity(ctx context.Context, entityID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entities[entityID]; !ok {
		return fmt.Errorf("entity %s: %w", entityID, ErrNotFound)
	}
	delete(m.entities, entityID)
	return nil
}

func (m *MemoryStore) ListEntities(ctx context.Context, pageSize int32, pageToken string) ([]*model.Entity, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.entities))
	for id := range m.entities {
		ids = append(ids, id)
	}
	page, nextToken := paginateIDs(ids, pageSize, pageToken)

	entities := make([]*model.Entity, 0, len(page))
	for _, id := range page {
		entities = append(entities, m.entities[id])
	}
	return entities, nextToken, nil
}

// Income operations

func (m *MemoryStore) CreateIncome(ctx context.Context, income *model.Income) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if income.ID == "" {
		income.ID = uuid.New().String()
	}
	now := time.Now()
	income.CreatedAt = now
	income.UpdatedAt = now
	m.incomes[income.ID] = income
	return nil
}

func (m *MemoryStore) GetIncome(ctx context.Context, incomeID string) (*model.Income, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	income, ok := m.incomes[incomeID]
	if !ok {
		return nil, fmt.Errorf("income %s: %w", incomeID, ErrNotFound)
	}
	return income, nil
}

func (m *MemoryStore) UpdateIncome(ctx context.Context, income *model.Income) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.incomes[income.ID]; !ok {
		return fmt.Errorf("income %s: %w", income.ID, ErrNotFound)
	}
	income.UpdatedAt = time.Now()
	m.incomes[income.ID] = income
	return nil
}

func (m *MemoryStore) DeleteIncome(ctx context.Context, incomeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.incomes[incomeID]; !ok {
		return fmt.Errorf("income %s: %w", incomeID, ErrNotFound)
	}
	delete(m.incomes, incomeID)
	return nil
}

func (m *MemoryStore) ListIncomes(ctx context.Context, ownerID, taxYear string, pageSize int32, pageToken string) ([]*model.Income, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []string
	for id, inc := range m.incomes {
		if ownerID != "" && inc.OwnerID != ownerID {
			continue
		}
		if taxYear != "" && inc.TaxYear != taxYear {
			continue
		}
		ids = append(ids, id)
	}
	page, nextToken := paginateIDs(ids, pageSize, pageToken)

	incomes := make([]*model.Income, 0, len(page))
	for _, id := range page {
		incomes = append(incomes, m.incomes[id])
	}
	return incomes, nextToken, nil
}

// Asset operations

func (m *MemoryStore) CreateAsset(ctx context.Context, asset *model.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if asset.ID == "" {
		asset.ID = uuid.New().String()
	}
	now := time.Now()
	asset.CreatedAt = now
	asset.UpdatedAt = now
	m.assets[asset.ID] = asset
	return nil
}

func (m *MemoryStore) GetAsset(ctx context.Context, assetID string) (*model.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	asset, ok := m.assets[assetID]
	if !ok {
		return nil, fmt.Errorf("asset %s: %w", assetID, ErrNotFound)
	}
	return asset, nil
}

func (m *MemoryStore) UpdateAsset(ctx context.Context, asset *model.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.assets[asset.ID]; !ok {
		return fmt.Errorf("asset %s: %w", asset.ID, ErrNotFound)
	}
	asset.UpdatedAt = time.Now()
	m.assets[asset.ID] = asset
	return nil
}

func (m *MemoryStore) DeleteAsset(ctx context.Context, assetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.assets[assetID]; !ok {
		return fmt.Errorf("asset %s: %w", assetID, ErrNotFound)
	}
	delete(m.assets, assetID)
	return nil
}

func (m *MemoryStore) ListAssets(ctx context.Context, ownerID string, pageSize int32, pageToken string) ([]*model.Asset, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []string
	for id, a := range m.assets {
		if ownerID != "" && a.OwnerID != ownerID {
			continue
		}
		ids = append(ids, id)
	}
	page, nextToken := paginateIDs(ids, pageSize, pageToken)

	assets := make([]*model.Asset, 0, len(page))
	for _, id := range page {
		assets = append(assets, m.assets[id])
	}
	return assets, nextToken, nil
}

func (m *MemoryStore) AppendBalance(ctx context.Context, assetID string, balance model.Balance) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	asset, ok := m.assets[assetID]
	if !ok {
		return fmt.Errorf("asset %s: %w", assetID, ErrNotFound)
	}
	for i := range asset.Balances {
		if asset.Balances[i].TaxYear == balance.TaxYear {
			asset.Balances[i] = balance
			asset.UpdatedAt = time.Now()
			return nil
		}
	}
	asset.Balances = append(asset.Balances, balance)
	asset.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) AppendStockBalance(ctx context.Context, assetID string, balance model.StockBalance) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	asset, ok := m.assets[assetID]
	if !ok {
		return fmt.Errorf("asset %s: %w", assetID, ErrNotFound)
	}
	for i := range asset.StockBalances {
		if asset.StockBalances[i].TaxYear == balance.TaxYear {
			asset.StockBalances[i] = balance
			asset.UpdatedAt = time.Now()
			return nil
		}
	}
	asset.StockBalances = append(asset.StockBalances, balance)
	asset.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) AppendPropertyExpense(ctx context.Context, assetID string, expense model.PropertyExpense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	asset, ok := m.assets[assetID]
	if !ok {
		return fmt.Errorf("asset %s: %w", assetID, ErrNotFound)
	}
	for i := range asset.PropertyExpenses {
		if asset.PropertyExpenses[i].TaxYear == expense.TaxYear {
			asset.PropertyExpenses[i] = expense
			asset.UpdatedAt = time.Now()
			return nil
		}
	}
	asset.PropertyExpenses = append(asset.PropertyExpenses, expense)
	asset.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) AppendJewelleryTransaction(ctx context.Context, assetID string, txn model.JewelleryTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	asset, ok := m.assets[assetID]
	if !ok {
		return fmt.Errorf("asset %s: %w", assetID, ErrNotFound)
	}
	for i := range asset.JewelleryTransactions {
		if asset.JewelleryTransactions[i].TaxYear == txn.TaxYear {
			asset.JewelleryTransactions[i] = txn
			asset.UpdatedAt = time.Now()
			return nil
		}
	}
	asset.JewelleryTransactions = append(asset.JewelleryTransactions, txn)
	asset.UpdatedAt = time.Now()
	return nil
}

// Liability operations

func (m *MemoryStore) CreateLiability(ctx context.Context, liability *model.Liability) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if liability.ID == "" {
		liability.ID = uuid.New().String()
	}
	now := time.Now()
	liability.CreatedAt = now
	liability.UpdatedAt = now
	m.liabilities[liability.ID] = liability
	return nil
}

func (m *MemoryStore) GetLiability(ctx context.Context, liabilityID string) (*model.Liability, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	liability, ok := m.liabilities[liabilityID]
	if !ok {
		return nil, fmt.Errorf("liability %s: %w", liabilityID, ErrNotFound)
	}
	return liability, nil
}

func (m *MemoryStore) UpdateLiability(ctx context.Context, liability *model.Liability) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.liabilities[liability.ID]; !ok {
		return fmt.Errorf("liability %s: %w", liability.ID, ErrNotFound)
	}
	liability.UpdatedAt = time.Now()
	m.liabilities[liability.ID] = liability
	return nil
}

func (m *MemoryStore) DeleteLiability(ctx context.Context, liabilityID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.liabilities[liabilityID]; !ok {
		return fmt.Errorf("liability %s: %w", liabilityID, ErrNotFound)
	}
	delete(m.liabilities, liabilityID)
	return nil
}

func (m *MemoryStore) ListLiabilities(ctx context.Context, ownerID string, pageSize int32, pageToken string) ([]*model.Liability, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []string
	for id, l := range m.liabilities {
		if ownerID != "" && l.OwnerID != ownerID {
			continue
		}
		ids = append(ids, id)
	}
	page, nextToken := paginateIDs(ids, pageSize, pageToken)

	liabilities := make([]*model.Liability, 0, len(page))
	for _, id := range page {
		liabilities = append(liabilities, m.liabilities[id])
	}
	return liabilities, nextToken, nil
}

func (m *MemoryStore) AppendLiabilityPayment(ctx context.Context, liabilityID string, payment model.LiabilityPayment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	liability, ok := m.liabilities[liabilityID]
	if !ok {
		return fmt.Errorf("liability %s: %w", liabilityID, ErrNotFound)
	}
	liability.Payments = append(liability.Payments, payment)
	liability.UpdatedAt = time.Now()
	return nil
}

// Certificate operations

func (m *MemoryStore) CreateCertificate(ctx context.Context, cert *model.Certificate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cert.ID == "" {
		cert.ID = uuid.New().String()
	}
	now := time.Now()
	cert.CreatedAt = now
	cert.UpdatedAt = now
	m.certificates[cert.ID] = cert
	return nil
}

func (m *MemoryStore) GetCertificate(ctx context.Context, certID string) (*model.Certificate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cert, ok := m.certificates[certID]
	if !ok {
		return nil, fmt.Errorf("certificate %s: %w", certID, ErrNotFound)
	}
	return cert, nil
}

func (m *MemoryStore) UpdateCertificate(ctx context.Context, cert *model.Certificate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.certificates[cert.ID]; !ok {
		return fmt.Errorf("certificate %s: %w", cert.ID, ErrNotFound)
	}
	cert.UpdatedAt = time.Now()
	m.certificates[cert.ID] = cert
	return nil
}

func (m *MemoryStore) DeleteCertificate(ctx context.Context, certID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.certificates[certID]; !ok {
		return fmt.Errorf("certificate %s: %w", certID, ErrNotFound)
	}
	delete(m.certificates, certID)
	return nil
}

func (m *MemoryStore) ListCertificates(ctx context.Context, ownerID, taxYear string, pageSize int32, pageToken string) ([]*model.Certificate, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []string
	for id, c := range m.certificates {
		if ownerID != "" && c.OwnerID != ownerID {
			continue
		}
		if taxYear != "" && c.TaxYear != taxYear {
			continue
		}
		ids = append(ids, id)
	}
	page, nextToken := paginateIDs(ids, pageSize, pageToken)

	certs := make([]*model.Certificate, 0, len(page))
	for _, id := range page {
		certs = append(certs, m.certificates[id])
	}
	return certs, nextToken, nil
}

// LoadSnapshot gathers all of an entity's records in one pass.
func (m *MemoryStore) LoadSnapshot(ctx context.Context, ownerID string) (*model.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := &model.Snapshot{}
	for _, inc := range m.incomes {
		if inc.OwnerID == ownerID {
			snap.Incomes = append(snap.Incomes, inc)
		}
	}
	for _, a := range m.assets {
		if a.OwnerID == ownerID {
			snap.Assets = append(snap.Assets, a)
		}
	}
	for _, l := range m.liabilities {
		if l.OwnerID == ownerID {
			snap.Liabilities = append(snap.Liabilities, l)
		}
	}
	for _, c := range m.certificates {
		if c.OwnerID == ownerID {
			snap.Certificates = append(snap.Certificates, c)
		}
	}
	sortSnapshot(snap)
	return snap, nil
}

// sortSnapshot gives map-sourced snapshots a deterministic order so repeat
// computations are bit-identical.
func sortSnapshot(snap *model.Snapshot) {
	sort.Slice(snap.Incomes, func(i, j int) bool { return snap.Incomes[i].ID < snap.Incomes[j].ID })
	sort.Slice(snap.Assets, func(i, j int) bool { return snap.Assets[i].ID < snap.Assets[j].ID })
	sort.Slice(snap.Liabilities, func(i, j int) bool { return snap.Liabilities[i].ID < snap.Liabilities[j].ID })
	sort.Slice(snap.Certificates, func(i, j int) bool { return snap.Certificates[i].ID < snap.Certificates[j].ID })
}
