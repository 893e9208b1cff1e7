package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/snowflake"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	appErrors "github.com/stocklight/inventory-tracker/internal/errors"
	"github.com/stocklight/inventory-tracker/internal/metrics"
	"github.com/stocklight/inventory-tracker/internal/models"
	repository "github.com/stocklight/inventory-tracker/internal/repositories"
)

type InventoryService interface {
	CreateProduct(ctx context.Context, draft *models.ProductDraft) (*models.Product, error)
	GetProduct(id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, draft *models.ProductDraft) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) (string, error)
	Clear(ctx context.Context) error
	ListProducts(opts models.ListOptions) ([]models.Product, error)
	SearchProducts(term string) []int64
	Stats() models.Stats
	Theme() models.Theme
	ToggleTheme(ctx context.Context) (models.Theme, error)
}

// Options tune the service without hiding anything behind timers or globals:
// the artificial mutation delay and the clock are explicit so tests run
// synchronously.
type Options struct {
	MutationDelay time.Duration
	Locale        string
	Clock         func() time.Time
	Node          *snowflake.Node
}

type inventoryService struct {
	mu       sync.Mutex
	products []models.Product
	theme    models.Theme

	repo     repository.SnapshotRepository
	node     *snowflake.Node
	clock    func() time.Time
	delay    time.Duration
	collator *collate.Collator
}

// NewInventoryService loads the persisted snapshot, or provisions sample data
// when none exists, and returns a ready service. Startup order: theme from
// clock, then snapshot load, then the derived view is available.
func NewInventoryService(ctx context.Context, repo repository.SnapshotRepository, opts Options) InventoryService {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	node := opts.Node
	if node == nil {
		// node id 1: a single process owns the store
		node, _ = snowflake.NewNode(1)
	}

	s := &inventoryService{
		repo:     repo,
		node:     node,
		clock:    clock,
		delay:    opts.MutationDelay,
		theme:    ThemeForHour(clock().Hour()),
		collator: collate.New(language.Make(opts.Locale)),
	}

	s.load(ctx)
	s.observe()

	return s
}

func (s *inventoryService) load(ctx context.Context) {
	snapshot, err := s.repo.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNoSnapshot):
			slog.Info("No snapshot found, provisioning sample data")
		case errors.Is(err, repository.ErrCorruptSnapshot):
			slog.Warn("Snapshot is corrupt, provisioning sample data", slog.String("error", err.Error()))
		default:
			slog.Warn("Snapshot load failed, provisioning sample data", slog.String("error", err.Error()))
		}

		s.provisionSampleData(ctx)

		return
	}

	s.products = snapshot.Products
	if snapshot.Theme == models.ThemeDark || snapshot.Theme == models.ThemeLight {
		s.theme = snapshot.Theme
	}

	slog.Info("Snapshot loaded", slog.Int("products", len(s.products)), slog.String("theme", string(s.theme)))
}

func (s *inventoryService) CreateProduct(ctx context.Context, draft *models.ProductDraft) (*models.Product, error) {
	s.simulateLatency()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	if s.findByNormalizedName(models.NormalizeName(draft.Name), 0) != nil {
		return nil, appErrors.DuplicateEntryError("A product with this name already exists")
	}

	product := models.Product{
		ID:        s.node.Generate().Int64(),
		Name:      trimmedName(draft),
		Quantity:  draft.Quantity,
		Price:     draft.Price,
		Category:  models.Category(draft.Category),
		CreatedAt: s.clock(),
	}

	s.products = append(s.products, product)
	s.observe()

	if err := s.persist(ctx); err != nil {
		return &product, err
	}

	return &product, nil
}

func (s *inventoryService) GetProduct(id int64) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			product := s.products[i]

			return &product, nil
		}
	}

	return nil, appErrors.NotFoundError("Product not found")
}

func (s *inventoryService) UpdateProduct(ctx context.Context, id int64, draft *models.ProductDraft) (*models.Product, error) {
	s.simulateLatency()

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil, appErrors.NotFoundError("Product not found")
	}

	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	// uniqueness check skips the record being edited, so saving a product
	// under its own name is not a collision
	if s.findByNormalizedName(models.NormalizeName(draft.Name), id) != nil {
		return nil, appErrors.DuplicateEntryError("A product with this name already exists")
	}

	now := s.clock()
	product := &s.products[index]
	product.Name = trimmedName(draft)
	product.Quantity = draft.Quantity
	product.Price = draft.Price
	product.Category = models.Category(draft.Category)
	product.UpdatedAt = &now

	s.observe()

	updated := *product
	if err := s.persist(ctx); err != nil {
		return &updated, err
	}

	return &updated, nil
}

func (s *inventoryService) DeleteProduct(ctx context.Context, id int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return "", appErrors.NotFoundError("Product not found")
	}

	name := s.products[index].Name
	s.products = append(s.products[:index], s.products[index+1:]...)
	s.observe()

	if err := s.persist(ctx); err != nil {
		return name, err
	}

	return name, nil
}

func (s *inventoryService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = nil
	s.observe()

	return s.persist(ctx)
}

// persist rewrites the full snapshot. A failed write is reported as a
// non-fatal PersistenceError; the in-memory mutation stands either way.
func (s *inventoryService) persist(ctx context.Context) error {
	snapshot := &models.Snapshot{
		Products:    s.products,
		Theme:       s.theme,
		LastUpdated: s.clock(),
	}

	if err := s.repo.Save(ctx, snapshot); err != nil {
		slog.Error("Failed to persist snapshot", slog.String("error", err.Error()))
		metrics.SnapshotPersistFailure()

		return appErrors.PersistenceError("Changes were applied but could not be saved").WithError(err)
	}

	return nil
}

func (s *inventoryService) observe() {
	metrics.ObserveInventory(int64(len(s.products)), s.statsLocked().TotalValue)
}

func (s *inventoryService) simulateLatency() {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}

func (s *inventoryService) indexOf(id int64) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}

	return -1
}

// findByNormalizedName matches trimmed, lower-cased names. excludeID skips
// the record under edit; pass 0 for create.
func (s *inventoryService) findByNormalizedName(normalized string, excludeID int64) *models.Product {
	for i := range s.products {
		if s.products[i].ID == excludeID {
			continue
		}

		if s.products[i].NormalizedName() == normalized {
			return &s.products[i]
		}
	}

	return nil
}

func trimmedName(draft *models.ProductDraft) string {
	return strings.TrimSpace(draft.Name)
}

// validateDraft applies the field rules in order and stops at the first
// failure, so the caller always learns the single offending field.
func validateDraft(draft *models.ProductDraft) error {
	if utf8.RuneCountInString(strings.TrimSpace(draft.Name)) < 2 {
		return appErrors.FieldValidationError("name", "must be at least 2 characters")
	}

	if draft.Quantity < 1 {
		return appErrors.FieldValidationError("quantity", "must be greater than 0")
	}

	if draft.Price < 0 {
		return appErrors.FieldValidationError("price", "must be greater than or equal to 0")
	}

	if !models.Category(draft.Category).Valid() {
		return appErrors.FieldValidationError("category", "must be one of: electronics, clothing, books, home, sports")
	}

	return nil
}
